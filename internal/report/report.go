// Package report reduces fetched fleet collections into dashboard-ready
// metrics. Building is pure and synchronous; fetching lives in loader.go.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ukydev/fleet-logistics/internal/models"
)

// OnTimePolicy selects which trips count toward the on-time denominator. The
// API's revisions disagree on whether failed deliveries belong in it, so the
// choice is explicit.
type OnTimePolicy int

const (
	// OnTimeCompletedOnly rates only COMPLETED trips.
	OnTimeCompletedOnly OnTimePolicy = iota
	// OnTimeCompletedAndFailed includes FAILED_DELIVERY trips in the
	// denominator.
	OnTimeCompletedAndFailed
)

// PolicyFromString maps a configuration value onto a policy. Unrecognized
// values fall back to the completed-only default.
func PolicyFromString(s string) OnTimePolicy {
	if s == "completed_and_failed" {
		return OnTimeCompletedAndFailed
	}
	return OnTimeCompletedOnly
}

// Options configure aggregation.
type Options struct {
	OnTimePolicy OnTimePolicy
}

// Input carries the fetched collections plus the server-reported totals,
// which may exceed the slice lengths when the source paginates.
type Input struct {
	Trips            []models.Trip
	TripsTotal       int
	Trucks           []models.Truck
	TrucksTotal      int
	Drivers          []models.Driver
	DriversTotal     int
	Incidents        []models.IncidentReport
	IncidentsTotal   int
	Maintenance      []models.MaintenanceLog
	MaintenanceTotal int
}

// FleetMetrics is the truck status histogram. Unknown counts trucks whose
// status is outside the enum; they are uncounted, never dropped.
type FleetMetrics struct {
	Total            int `json:"total"`
	Available        int `json:"available"`
	InTransit        int `json:"in_transit"`
	UnderMaintenance int `json:"under_maintenance"`
	Retired          int `json:"retired"`
	Unknown          int `json:"unknown"`
}

// DeliveryMetrics summarizes trip outcomes.
type DeliveryMetrics struct {
	OnTimeRate       string `json:"on_time_rate"`
	TotalDeliveries  int    `json:"total_deliveries"`
	FailedDeliveries int    `json:"failed_deliveries"`
	ActiveTrips      int    `json:"active_trips"`
	AvgDurationHours string `json:"avg_duration_hours"`
}

// EfficiencyMetrics summarizes fuel economy and maintenance spend.
type EfficiencyMetrics struct {
	AvgMPG          string `json:"avg_mpg"`
	TotalFuelUsage  string `json:"total_fuel_usage"`
	TotalMileage    string `json:"total_mileage"`
	MaintenanceCost string `json:"maintenance_cost"`
}

// Metrics groups the top-level dashboard numbers.
type Metrics struct {
	Fleet         FleetMetrics      `json:"fleet"`
	Delivery      DeliveryMetrics   `json:"delivery"`
	Efficiency    EfficiencyMetrics `json:"efficiency"`
	ActiveDrivers int               `json:"active_drivers"`
	IncidentCount int               `json:"incident_count"`
}

// ChartSlice is one labeled, colored bucket of a dashboard chart.
type ChartSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Charts holds the chart data series.
type Charts struct {
	FleetStatus      []ChartSlice `json:"fleet_status"`
	MaintenanceTypes []ChartSlice `json:"maintenance_types"`
}

// RecentTrip is a trip row for the recent-activity list.
type RecentTrip struct {
	ID               string            `json:"id"`
	TripNumber       string            `json:"trip_number"`
	Distance         float64           `json:"distance"`
	Status           models.TripStatus `json:"status"`
	FuelUsage        float64           `json:"fuel_usage"`
	ScheduledArrival time.Time         `json:"scheduled_arrival"`
}

// RecentIncident is an incident row for the recent-activity list.
type RecentIncident struct {
	ID             string              `json:"id"`
	Type           models.IncidentType `json:"type"`
	Description    string              `json:"description"`
	Date           time.Time           `json:"date"`
	DamageEstimate float64             `json:"damage_estimate"`
}

// RecentMaintenance is a maintenance row for the recent-activity list.
type RecentMaintenance struct {
	ID    string             `json:"id"`
	Type  models.ServiceType `json:"type"`
	Cost  float64            `json:"cost"`
	Date  time.Time          `json:"date"`
	Notes string             `json:"notes"`
}

// Recent holds the most recent activity, newest first, at most five each.
type Recent struct {
	Trips       []RecentTrip        `json:"trips"`
	Incidents   []RecentIncident    `json:"incidents"`
	Maintenance []RecentMaintenance `json:"maintenance"`
}

// TopDriver is a highlighted active driver with display initials.
type TopDriver struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	State  string `json:"state"`
}

// LoadError flags that one or more upstream collections failed to load and
// the dashboard degraded to zeroed defaults.
type LoadError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Dashboard is the complete, always well-typed aggregation result.
type Dashboard struct {
	Metrics    Metrics     `json:"metrics"`
	Charts     Charts      `json:"charts"`
	Recent     Recent      `json:"recent"`
	TopDrivers []TopDriver `json:"top_drivers"`
	Err        *LoadError  `json:"error"`
}

const (
	colorGreen  = "#10b981"
	colorIndigo = "#6366f1"
	colorAmber  = "#f59e0b"
	colorRed    = "#ef4444"
)

const (
	recentLimit    = 5
	topDriverLimit = 3
)

// Build aggregates the input collections into a Dashboard. It never panics
// on unknown status values and never produces NaN or Inf: empty qualifying
// sets yield "0.0" style zero strings.
func Build(in Input, opts Options) Dashboard {
	var d Dashboard
	d.Metrics.Fleet = fleetMetrics(in.Trucks, in.TrucksTotal)
	d.Metrics.Delivery = deliveryMetrics(in.Trips, opts.OnTimePolicy)
	d.Metrics.Efficiency = efficiencyMetrics(in.Trips, in.Maintenance)
	d.Metrics.ActiveDrivers = countActiveDrivers(in.Drivers)
	d.Metrics.IncidentCount = in.IncidentsTotal
	d.Charts = charts(d.Metrics.Fleet, in.Maintenance)
	d.Recent = recentActivity(in)
	d.TopDrivers = topDrivers(in.Drivers)
	return d
}

// Zeroed returns the degrade-to-zero dashboard produced when an upstream
// collection fails: empty-collection defaults plus an explicit error flag.
func Zeroed(opts Options) Dashboard {
	d := Build(Input{}, opts)
	d.Err = &LoadError{
		Message: "Unable to load analytics data. Please try refreshing the page.",
		Code:    "DATA_LOAD_ERROR",
	}
	return d
}

func fleetMetrics(trucks []models.Truck, total int) FleetMetrics {
	m := FleetMetrics{Total: total}
	for _, truck := range trucks {
		switch truck.Status {
		case models.TruckAvailable:
			m.Available++
		case models.TruckInTransit:
			m.InTransit++
		case models.TruckUnderMaintenance:
			m.UnderMaintenance++
		case models.TruckRetired:
			m.Retired++
		default:
			m.Unknown++
		}
	}
	return m
}

func deliveryMetrics(trips []models.Trip, policy OnTimePolicy) DeliveryMetrics {
	var (
		qualifying, onTime int
		completed, failed  int
		active             int
		durationSum        float64
		durationCount      int
	)

	for _, trip := range trips {
		status := trip.Status.Canonical()

		switch status {
		case models.TripCompleted:
			completed++
		case models.TripFailedDelivery, models.TripCanceled:
			failed++
		case models.TripInTransit:
			active++
		}

		inDenominator := status == models.TripCompleted ||
			(policy == OnTimeCompletedAndFailed && status == models.TripFailedDelivery)
		if inDenominator {
			qualifying++
			actual := trip.ArrivalTime.Actual
			if actual != nil && !actual.After(trip.ArrivalTime.Scheduled) {
				onTime++
			}
		}

		if trip.ArrivalTime.Actual != nil && trip.DepartureTime.Actual != nil {
			durationSum += trip.ArrivalTime.Actual.Sub(*trip.DepartureTime.Actual).Hours()
			durationCount++
		}
	}

	return DeliveryMetrics{
		OnTimeRate:       ratio1(onTime, qualifying),
		TotalDeliveries:  completed,
		FailedDeliveries: failed,
		ActiveTrips:      active,
		AvgDurationHours: mean1(durationSum, durationCount),
	}
}

func efficiencyMetrics(trips []models.Trip, logs []models.MaintenanceLog) EfficiencyMetrics {
	var (
		mpgSum, fuelSum, mileSum float64
		fuelTrips                int
	)
	for _, trip := range trips {
		if trip.FuelUsageGallons > 0 && trip.DistanceMiles > 0 {
			mpgSum += trip.DistanceMiles / trip.FuelUsageGallons
			fuelSum += trip.FuelUsageGallons
			mileSum += trip.DistanceMiles
			fuelTrips++
		}
	}

	// Sum in rounded cents so per-entry half-cent amounts round up instead
	// of drowning in float accumulation error.
	var costCents float64
	for _, entry := range logs {
		costCents += math.Round(entry.Cost * 100)
	}

	return EfficiencyMetrics{
		AvgMPG:          mean1(mpgSum, fuelTrips),
		TotalFuelUsage:  fmt.Sprintf("%.1f", fuelSum),
		TotalMileage:    fmt.Sprintf("%.0f", mileSum),
		MaintenanceCost: fmt.Sprintf("%.2f", costCents/100),
	}
}

func countActiveDrivers(drivers []models.Driver) int {
	n := 0
	for _, d := range drivers {
		if d.EmploymentStatus == models.DriverActive {
			n++
		}
	}
	return n
}

func charts(fleet FleetMetrics, logs []models.MaintenanceLog) Charts {
	byType := map[models.ServiceType]int{}
	for _, entry := range logs {
		byType[entry.ServiceType.Canonical()]++
	}

	return Charts{
		FleetStatus: []ChartSlice{
			{Label: "Available", Value: fleet.Available, Color: colorGreen},
			{Label: "In Transit", Value: fleet.InTransit, Color: colorIndigo},
			{Label: "Maintenance", Value: fleet.UnderMaintenance, Color: colorAmber},
			{Label: "Retired", Value: fleet.Retired, Color: colorRed},
		},
		MaintenanceTypes: []ChartSlice{
			{Label: "Routine", Value: byType[models.ServiceRoutine], Color: colorGreen},
			{Label: "Repair", Value: byType[models.ServiceRepair], Color: colorAmber},
			{Label: "Emergency", Value: byType[models.ServiceEmergency], Color: colorRed},
		},
	}
}

func recentActivity(in Input) Recent {
	r := Recent{
		Trips:       []RecentTrip{},
		Incidents:   []RecentIncident{},
		Maintenance: []RecentMaintenance{},
	}

	for _, trip := range topRecent(in.Trips, func(t models.Trip) time.Time { return t.CreatedAt }) {
		r.Trips = append(r.Trips, RecentTrip{
			ID:               trip.ID,
			TripNumber:       trip.TripNumber,
			Distance:         trip.DistanceMiles,
			Status:           trip.Status.Canonical(),
			FuelUsage:        trip.FuelUsageGallons,
			ScheduledArrival: trip.ArrivalTime.Scheduled,
		})
	}
	for _, inc := range topRecent(in.Incidents, func(i models.IncidentReport) time.Time { return i.CreatedAt }) {
		r.Incidents = append(r.Incidents, RecentIncident{
			ID:             inc.ID,
			Type:           inc.Type,
			Description:    inc.Description,
			Date:           inc.Date,
			DamageEstimate: inc.DamageEstimate,
		})
	}
	for _, entry := range topRecent(in.Maintenance, func(m models.MaintenanceLog) time.Time { return m.Date }) {
		r.Maintenance = append(r.Maintenance, RecentMaintenance{
			ID:    entry.ID,
			Type:  entry.ServiceType.Canonical(),
			Cost:  entry.Cost,
			Date:  entry.Date,
			Notes: entry.Notes,
		})
	}
	return r
}

// topDrivers picks the first topDriverLimit active drivers in input order.
func topDrivers(drivers []models.Driver) []TopDriver {
	out := []TopDriver{}
	for _, d := range drivers {
		if d.EmploymentStatus != models.DriverActive {
			continue
		}
		out = append(out, TopDriver{
			Name:   d.FirstName + " " + d.LastName,
			Avatar: initials(d.FirstName, d.LastName),
			State:  d.LicenseState,
		})
		if len(out) == topDriverLimit {
			break
		}
	}
	return out
}

func initials(first, last string) string {
	var b []byte
	if first != "" {
		b = append(b, first[0])
	}
	if last != "" {
		b = append(b, last[0])
	}
	return string(b)
}

// topRecent returns up to recentLimit items sorted newest first. The sort is
// stable so timestamp ties keep their input order.
func topRecent[T any](items []T, timestamp func(T) time.Time) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return timestamp(out[i]).After(timestamp(out[j]))
	})
	if len(out) > recentLimit {
		out = out[:recentLimit]
	}
	return out
}

// ratio1 formats numerator/denominator as a one-decimal percentage, "0.0"
// when the denominator is zero.
func ratio1(num, den int) string {
	if den == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", float64(num)/float64(den)*100)
}

// mean1 formats sum/count with one decimal, "0.0" when count is zero.
func mean1(sum float64, count int) string {
	if count == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", sum/float64(count))
}
