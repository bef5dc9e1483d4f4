package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/fleet-logistics/internal/models"
)

func timeAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildEmptyInput(t *testing.T) {
	d := Build(Input{}, Options{})

	assert.Equal(t, "0.0", d.Metrics.Delivery.OnTimeRate)
	assert.Equal(t, 0, d.Metrics.Delivery.FailedDeliveries)
	assert.Equal(t, 0, d.Metrics.Delivery.TotalDeliveries)
	assert.Equal(t, "0.0", d.Metrics.Efficiency.AvgMPG)
	assert.Equal(t, "0.0", d.Metrics.Efficiency.TotalFuelUsage)
	assert.Equal(t, "0", d.Metrics.Efficiency.TotalMileage)
	assert.Equal(t, "0.00", d.Metrics.Efficiency.MaintenanceCost)
	assert.Equal(t, 0, d.Metrics.ActiveDrivers)
	assert.NotNil(t, d.Recent.Trips)
	assert.NotNil(t, d.Recent.Incidents)
	assert.NotNil(t, d.Recent.Maintenance)
	assert.NotNil(t, d.TopDrivers)
	assert.Nil(t, d.Err)

	for _, s := range []string{
		d.Metrics.Delivery.OnTimeRate,
		d.Metrics.Delivery.AvgDurationHours,
		d.Metrics.Efficiency.AvgMPG,
	} {
		assert.False(t, strings.Contains(s, "NaN") || strings.Contains(s, "Inf"), "got %q", s)
	}
}

func TestFleetStatusHistogram(t *testing.T) {
	trucks := []models.Truck{
		{Status: models.TruckAvailable},
		{Status: models.TruckAvailable},
		{Status: models.TruckRetired},
	}
	d := Build(Input{Trucks: trucks, TrucksTotal: 3}, Options{})

	assert.Equal(t, 2, d.Metrics.Fleet.Available)
	assert.Equal(t, 0, d.Metrics.Fleet.InTransit)
	assert.Equal(t, 0, d.Metrics.Fleet.UnderMaintenance)
	assert.Equal(t, 1, d.Metrics.Fleet.Retired)
	assert.Equal(t, 0, d.Metrics.Fleet.Unknown)
	assert.Equal(t, 3, d.Metrics.Fleet.Total)
}

func TestFleetHistogramSumsToN(t *testing.T) {
	statuses := []models.TruckStatus{
		models.TruckAvailable, models.TruckInTransit, models.TruckUnderMaintenance,
		models.TruckRetired, "SCRAPPED", "", models.TruckAvailable,
	}
	trucks := make([]models.Truck, len(statuses))
	for i, s := range statuses {
		trucks[i] = models.Truck{Status: s}
	}

	fleet := Build(Input{Trucks: trucks}, Options{}).Metrics.Fleet
	sum := fleet.Available + fleet.InTransit + fleet.UnderMaintenance + fleet.Retired + fleet.Unknown
	assert.Equal(t, len(trucks), sum)
	assert.Equal(t, 2, fleet.Unknown)
}

func TestOnTimeRate(t *testing.T) {
	scheduled := timeAt("2024-03-01T12:00:00Z")
	trips := []models.Trip{
		{
			Status:      models.TripCompleted,
			ArrivalTime: models.ScheduledActual{Scheduled: scheduled, Actual: timePtr(scheduled.Add(-10 * time.Minute))},
		},
		{
			Status:      models.TripCompleted,
			ArrivalTime: models.ScheduledActual{Scheduled: scheduled, Actual: timePtr(scheduled.Add(20 * time.Minute))},
		},
	}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, "50.0", d.Metrics.Delivery.OnTimeRate)
	assert.Equal(t, 2, d.Metrics.Delivery.TotalDeliveries)
}

func TestOnTimeRateExactlyOnScheduleCounts(t *testing.T) {
	scheduled := timeAt("2024-03-01T12:00:00Z")
	trips := []models.Trip{{
		Status:      models.TripCompleted,
		ArrivalTime: models.ScheduledActual{Scheduled: scheduled, Actual: timePtr(scheduled)},
	}}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, "100.0", d.Metrics.Delivery.OnTimeRate)
}

func TestOnTimeRateMissingActualIsLate(t *testing.T) {
	trips := []models.Trip{{
		Status:      models.TripCompleted,
		ArrivalTime: models.ScheduledActual{Scheduled: timeAt("2024-03-01T12:00:00Z")},
	}}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, "0.0", d.Metrics.Delivery.OnTimeRate)
}

func TestOnTimePolicyIncludesFailedDeliveries(t *testing.T) {
	scheduled := timeAt("2024-03-01T12:00:00Z")
	trips := []models.Trip{
		{
			Status:      models.TripCompleted,
			ArrivalTime: models.ScheduledActual{Scheduled: scheduled, Actual: timePtr(scheduled.Add(-time.Minute))},
		},
		{
			Status:      models.TripFailedDelivery,
			ArrivalTime: models.ScheduledActual{Scheduled: scheduled, Actual: timePtr(scheduled.Add(time.Hour))},
		},
	}

	completedOnly := Build(Input{Trips: trips}, Options{OnTimePolicy: OnTimeCompletedOnly})
	assert.Equal(t, "100.0", completedOnly.Metrics.Delivery.OnTimeRate)

	withFailed := Build(Input{Trips: trips}, Options{OnTimePolicy: OnTimeCompletedAndFailed})
	assert.Equal(t, "50.0", withFailed.Metrics.Delivery.OnTimeRate)
}

func TestFailedDeliveriesCountsCanceledAndFailed(t *testing.T) {
	trips := []models.Trip{
		{Status: models.TripCanceled},
		{Status: models.TripFailedDelivery},
		{Status: models.TripCompleted},
		{Status: models.TripScheduled},
	}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, 2, d.Metrics.Delivery.FailedDeliveries)
}

func TestActiveTripsAcceptsLegacyInProgress(t *testing.T) {
	trips := []models.Trip{
		{Status: models.TripInTransit},
		{Status: "IN_PROGRESS"},
		{Status: models.TripScheduled},
	}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, 2, d.Metrics.Delivery.ActiveTrips)
}

func TestFuelEconomy(t *testing.T) {
	trips := []models.Trip{
		{FuelUsageGallons: 10, DistanceMiles: 100}, // 10 mpg
		{FuelUsageGallons: 20, DistanceMiles: 100}, // 5 mpg
		{FuelUsageGallons: 0, DistanceMiles: 500},  // excluded
		{FuelUsageGallons: 30, DistanceMiles: 0},   // excluded
	}

	d := Build(Input{Trips: trips}, Options{})
	assert.Equal(t, "7.5", d.Metrics.Efficiency.AvgMPG)
	assert.Equal(t, "30.0", d.Metrics.Efficiency.TotalFuelUsage)
	assert.Equal(t, "200", d.Metrics.Efficiency.TotalMileage)
}

func TestMaintenanceCostRounding(t *testing.T) {
	logs := []models.MaintenanceLog{
		{Cost: 100.00, ServiceType: models.ServiceRoutine},
		{Cost: 250.505, ServiceType: models.ServiceRepair},
	}

	d := Build(Input{Maintenance: logs}, Options{})
	assert.Equal(t, "350.51", d.Metrics.Efficiency.MaintenanceCost)
}

func TestMaintenanceCostRoundsPerEntry(t *testing.T) {
	// Each half-cent rounds up on its own entry rather than vanishing in
	// the float sum.
	logs := []models.MaintenanceLog{
		{Cost: 0.005, ServiceType: models.ServiceRoutine},
		{Cost: 0.005, ServiceType: models.ServiceRoutine},
	}

	d := Build(Input{Maintenance: logs}, Options{})
	assert.Equal(t, "0.02", d.Metrics.Efficiency.MaintenanceCost)
}

func TestMaintenanceHistogramUnknownTypeKeepsCost(t *testing.T) {
	logs := []models.MaintenanceLog{
		{Cost: 10, ServiceType: models.ServiceRoutine},
		{Cost: 20, ServiceType: "EMERGENCY_REPAIR"}, // later schema, counts as emergency
		{Cost: 30, ServiceType: "DETAILING"},        // unknown: no bucket, cost kept
	}

	d := Build(Input{Maintenance: logs}, Options{})
	assert.Equal(t, "60.00", d.Metrics.Efficiency.MaintenanceCost)

	byLabel := map[string]int{}
	for _, slice := range d.Charts.MaintenanceTypes {
		byLabel[slice.Label] = slice.Value
	}
	assert.Equal(t, 1, byLabel["Routine"])
	assert.Equal(t, 0, byLabel["Repair"])
	assert.Equal(t, 1, byLabel["Emergency"])
}

func TestActiveDriverCount(t *testing.T) {
	drivers := []models.Driver{
		{EmploymentStatus: models.DriverActive},
		{EmploymentStatus: models.DriverSuspended},
		{EmploymentStatus: models.DriverActive},
		{EmploymentStatus: "ON_LEAVE"},
	}

	d := Build(Input{Drivers: drivers}, Options{})
	assert.Equal(t, 2, d.Metrics.ActiveDrivers)
}

func TestRecentTripsTruncation(t *testing.T) {
	base := timeAt("2024-03-01T00:00:00Z")
	trips := make([]models.Trip, 7)
	for i := range trips {
		trips[i] = models.Trip{
			ID:         fmt.Sprintf("trip-%d", i),
			TripNumber: fmt.Sprintf("TR-%03d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
	}

	d := Build(Input{Trips: trips}, Options{})
	require.Len(t, d.Recent.Trips, 5)
	assert.Equal(t, "trip-6", d.Recent.Trips[0].ID)
	assert.Equal(t, "trip-5", d.Recent.Trips[1].ID)
	assert.Equal(t, "trip-2", d.Recent.Trips[4].ID)
	for i := 1; i < len(d.Recent.Trips); i++ {
		prev := d.Recent.Trips[i-1].ID
		curr := d.Recent.Trips[i].ID
		assert.Greater(t, prev, curr, "descending by created_at")
	}
}

func TestRecentTiesKeepInputOrder(t *testing.T) {
	at := timeAt("2024-03-01T00:00:00Z")
	trips := []models.Trip{
		{ID: "first", CreatedAt: at},
		{ID: "second", CreatedAt: at},
		{ID: "third", CreatedAt: at},
	}

	d := Build(Input{Trips: trips}, Options{})
	require.Len(t, d.Recent.Trips, 3)
	assert.Equal(t, "first", d.Recent.Trips[0].ID)
	assert.Equal(t, "second", d.Recent.Trips[1].ID)
	assert.Equal(t, "third", d.Recent.Trips[2].ID)
}

func TestRecentMaintenanceSortsByServiceDate(t *testing.T) {
	logs := []models.MaintenanceLog{
		{ID: "old", Date: timeAt("2024-01-01T00:00:00Z"), CreatedAt: timeAt("2024-06-01T00:00:00Z")},
		{ID: "new", Date: timeAt("2024-05-01T00:00:00Z"), CreatedAt: timeAt("2024-02-01T00:00:00Z")},
	}

	d := Build(Input{Maintenance: logs}, Options{})
	require.Len(t, d.Recent.Maintenance, 2)
	assert.Equal(t, "new", d.Recent.Maintenance[0].ID)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	trips := []models.Trip{
		{ID: "a", CreatedAt: timeAt("2024-03-01T00:00:00Z")},
		{ID: "b", CreatedAt: timeAt("2024-04-01T00:00:00Z")},
	}
	Build(Input{Trips: trips}, Options{})
	assert.Equal(t, "a", trips[0].ID)
	assert.Equal(t, "b", trips[1].ID)
}

func TestZeroed(t *testing.T) {
	d := Zeroed(Options{})
	require.NotNil(t, d.Err)
	assert.Equal(t, "DATA_LOAD_ERROR", d.Err.Code)
	assert.Equal(t, "0.0", d.Metrics.Delivery.OnTimeRate)
	assert.Equal(t, "0.00", d.Metrics.Efficiency.MaintenanceCost)
	assert.Empty(t, d.Recent.Trips)
}

func TestPolicyFromString(t *testing.T) {
	assert.Equal(t, OnTimeCompletedAndFailed, PolicyFromString("completed_and_failed"))
	assert.Equal(t, OnTimeCompletedOnly, PolicyFromString("completed"))
	assert.Equal(t, OnTimeCompletedOnly, PolicyFromString(""))
	assert.Equal(t, OnTimeCompletedOnly, PolicyFromString("bogus"))
}

func TestTopDrivers(t *testing.T) {
	drivers := []models.Driver{
		{FirstName: "Maria", LastName: "Garcia", LicenseState: "TX", EmploymentStatus: models.DriverActive},
		{FirstName: "John", LastName: "Smith", LicenseState: "IL", EmploymentStatus: models.DriverSuspended},
		{FirstName: "Linda", LastName: "Davis", LicenseState: "OH", EmploymentStatus: models.DriverActive},
		{FirstName: "Carlos", LastName: "Martinez", LicenseState: "CA", EmploymentStatus: models.DriverActive},
		{FirstName: "Susan", LastName: "Wilson", LicenseState: "GA", EmploymentStatus: models.DriverActive},
	}

	d := Build(Input{Drivers: drivers}, Options{})

	require.Len(t, d.TopDrivers, 3, "at most three, active only, input order")
	assert.Equal(t, TopDriver{Name: "Maria Garcia", Avatar: "MG", State: "TX"}, d.TopDrivers[0])
	assert.Equal(t, "Linda Davis", d.TopDrivers[1].Name)
	assert.Equal(t, "Carlos Martinez", d.TopDrivers[2].Name)
}
