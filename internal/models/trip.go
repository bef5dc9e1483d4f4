package models

import "time"

// TripStatus is the lifecycle status of a trip.
type TripStatus string

const (
	TripScheduled      TripStatus = "SCHEDULED"
	TripInTransit      TripStatus = "IN_TRANSIT"
	TripCompleted      TripStatus = "COMPLETED"
	TripFailedDelivery TripStatus = "FAILED_DELIVERY"
	TripCanceled       TripStatus = "CANCELED"

	// tripInProgress is a legacy alias for IN_TRANSIT still emitted by older
	// API revisions.
	tripInProgress TripStatus = "IN_PROGRESS"
)

// IsValidTripStatus checks if a trip status is a member of the enum,
// accepting the legacy IN_PROGRESS spelling.
func IsValidTripStatus(s TripStatus) bool {
	switch s.Canonical() {
	case TripScheduled, TripInTransit, TripCompleted, TripFailedDelivery, TripCanceled:
		return true
	default:
		return false
	}
}

// Canonical maps legacy status spellings onto the current enum.
func (s TripStatus) Canonical() TripStatus {
	if s == tripInProgress {
		return TripInTransit
	}
	return s
}

// TripNote is a timestamped free-text note attached to a trip.
type TripNote struct {
	NoteTimestamp time.Time `json:"note_timestamp"`
	Content       string    `json:"content"`
}

// Cargo describes what a trip is hauling.
type Cargo struct {
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Hazmat      bool    `json:"hazmat"`
}

// Trip represents a delivery trip from origin to destination facility.
type Trip struct {
	ID                  string          `json:"id"`
	TripNumber          string          `json:"trip_number"`
	DriverID            string          `json:"driver_id"`
	TruckID             string          `json:"truck_id"`
	OriginFacility      string          `json:"origin_facility"`
	DestinationFacility string          `json:"destination_facility"`
	DepartureTime       ScheduledActual `json:"departure_time"`
	ArrivalTime         ScheduledActual `json:"arrival_time"`
	Status              TripStatus      `json:"status"`
	Cargo               Cargo           `json:"cargo"`
	FuelUsageGallons    float64         `json:"fuel_usage_gallons"`
	DistanceMiles       float64         `json:"distance_miles"`
	Notes               []TripNote      `json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// CreateTripPayload is the body for scheduling a trip.
type CreateTripPayload struct {
	TripNumber          string    `json:"trip_number" validate:"required"`
	DriverID            string    `json:"driver_id" validate:"required"`
	TruckID             string    `json:"truck_id" validate:"required"`
	OriginFacility      string    `json:"origin_facility" validate:"required"`
	DestinationFacility string    `json:"destination_facility" validate:"required"`
	ScheduledDeparture  time.Time `json:"scheduled_departure" validate:"required"`
	ScheduledArrival    time.Time `json:"scheduled_arrival" validate:"required"`
	Cargo               Cargo     `json:"cargo"`
	DistanceMiles       float64   `json:"distance_miles" validate:"gte=0"`
}
