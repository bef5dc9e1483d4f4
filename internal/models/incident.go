package models

import "time"

// IncidentType classifies an incident report.
type IncidentType string

const (
	IncidentTrafficAccident   IncidentType = "TRAFFIC_ACCIDENT"
	IncidentMechanicalFailure IncidentType = "MECHANICAL_FAILURE"
	IncidentWeatherDelay      IncidentType = "WEATHER_DELAY"
	IncidentCargoIssue        IncidentType = "CARGO_ISSUE"
	IncidentOther             IncidentType = "OTHER"
)

// IsValidIncidentType checks if an incident type is a member of the enum.
func IsValidIncidentType(t IncidentType) bool {
	switch t {
	case IncidentTrafficAccident, IncidentMechanicalFailure, IncidentWeatherDelay,
		IncidentCargoIssue, IncidentOther:
		return true
	default:
		return false
	}
}

// IncidentReport records an incident that occurred on a trip. The related
// trip, truck and driver are embedded as full snapshots by the API.
type IncidentReport struct {
	ID             string       `json:"id"`
	Trip           Trip         `json:"trip"`
	Truck          Truck        `json:"truck"`
	Driver         Driver       `json:"driver"`
	Type           IncidentType `json:"type"`
	Description    string       `json:"description"`
	Date           time.Time    `json:"date"`
	Location       string       `json:"location"`
	DamageEstimate float64      `json:"damage_estimate"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// CreateIncidentPayload is the body for filing an incident report. Related
// entities are referenced by id on create.
type CreateIncidentPayload struct {
	TripID         string       `json:"trip_id" validate:"required"`
	TruckID        string       `json:"truck_id" validate:"required"`
	DriverID       string       `json:"driver_id" validate:"required"`
	Type           IncidentType `json:"type" validate:"required"`
	Description    string       `json:"description" validate:"required"`
	Date           time.Time    `json:"date" validate:"required"`
	Location       string       `json:"location"`
	DamageEstimate float64      `json:"damage_estimate" validate:"gte=0"`
}
