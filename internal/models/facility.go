package models

import "time"

// Facility represents a depot, warehouse or service yard.
type Facility struct {
	ID                string      `json:"id"`
	FacilityNumber    string      `json:"facility_number"`
	Name              string      `json:"name"`
	Type              string      `json:"type"` // "WAREHOUSE", "DISTRIBUTION_CENTER", "SERVICE_YARD"
	Address           Address     `json:"address"`
	ContactInfo       ContactInfo `json:"contact_info"`
	ParkingCapacity   int         `json:"parking_capacity"`
	ServicesAvailable []string    `json:"services_available"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// CreateFacilityPayload is the body for creating a facility.
type CreateFacilityPayload struct {
	FacilityNumber    string      `json:"facility_number" validate:"required"`
	Name              string      `json:"name" validate:"required"`
	Type              string      `json:"type" validate:"required"`
	Address           Address     `json:"address"`
	ContactInfo       ContactInfo `json:"contact_info"`
	ParkingCapacity   int         `json:"parking_capacity" validate:"gte=0"`
	ServicesAvailable []string    `json:"services_available"`
}
