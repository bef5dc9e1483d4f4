package models

import "time"

// TruckStatus is the lifecycle status of a truck.
type TruckStatus string

const (
	TruckAvailable        TruckStatus = "AVAILABLE"
	TruckInTransit        TruckStatus = "IN_TRANSIT"
	TruckUnderMaintenance TruckStatus = "UNDER_MAINTENANCE"
	TruckRetired          TruckStatus = "RETIRED"
)

// IsValidTruckStatus checks if a truck status is a member of the enum.
func IsValidTruckStatus(s TruckStatus) bool {
	switch s {
	case TruckAvailable, TruckInTransit, TruckUnderMaintenance, TruckRetired:
		return true
	default:
		return false
	}
}

// Truck represents a fleet truck.
type Truck struct {
	ID              string       `json:"id"`
	TruckNumber     string       `json:"truck_number"`
	VIN             string       `json:"vin"`
	Make            string       `json:"make"`
	Model           string       `json:"model"`
	Year            int          `json:"year"`
	LicensePlate    LicensePlate `json:"license_plate"`
	Mileage         int          `json:"mileage"`
	Status          TruckStatus  `json:"status"`
	TrailerType     string       `json:"trailer_type"` // "DRY_VAN", "REFRIGERATED", "FLATBED", ...
	CapacityTons    float64      `json:"capacity_tons"`
	FuelType        string       `json:"fuel_type"` // "DIESEL", "GASOLINE", "ELECTRIC", "HYBRID"
	LastMaintenance string       `json:"last_maintenance"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CreateTruckPayload is the body for creating a truck. Server-assigned fields
// (id, status, timestamps) are omitted.
type CreateTruckPayload struct {
	TruckNumber     string       `json:"truck_number" validate:"required"`
	VIN             string       `json:"vin" validate:"required,len=17"`
	Make            string       `json:"make" validate:"required"`
	Model           string       `json:"model" validate:"required"`
	Year            int          `json:"year" validate:"required,gte=1990"`
	LicensePlate    LicensePlate `json:"license_plate"`
	Mileage         int          `json:"mileage" validate:"gte=0"`
	TrailerType     string       `json:"trailer_type" validate:"required"`
	CapacityTons    float64      `json:"capacity_tons" validate:"gt=0"`
	FuelType        string       `json:"fuel_type" validate:"required"`
	LastMaintenance string       `json:"last_maintenance"`
}
