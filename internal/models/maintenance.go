package models

import "time"

// ServiceType classifies a maintenance log entry.
type ServiceType string

const (
	ServiceRoutine   ServiceType = "ROUTINE_MAINTENANCE"
	ServiceRepair    ServiceType = "REPAIR"
	ServiceEmergency ServiceType = "EMERGENCY"

	// serviceEmergencyRepair is the spelling used by a later API schema.
	serviceEmergencyRepair ServiceType = "EMERGENCY_REPAIR"
)

// Canonical maps later schema spellings onto the current enum.
func (t ServiceType) Canonical() ServiceType {
	if t == serviceEmergencyRepair {
		return ServiceEmergency
	}
	return t
}

// IsValidServiceType checks if a service type is a member of the enum,
// accepting the EMERGENCY_REPAIR spelling.
func IsValidServiceType(t ServiceType) bool {
	switch t.Canonical() {
	case ServiceRoutine, ServiceRepair, ServiceEmergency:
		return true
	default:
		return false
	}
}

// MaintenanceLog records a service performed on a truck. The truck is
// embedded as a full snapshot by the API.
type MaintenanceLog struct {
	ID          string      `json:"id"`
	Truck       Truck       `json:"truck"`
	Date        time.Time   `json:"date"`
	ServiceType ServiceType `json:"service_type"`
	Cost        float64     `json:"cost"` // in USD
	Notes       string      `json:"notes"`
	Mechanic    string      `json:"mechanic"`
	Location    string      `json:"location"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateMaintenanceLogPayload is the body for recording a maintenance log.
type CreateMaintenanceLogPayload struct {
	TruckID     string      `json:"truck_id" validate:"required"`
	Date        time.Time   `json:"date" validate:"required"`
	ServiceType ServiceType `json:"service_type" validate:"required"`
	Cost        float64     `json:"cost" validate:"gte=0"`
	Notes       string      `json:"notes"`
	Mechanic    string      `json:"mechanic"`
	Location    string      `json:"location"`
}
