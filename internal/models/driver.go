package models

import "time"

// EmploymentStatus is the lifecycle status of a driver.
type EmploymentStatus string

const (
	DriverActive     EmploymentStatus = "ACTIVE"
	DriverSuspended  EmploymentStatus = "SUSPENDED"
	DriverTerminated EmploymentStatus = "TERMINATED"
)

// IsValidEmploymentStatus checks if an employment status is a member of the
// enum. The superseded ON_LEAVE value is not valid.
func IsValidEmploymentStatus(s EmploymentStatus) bool {
	switch s {
	case DriverActive, DriverSuspended, DriverTerminated:
		return true
	default:
		return false
	}
}

// Driver represents a fleet driver.
type Driver struct {
	ID                string           `json:"id"`
	FirstName         string           `json:"first_name"`
	LastName          string           `json:"last_name"`
	DOB               string           `json:"dob"`
	LicenseNumber     string           `json:"license_number"`
	LicenseState      string           `json:"license_state"`
	LicenseExpiration string           `json:"license_expiration"`
	Phone             string           `json:"phone"`
	Email             string           `json:"email"`
	Address           Address          `json:"address"`
	EmploymentStatus  EmploymentStatus `json:"employment_status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// CreateDriverPayload is the body for creating a driver.
type CreateDriverPayload struct {
	FirstName         string  `json:"first_name" validate:"required"`
	LastName          string  `json:"last_name" validate:"required"`
	DOB               string  `json:"dob" validate:"required"`
	LicenseNumber     string  `json:"license_number" validate:"required"`
	LicenseState      string  `json:"license_state" validate:"required,len=2"`
	LicenseExpiration string  `json:"license_expiration" validate:"required"`
	Phone             string  `json:"phone" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	Address           Address `json:"address"`
}
