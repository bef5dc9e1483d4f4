package models

import "time"

// Address represents a postal address used by drivers and facilities.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// ContactInfo holds phone and email contact details for a facility.
type ContactInfo struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// LicensePlate identifies a truck's registration plate.
type LicensePlate struct {
	Number string `json:"number"`
	State  string `json:"state"`
}

// ScheduledActual pairs a scheduled timestamp with the actual one, which is
// absent until the event has happened.
type ScheduledActual struct {
	Scheduled time.Time  `json:"scheduled"`
	Actual    *time.Time `json:"actual,omitempty"`
}
