package models

import "time"

type AppointmentStatus string

const (
	AppointmentPlanned   AppointmentStatus = "Planned"
	AppointmentConfirmed AppointmentStatus = "Confirmed"
	AppointmentDone      AppointmentStatus = "Done"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

func ValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentPlanned, AppointmentConfirmed, AppointmentDone, AppointmentCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID         string            `json:"id"`
	CustomerID string            `json:"customer_id"`
	StaffID    string            `json:"staff_id"`
	Date       time.Time         `json:"appointment_date"`
	Status     AppointmentStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
}

type CreateAppointmentRequest struct {
	CustomerID string    `json:"customer_id"`
	StaffID    string    `json:"staff_id"`
	Date       time.Time `json:"appointment_date"`
	Notes      string    `json:"notes"`
}

type UpdateAppointmentRequest struct {
	CustomerID *string            `json:"customer_id"`
	StaffID    *string            `json:"staff_id"`
	Date       *time.Time         `json:"appointment_date"`
	Status     *AppointmentStatus `json:"status"`
	Notes      *string            `json:"notes"`
}
