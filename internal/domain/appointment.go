package domain

import "time"

// AppointmentStatus enumerates appointment lifecycle states.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// ValidAppointmentStatus reports whether the value belongs to the status vocabulary.
func ValidAppointmentStatus(status AppointmentStatus) bool {
	switch status {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	}
	return false
}

// Appointment links a patient and a doctor at a point in time.
type Appointment struct {
	ID              string
	Status          AppointmentStatus
	AppointmentTime time.Time
	PatientID       string
	DoctorID        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
