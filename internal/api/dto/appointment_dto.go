package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// AppointmentRequest payload for creating or updating an appointment.
type AppointmentRequest struct {
	PatientID       *string                   `json:"patient_id"`
	DoctorID        *string                   `json:"doctor_id"`
	AppointmentTime *time.Time                `json:"appointment_time"`
	Status          *domain.AppointmentStatus `json:"status"`
}

// AppointmentResponse mirrors an appointment.
type AppointmentResponse struct {
	ID              string                   `json:"id"`
	Status          domain.AppointmentStatus `json:"status"`
	AppointmentTime time.Time                `json:"appointment_time"`
	PatientID       string                   `json:"patient_id"`
	DoctorID        string                   `json:"doctor_id"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
}
