package events

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventDoctorOnboarded          EventType = "doctor_onboarded"
	EventAppointmentCreated       EventType = "appointment_created"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
	EventDocumentUploaded         EventType = "document_uploaded"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// DoctorOnboardedPayload payload.
type DoctorOnboardedPayload struct {
	DoctorID string `json:"doctor_id"`
	StaffID  string `json:"staff_id"`
	FullName string `json:"full_name"`
}

// AppointmentCreatedPayload payload.
type AppointmentCreatedPayload struct {
	PatientID       string    `json:"patient_id"`
	DoctorID        string    `json:"doctor_id"`
	AppointmentTime time.Time `json:"appointment_time"`
}

// AppointmentStatusChangedPayload payload.
type AppointmentStatusChangedPayload struct {
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}

// DocumentUploadedPayload payload.
type DocumentUploadedPayload struct {
	PatientID    string `json:"patient_id"`
	DocumentType string `json:"document_type"`
	FileName     string `json:"file_name"`
}
