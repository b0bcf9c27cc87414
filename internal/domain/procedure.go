package domain

import "time"

// Procedure records a clinical procedure performed under a treatment plan.
type Procedure struct {
	ID             string
	PatientID      string
	DoctorID       string
	AppointmentID  string
	PlanID         string
	ProcedureName  string
	ProcedureNotes string
	PerformedAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
