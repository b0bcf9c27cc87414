package domain

import "time"

// TreatmentPlanStatus enumerates plan lifecycle states.
type TreatmentPlanStatus string

const (
	TreatmentPlanDraft     TreatmentPlanStatus = "draft"
	TreatmentPlanActive    TreatmentPlanStatus = "active"
	TreatmentPlanCompleted TreatmentPlanStatus = "completed"
	TreatmentPlanCancelled TreatmentPlanStatus = "cancelled"
)

// ValidTreatmentPlanStatus reports whether the value belongs to the status vocabulary.
func ValidTreatmentPlanStatus(status TreatmentPlanStatus) bool {
	switch status {
	case TreatmentPlanDraft, TreatmentPlanActive, TreatmentPlanCompleted, TreatmentPlanCancelled:
		return true
	}
	return false
}

// TreatmentPlan describes the agreed course of treatment following an appointment.
type TreatmentPlan struct {
	ID               string
	PatientID        string
	DoctorID         string
	AppointmentID    string
	DiagnosisSummary string
	PlanDetails      string
	Prescription     []byte
	Status           TreatmentPlanStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
