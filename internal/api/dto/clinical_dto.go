package dto

import (
	"encoding/json"
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// MedicalRecordRequest payload for creating or updating a medical record.
type MedicalRecordRequest struct {
	PatientID         *string         `json:"patient_id"`
	DoctorID          *string         `json:"doctor_id"`
	Diagnosis         *string         `json:"diagnosis"`
	ClinicalFindings  *string         `json:"clinical_findings"`
	Treatment         *string         `json:"treatment"`
	Allergies         *string         `json:"allergies"`
	MedicalConditions *string         `json:"medical_conditions"`
	CurrentMeds       json.RawMessage `json:"current_meds"`
}

// MedicalRecordResponse mirrors a medical record.
type MedicalRecordResponse struct {
	ID                string          `json:"id"`
	PatientID         string          `json:"patient_id"`
	DoctorID          string          `json:"doctor_id"`
	Diagnosis         string          `json:"diagnosis"`
	ClinicalFindings  string          `json:"clinical_findings"`
	Treatment         string          `json:"treatment"`
	Allergies         string          `json:"allergies"`
	MedicalConditions string          `json:"medical_conditions"`
	CurrentMeds       json.RawMessage `json:"current_meds"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// TreatmentPlanRequest payload for creating or updating a treatment plan.
type TreatmentPlanRequest struct {
	PatientID        *string                     `json:"patient_id"`
	DoctorID         *string                     `json:"doctor_id"`
	AppointmentID    *string                     `json:"appointment_id"`
	DiagnosisSummary *string                     `json:"diagnosis_summary"`
	PlanDetails      *string                     `json:"plan_details"`
	Prescription     json.RawMessage             `json:"prescription"`
	Status           *domain.TreatmentPlanStatus `json:"status"`
}

// TreatmentPlanResponse mirrors a treatment plan.
type TreatmentPlanResponse struct {
	ID               string                     `json:"id"`
	PatientID        string                     `json:"patient_id"`
	DoctorID         string                     `json:"doctor_id"`
	AppointmentID    string                     `json:"appointment_id"`
	DiagnosisSummary string                     `json:"diagnosis_summary"`
	PlanDetails      string                     `json:"plan_details"`
	Prescription     json.RawMessage            `json:"prescription"`
	Status           domain.TreatmentPlanStatus `json:"status"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

// ProcedureRequest payload for creating or updating a procedure.
type ProcedureRequest struct {
	PlanID         *string    `json:"plan_id"`
	ProcedureName  *string    `json:"procedure_name"`
	ProcedureNotes *string    `json:"procedure_notes"`
	PerformedAt    *time.Time `json:"performed_at"`
}

// ProcedureResponse mirrors a procedure.
type ProcedureResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	AppointmentID  string    `json:"appointment_id"`
	PlanID         string    `json:"plan_id"`
	ProcedureName  string    `json:"procedure_name"`
	ProcedureNotes string    `json:"procedure_notes"`
	PerformedAt    time.Time `json:"performed_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
