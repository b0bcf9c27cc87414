package domain

import "time"

// MedicalRecord captures a clinical encounter for a patient.
type MedicalRecord struct {
	ID                string
	PatientID         string
	DoctorID          string
	Diagnosis         string
	ClinicalFindings  string
	Treatment         string
	Allergies         string
	MedicalConditions string
	CurrentMeds       []byte // raw JSON document
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
