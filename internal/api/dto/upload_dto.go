package dto

import "time"

// ClinicalDocumentResponse mirrors clinical document metadata.
type ClinicalDocumentResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	AppointmentID  string    `json:"appointment_id,omitempty"`
	DocumentType   string    `json:"document_type"`
	ConsentVersion string    `json:"consent_version,omitempty"`
	URL            string    `json:"url"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdateClinicalDocumentRequest payload for metadata updates.
type UpdateClinicalDocumentRequest struct {
	AppointmentID  *string `json:"appointment_id"`
	DocumentType   *string `json:"document_type"`
	ConsentVersion *string `json:"consent_version"`
}

// PatientImageResponse mirrors patient image metadata.
type PatientImageResponse struct {
	ID                string    `json:"id"`
	PatientID         string    `json:"patient_id"`
	ImageType         string    `json:"image_type"`
	URL               string    `json:"url"`
	UploadedByStaffID string    `json:"uploaded_by_staff_id"`
	Notes             *string   `json:"notes"`
	UploadedAt        time.Time `json:"uploaded_at"`
}

// UpdatePatientImageRequest payload for metadata updates.
type UpdatePatientImageRequest struct {
	ImageType *string `json:"image_type"`
	Notes     *string `json:"notes"`
}
