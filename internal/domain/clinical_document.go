package domain

import "time"

// ClinicalDocument is metadata for a consent form or report stored on disk.
type ClinicalDocument struct {
	ID             string
	PatientID      string
	AppointmentID  string
	DocumentType   string
	ConsentVersion string
	FilePath       string
	CreatedAt      time.Time
}
