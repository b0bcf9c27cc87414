package domain

import "time"

// PatientImage is metadata for an uploaded radiograph or photo.
type PatientImage struct {
	ID                string
	PatientID         string
	ImageType         string
	FilePath          string
	UploadedByStaffID string
	Notes             *string
	UploadedAt        time.Time
}
