package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// PatientRequest payload for creating or updating a patient; absent fields
// are left unchanged on update.
type PatientRequest struct {
	FullName          *string        `json:"full_name"`
	Gender            *domain.Gender `json:"gender"`
	DateOfBirth       *time.Time     `json:"date_of_birth"`
	Phone             *string        `json:"phone"`
	Email             *string        `json:"email"`
	Address           *string        `json:"address"`
	Allergies         *string        `json:"allergies"`
	MedicalConditions *string        `json:"medical_conditions"`
}

// PatientResponse mirrors a patient record.
type PatientResponse struct {
	ID                string        `json:"id"`
	FullName          string        `json:"full_name"`
	Gender            domain.Gender `json:"gender"`
	DateOfBirth       time.Time     `json:"date_of_birth"`
	Phone             string        `json:"phone"`
	Email             string        `json:"email"`
	Address           *string       `json:"address"`
	Allergies         *string       `json:"allergies"`
	MedicalConditions *string       `json:"medical_conditions"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
