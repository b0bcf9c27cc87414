package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// DoctorRequest payload for creating or updating a doctor profile.
type DoctorRequest struct {
	FullName string        `json:"full_name"`
	Gender   domain.Gender `json:"gender"`
	Phone    string        `json:"phone"`
	Email    string        `json:"email"`
	HireDate time.Time     `json:"hire_date"`
}

// DoctorResponse mirrors a doctor profile.
type DoctorResponse struct {
	ID        string        `json:"id"`
	FullName  string        `json:"full_name"`
	Gender    domain.Gender `json:"gender"`
	Phone     string        `json:"phone"`
	Email     string        `json:"email"`
	HireDate  time.Time     `json:"hire_date"`
	StaffID   *string       `json:"staff_id"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
