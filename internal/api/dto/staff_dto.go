package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// CreateStaffRequest payload.
type CreateStaffRequest struct {
	FullName *string           `json:"full_name"`
	Phone    *string           `json:"phone"`
	Email    *string           `json:"email"`
	Password *string           `json:"password"`
	Role     *domain.StaffRole `json:"role"`
	HireDate *time.Time        `json:"hire_date"`
}

// UpdateStaffRequest payload; absent fields are left unchanged.
type UpdateStaffRequest = CreateStaffRequest
