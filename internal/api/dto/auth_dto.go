package dto

import (
	"time"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// RegisterRequest payload.
type RegisterRequest struct {
	Email    string           `json:"email"`
	Password string           `json:"password"`
	FullName string           `json:"full_name"`
	Phone    string           `json:"phone"`
	Role     domain.StaffRole `json:"role"`
}

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChangeRequest payload for authenticated password changes.
type PasswordChangeRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AdminPasswordResetRequest payload for the admin recovery path.
type AdminPasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

// StaffResponse mirrors a staff account without the password hash.
type StaffResponse struct {
	ID        string           `json:"id"`
	FullName  string           `json:"full_name"`
	Phone     *string          `json:"phone"`
	Email     string           `json:"email"`
	Role      domain.StaffRole `json:"role"`
	HireDate  *time.Time       `json:"hire_date"`
	DoctorID  *string          `json:"doctor_id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AuthResponse couples an account with its access token.
type AuthResponse struct {
	User        StaffResponse `json:"user"`
	AccessToken string        `json:"access_token"`
}
