package domain

import "time"

// StaffRole enumerates account roles used for endpoint authorization.
type StaffRole string

const (
	StaffRoleSuperAdmin StaffRole = "SUPER_ADMIN"
	StaffRoleAdmin      StaffRole = "ADMIN"
	StaffRoleDoctor     StaffRole = "DOCTOR"
	StaffRoleStaff      StaffRole = "STAFF"
	StaffRoleCustomer   StaffRole = "CUSTOMER"
)

// ValidStaffRole reports whether the value belongs to the role vocabulary.
func ValidStaffRole(role StaffRole) bool {
	switch role {
	case StaffRoleSuperAdmin, StaffRoleAdmin, StaffRoleDoctor, StaffRoleStaff, StaffRoleCustomer:
		return true
	}
	return false
}

// StaffAccount is the login-capable credential record. Every authenticated
// caller is a staff account regardless of clinical role.
type StaffAccount struct {
	ID           string
	FullName     string
	Phone        *string
	Email        string
	PasswordHash string
	Role         StaffRole
	HireDate     *time.Time
	DoctorID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
