package domain

import "time"

// Gender values accepted for doctors and patients.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// DoctorProfile is the clinical profile of a practicing doctor. It is created
// together with a StaffAccount of role DOCTOR; the two rows reference each
// other through StaffID and StaffAccount.DoctorID.
type DoctorProfile struct {
	ID        string
	FullName  string
	Gender    Gender
	Phone     string
	Email     string
	HireDate  time.Time
	StaffID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
