package domain

import "time"

// Expense is a clinic outgoing recorded against a staff account.
type Expense struct {
	ID          string
	Category    string
	Amount      float64
	ExpenseDate time.Time
	Reason      string
	StaffID     string
	CreatedAt   time.Time
}

// OtherIncome is a non-treatment income recorded against a staff account and patient.
type OtherIncome struct {
	ID         string
	Source     string
	Amount     float64
	IncomeDate time.Time
	StaffID    string
	PatientID  string
	CreatedAt  time.Time
}
