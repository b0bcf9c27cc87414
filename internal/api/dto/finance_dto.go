package dto

import "time"

// ExpenseRequest payload for creating or updating an expense.
type ExpenseRequest struct {
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	ExpenseDate *time.Time `json:"expense_date"`
	Reason      *string    `json:"reason"`
	StaffID     *string    `json:"staff_id"`
}

// ExpenseResponse mirrors an expense record.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date"`
	Reason      string    `json:"reason"`
	StaffID     string    `json:"staff_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// OtherIncomeRequest payload for creating or updating a non-treatment income.
type OtherIncomeRequest struct {
	Source     *string    `json:"source"`
	Amount     *float64   `json:"amount"`
	IncomeDate *time.Time `json:"income_date"`
	StaffID    *string    `json:"staff_id"`
	PatientID  *string    `json:"patient_id"`
}

// OtherIncomeResponse mirrors an income record.
type OtherIncomeResponse struct {
	ID         string    `json:"id"`
	Source     string    `json:"source"`
	Amount     float64   `json:"amount"`
	IncomeDate time.Time `json:"income_date"`
	StaffID    string    `json:"staff_id"`
	PatientID  string    `json:"patient_id"`
	CreatedAt  time.Time `json:"created_at"`
}
