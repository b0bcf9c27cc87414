package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// FinanceService manages expenses and non-treatment income.
type FinanceService struct {
	expenses repository.ExpenseRepository
	incomes  repository.OtherIncomeRepository
	staff    repository.StaffRepository
	patients repository.PatientRepository
}

// NewFinanceService constructs the service.
func NewFinanceService(
	expenses repository.ExpenseRepository,
	incomes repository.OtherIncomeRepository,
	staff repository.StaffRepository,
	patients repository.PatientRepository,
) *FinanceService {
	return &FinanceService{expenses: expenses, incomes: incomes, staff: staff, patients: patients}
}

// ExpenseInput carries writable expense fields.
type ExpenseInput struct {
	Category    *string
	Amount      *float64
	ExpenseDate *time.Time
	Reason      *string
	StaffID     *string
}

// OtherIncomeInput carries writable income fields.
type OtherIncomeInput struct {
	Source     *string
	Amount     *float64
	IncomeDate *time.Time
	StaffID    *string
	PatientID  *string
}

// CreateExpense records an expense; the staff account it is attributed to
// must exist.
func (s *FinanceService) CreateExpense(ctx context.Context, input ExpenseInput) (*domain.Expense, error) {
	if input.Category == nil || input.Amount == nil || input.StaffID == nil {
		return nil, apperrors.NewValidationError("category, amount and staff_id are required", nil)
	}
	if *input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", map[string]any{"amount": *input.Amount})
	}
	if err := s.checkStaff(ctx, *input.StaffID); err != nil {
		return nil, err
	}

	expenseDate := time.Now()
	if input.ExpenseDate != nil {
		expenseDate = *input.ExpenseDate
	}
	expense := &domain.Expense{
		Category:    *input.Category,
		Amount:      *input.Amount,
		ExpenseDate: expenseDate,
		StaffID:     *input.StaffID,
	}
	if input.Reason != nil {
		expense.Reason = *input.Reason
	}

	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, apperrors.MapError(err)
	}
	return expense, nil
}

// GetExpense fetches an expense by id.
func (s *FinanceService) GetExpense(ctx context.Context, id string) (*domain.Expense, error) {
	expense, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("expense", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return expense, nil
}

// ListExpenses returns expenses with offset/limit pagination.
func (s *FinanceService) ListExpenses(ctx context.Context, offset, limit int) ([]domain.Expense, error) {
	return s.expenses.List(ctx, offset, limit)
}

// UpdateExpense modifies an expense.
func (s *FinanceService) UpdateExpense(ctx context.Context, id string, input ExpenseInput) (*domain.Expense, error) {
	expense, err := s.GetExpense(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperrors.NewValidationError("amount must be positive", map[string]any{"amount": *input.Amount})
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.Reason != nil {
		expense.Reason = *input.Reason
	}
	if input.StaffID != nil {
		if err := s.checkStaff(ctx, *input.StaffID); err != nil {
			return nil, err
		}
		expense.StaffID = *input.StaffID
	}

	if err := s.expenses.Update(ctx, expense); err != nil {
		return nil, apperrors.MapError(err)
	}
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *FinanceService) DeleteExpense(ctx context.Context, id string) error {
	if err := s.expenses.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("expense", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// CreateOtherIncome records a non-treatment income; both the staff account
// and the patient it references must exist.
func (s *FinanceService) CreateOtherIncome(ctx context.Context, input OtherIncomeInput) (*domain.OtherIncome, error) {
	if input.Source == nil || input.Amount == nil || input.StaffID == nil || input.PatientID == nil {
		return nil, apperrors.NewValidationError("source, amount, staff_id and patient_id are required", nil)
	}
	if *input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", map[string]any{"amount": *input.Amount})
	}
	if err := s.checkStaff(ctx, *input.StaffID); err != nil {
		return nil, err
	}
	if err := s.checkPatient(ctx, *input.PatientID); err != nil {
		return nil, err
	}

	incomeDate := time.Now()
	if input.IncomeDate != nil {
		incomeDate = *input.IncomeDate
	}
	income := &domain.OtherIncome{
		Source:     *input.Source,
		Amount:     *input.Amount,
		IncomeDate: incomeDate,
		StaffID:    *input.StaffID,
		PatientID:  *input.PatientID,
	}

	if err := s.incomes.Create(ctx, income); err != nil {
		return nil, apperrors.MapError(err)
	}
	return income, nil
}

// GetOtherIncome fetches an income record by id.
func (s *FinanceService) GetOtherIncome(ctx context.Context, id string) (*domain.OtherIncome, error) {
	income, err := s.incomes.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("other income", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return income, nil
}

// ListOtherIncomes returns income records with offset/limit pagination.
func (s *FinanceService) ListOtherIncomes(ctx context.Context, offset, limit int) ([]domain.OtherIncome, error) {
	return s.incomes.List(ctx, offset, limit)
}

// UpdateOtherIncome modifies an income record.
func (s *FinanceService) UpdateOtherIncome(ctx context.Context, id string, input OtherIncomeInput) (*domain.OtherIncome, error) {
	income, err := s.GetOtherIncome(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Source != nil {
		income.Source = *input.Source
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperrors.NewValidationError("amount must be positive", map[string]any{"amount": *input.Amount})
		}
		income.Amount = *input.Amount
	}
	if input.IncomeDate != nil {
		income.IncomeDate = *input.IncomeDate
	}
	if input.StaffID != nil {
		if err := s.checkStaff(ctx, *input.StaffID); err != nil {
			return nil, err
		}
		income.StaffID = *input.StaffID
	}
	if input.PatientID != nil {
		if err := s.checkPatient(ctx, *input.PatientID); err != nil {
			return nil, err
		}
		income.PatientID = *input.PatientID
	}

	if err := s.incomes.Update(ctx, income); err != nil {
		return nil, apperrors.MapError(err)
	}
	return income, nil
}

// DeleteOtherIncome removes an income record.
func (s *FinanceService) DeleteOtherIncome(ctx context.Context, id string) error {
	if err := s.incomes.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("other income", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *FinanceService) checkStaff(ctx context.Context, id string) error {
	if _, err := s.staff.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("staff", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *FinanceService) checkPatient(ctx context.Context, id string) error {
	if _, err := s.patients.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
