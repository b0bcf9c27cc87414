package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// ExpenseRepository persists clinic expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	Update(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, offset, limit int) ([]domain.Expense, error)
	Delete(ctx context.Context, id string) error
}

type expenseRepository struct {
	db Querier
}

// NewExpenseRepository constructs the repository.
func NewExpenseRepository(db Querier) ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, category, amount, expense_date, reason, staff_id, created_at`

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	const query = `
        INSERT INTO expenses (category, amount, expense_date, reason, staff_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		expense.Category,
		expense.Amount,
		expense.ExpenseDate,
		expense.Reason,
		expense.StaffID,
	).Scan(&expense.ID, &expense.CreatedAt)
}

func (r *expenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	const query = `
        UPDATE expenses
        SET category=$1, amount=$2, expense_date=$3, reason=$4, staff_id=$5
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		expense.Category,
		expense.Amount,
		expense.ExpenseDate,
		expense.Reason,
		expense.StaffID,
		expense.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	const query = `SELECT ` + expenseColumns + ` FROM expenses WHERE id=$1`

	var expense domain.Expense
	if err := scanExpense(r.db.QueryRow(ctx, query, id), &expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) List(ctx context.Context, offset, limit int) ([]domain.Expense, error) {
	const query = `
        SELECT ` + expenseColumns + `
        FROM expenses ORDER BY expense_date DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := scanExpense(rows, &expense); err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanExpense(row pgx.Row, expense *domain.Expense) error {
	return row.Scan(
		&expense.ID,
		&expense.Category,
		&expense.Amount,
		&expense.ExpenseDate,
		&expense.Reason,
		&expense.StaffID,
		&expense.CreatedAt,
	)
}
