package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// OtherIncomeRepository persists non-treatment incomes.
type OtherIncomeRepository interface {
	Create(ctx context.Context, income *domain.OtherIncome) error
	Update(ctx context.Context, income *domain.OtherIncome) error
	GetByID(ctx context.Context, id string) (*domain.OtherIncome, error)
	List(ctx context.Context, offset, limit int) ([]domain.OtherIncome, error)
	Delete(ctx context.Context, id string) error
}

type otherIncomeRepository struct {
	db Querier
}

// NewOtherIncomeRepository constructs the repository.
func NewOtherIncomeRepository(db Querier) OtherIncomeRepository {
	return &otherIncomeRepository{db: db}
}

const otherIncomeColumns = `id, source, amount, income_date, staff_id, patient_id, created_at`

func (r *otherIncomeRepository) Create(ctx context.Context, income *domain.OtherIncome) error {
	const query = `
        INSERT INTO other_incomes (source, amount, income_date, staff_id, patient_id)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		income.Source,
		income.Amount,
		income.IncomeDate,
		income.StaffID,
		income.PatientID,
	).Scan(&income.ID, &income.CreatedAt)
}

func (r *otherIncomeRepository) Update(ctx context.Context, income *domain.OtherIncome) error {
	const query = `
        UPDATE other_incomes
        SET source=$1, amount=$2, income_date=$3, staff_id=$4, patient_id=$5
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		income.Source,
		income.Amount,
		income.IncomeDate,
		income.StaffID,
		income.PatientID,
		income.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *otherIncomeRepository) GetByID(ctx context.Context, id string) (*domain.OtherIncome, error) {
	const query = `SELECT ` + otherIncomeColumns + ` FROM other_incomes WHERE id=$1`

	var income domain.OtherIncome
	if err := scanOtherIncome(r.db.QueryRow(ctx, query, id), &income); err != nil {
		return nil, err
	}
	return &income, nil
}

func (r *otherIncomeRepository) List(ctx context.Context, offset, limit int) ([]domain.OtherIncome, error) {
	const query = `
        SELECT ` + otherIncomeColumns + `
        FROM other_incomes ORDER BY income_date DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.OtherIncome
	for rows.Next() {
		var income domain.OtherIncome
		if err := scanOtherIncome(rows, &income); err != nil {
			return nil, err
		}
		result = append(result, income)
	}
	return result, rows.Err()
}

func (r *otherIncomeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM other_incomes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanOtherIncome(row pgx.Row, income *domain.OtherIncome) error {
	return row.Scan(
		&income.ID,
		&income.Source,
		&income.Amount,
		&income.IncomeDate,
		&income.StaffID,
		&income.PatientID,
		&income.CreatedAt,
	)
}
