package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// StaffRepository handles persistence for staff credential records.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffAccount) error
	Update(ctx context.Context, staff *domain.StaffAccount) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetDoctorID(ctx context.Context, id string, doctorID *string) error
	GetByID(ctx context.Context, id string) (*domain.StaffAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error)
	List(ctx context.Context, offset, limit int) ([]domain.StaffAccount, error)
	Delete(ctx context.Context, id string) error
}

type staffRepository struct {
	db Querier
}

// NewStaffRepository instantiates the repository over a pool or transaction.
func NewStaffRepository(db Querier) StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, phone, email, password_hash, role, hire_date, doctor_id, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffAccount) error {
	const query = `
        INSERT INTO staff (full_name, phone, email, password_hash, role, hire_date)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		staff.FullName,
		staff.Phone,
		staff.Email,
		staff.PasswordHash,
		staff.Role,
		staff.HireDate,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffAccount) error {
	const query = `
        UPDATE staff
        SET full_name=$1, phone=$2, email=$3, password_hash=$4, role=$5, hire_date=$6, doctor_id=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.db.Exec(ctx, query,
		staff.FullName,
		staff.Phone,
		staff.Email,
		staff.PasswordHash,
		staff.Role,
		staff.HireDate,
		staff.DoctorID,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `
        UPDATE staff SET password_hash=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) SetDoctorID(ctx context.Context, id string, doctorID *string) error {
	const query = `
        UPDATE staff SET doctor_id=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.db.Exec(ctx, query, doctorID, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.StaffAccount, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	const query = `SELECT ` + staffColumns + ` FROM staff WHERE email=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, email))
}

func (r *staffRepository) List(ctx context.Context, offset, limit int) ([]domain.StaffAccount, error) {
	const query = `
        SELECT ` + staffColumns + `
        FROM staff ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffAccount
	for rows.Next() {
		var staff domain.StaffAccount
		if err := scanStaff(rows, &staff); err != nil {
			return nil, err
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func (r *staffRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) scanOne(row pgx.Row) (*domain.StaffAccount, error) {
	var staff domain.StaffAccount
	if err := scanStaff(row, &staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func scanStaff(row pgx.Row, staff *domain.StaffAccount) error {
	return row.Scan(
		&staff.ID,
		&staff.FullName,
		&staff.Phone,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.HireDate,
		&staff.DoctorID,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	)
}
