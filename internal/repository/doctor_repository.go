package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// DoctorRepository handles persistence for doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.DoctorProfile) error
	Update(ctx context.Context, doctor *domain.DoctorProfile) error
	GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error)
	GetByFullName(ctx context.Context, fullName string) (*domain.DoctorProfile, error)
	List(ctx context.Context, offset, limit int) ([]domain.DoctorProfile, error)
	Delete(ctx context.Context, id string) error
}

type doctorRepository struct {
	db Querier
}

// NewDoctorRepository instantiates the repository over a pool or transaction.
func NewDoctorRepository(db Querier) DoctorRepository {
	return &doctorRepository{db: db}
}

const doctorColumns = `id, full_name, gender, phone, email, hire_date, staff_id, created_at, updated_at`

func (r *doctorRepository) Create(ctx context.Context, doctor *domain.DoctorProfile) error {
	const query = `
        INSERT INTO doctors (full_name, gender, phone, email, hire_date, staff_id)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		doctor.FullName,
		doctor.Gender,
		doctor.Phone,
		doctor.Email,
		doctor.HireDate,
		doctor.StaffID,
	).Scan(&doctor.ID, &doctor.CreatedAt, &doctor.UpdatedAt)
}

func (r *doctorRepository) Update(ctx context.Context, doctor *domain.DoctorProfile) error {
	const query = `
        UPDATE doctors
        SET full_name=$1, gender=$2, phone=$3, email=$4, hire_date=$5, staff_id=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.db.Exec(ctx, query,
		doctor.FullName,
		doctor.Gender,
		doctor.Phone,
		doctor.Email,
		doctor.HireDate,
		doctor.StaffID,
		doctor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepository) GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	const query = `SELECT ` + doctorColumns + ` FROM doctors WHERE id=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *doctorRepository) GetByFullName(ctx context.Context, fullName string) (*domain.DoctorProfile, error) {
	const query = `SELECT ` + doctorColumns + ` FROM doctors WHERE full_name=$1`
	return r.scanOne(r.db.QueryRow(ctx, query, fullName))
}

func (r *doctorRepository) List(ctx context.Context, offset, limit int) ([]domain.DoctorProfile, error) {
	const query = `
        SELECT ` + doctorColumns + `
        FROM doctors ORDER BY hire_date DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.DoctorProfile
	for rows.Next() {
		var doctor domain.DoctorProfile
		if err := scanDoctor(rows, &doctor); err != nil {
			return nil, err
		}
		result = append(result, doctor)
	}
	return result, rows.Err()
}

func (r *doctorRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM doctors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *doctorRepository) scanOne(row pgx.Row) (*domain.DoctorProfile, error) {
	var doctor domain.DoctorProfile
	if err := scanDoctor(row, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

func scanDoctor(row pgx.Row, doctor *domain.DoctorProfile) error {
	return row.Scan(
		&doctor.ID,
		&doctor.FullName,
		&doctor.Gender,
		&doctor.Phone,
		&doctor.Email,
		&doctor.HireDate,
		&doctor.StaffID,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
}
