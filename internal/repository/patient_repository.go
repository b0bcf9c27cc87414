package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// PatientRepository handles persistence for patient records.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) error
	Update(ctx context.Context, patient *domain.Patient) error
	GetByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context, offset, limit int) ([]domain.Patient, error)
	Delete(ctx context.Context, id string) error
}

type patientRepository struct {
	db Querier
}

// NewPatientRepository instantiates the repository.
func NewPatientRepository(db Querier) PatientRepository {
	return &patientRepository{db: db}
}

const patientColumns = `id, full_name, gender, date_of_birth, phone, email, address, allergies_text, medical_conditions_text, created_at, updated_at`

func (r *patientRepository) Create(ctx context.Context, patient *domain.Patient) error {
	const query = `
        INSERT INTO patients (full_name, gender, date_of_birth, phone, email, address, allergies_text, medical_conditions_text)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		patient.FullName,
		patient.Gender,
		patient.DateOfBirth,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.AllergiesText,
		patient.MedicalConditionsText,
	).Scan(&patient.ID, &patient.CreatedAt, &patient.UpdatedAt)
}

func (r *patientRepository) Update(ctx context.Context, patient *domain.Patient) error {
	const query = `
        UPDATE patients
        SET full_name=$1, gender=$2, date_of_birth=$3, phone=$4, email=$5, address=$6, allergies_text=$7, medical_conditions_text=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.db.Exec(ctx, query,
		patient.FullName,
		patient.Gender,
		patient.DateOfBirth,
		patient.Phone,
		patient.Email,
		patient.Address,
		patient.AllergiesText,
		patient.MedicalConditionsText,
		patient.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	const query = `SELECT ` + patientColumns + ` FROM patients WHERE id=$1`

	var patient domain.Patient
	if err := scanPatient(r.db.QueryRow(ctx, query, id), &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context, offset, limit int) ([]domain.Patient, error) {
	const query = `
        SELECT ` + patientColumns + `
        FROM patients ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Patient
	for rows.Next() {
		var patient domain.Patient
		if err := scanPatient(rows, &patient); err != nil {
			return nil, err
		}
		result = append(result, patient)
	}
	return result, rows.Err()
}

func (r *patientRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM patients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPatient(row pgx.Row, patient *domain.Patient) error {
	return row.Scan(
		&patient.ID,
		&patient.FullName,
		&patient.Gender,
		&patient.DateOfBirth,
		&patient.Phone,
		&patient.Email,
		&patient.Address,
		&patient.AllergiesText,
		&patient.MedicalConditionsText,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
}
