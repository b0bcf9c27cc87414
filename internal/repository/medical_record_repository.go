package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// MedicalRecordRepository handles persistence for medical records.
type MedicalRecordRepository interface {
	Create(ctx context.Context, record *domain.MedicalRecord) error
	Update(ctx context.Context, record *domain.MedicalRecord) error
	GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.MedicalRecord, error)
	Delete(ctx context.Context, id string) error
}

type medicalRecordRepository struct {
	db Querier
}

// NewMedicalRecordRepository instantiates the repository.
func NewMedicalRecordRepository(db Querier) MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

const medicalRecordColumns = `id, patient_id, doctor_id, diagnosis, clinical_findings, treatment, allergies, medical_conditions, current_meds_json, created_at, updated_at`

func (r *medicalRecordRepository) Create(ctx context.Context, record *domain.MedicalRecord) error {
	const query = `
        INSERT INTO medical_records (patient_id, doctor_id, diagnosis, clinical_findings, treatment, allergies, medical_conditions, current_meds_json)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.Diagnosis,
		record.ClinicalFindings,
		record.Treatment,
		record.Allergies,
		record.MedicalConditions,
		record.CurrentMeds,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
}

func (r *medicalRecordRepository) Update(ctx context.Context, record *domain.MedicalRecord) error {
	const query = `
        UPDATE medical_records
        SET patient_id=$1, doctor_id=$2, diagnosis=$3, clinical_findings=$4, treatment=$5, allergies=$6, medical_conditions=$7, current_meds_json=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.db.Exec(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.Diagnosis,
		record.ClinicalFindings,
		record.Treatment,
		record.Allergies,
		record.MedicalConditions,
		record.CurrentMeds,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *medicalRecordRepository) GetByID(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	const query = `SELECT ` + medicalRecordColumns + ` FROM medical_records WHERE id=$1`

	var record domain.MedicalRecord
	if err := scanMedicalRecord(r.db.QueryRow(ctx, query, id), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *medicalRecordRepository) List(ctx context.Context, offset, limit int) ([]domain.MedicalRecord, error) {
	const query = `
        SELECT ` + medicalRecordColumns + `
        FROM medical_records ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MedicalRecord
	for rows.Next() {
		var record domain.MedicalRecord
		if err := scanMedicalRecord(rows, &record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

func (r *medicalRecordRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM medical_records WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanMedicalRecord(row pgx.Row, record *domain.MedicalRecord) error {
	return row.Scan(
		&record.ID,
		&record.PatientID,
		&record.DoctorID,
		&record.Diagnosis,
		&record.ClinicalFindings,
		&record.Treatment,
		&record.Allergies,
		&record.MedicalConditions,
		&record.CurrentMeds,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
}
