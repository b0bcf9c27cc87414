package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// PatientImageRepository persists uploaded image metadata.
type PatientImageRepository interface {
	Create(ctx context.Context, image *domain.PatientImage) error
	Update(ctx context.Context, image *domain.PatientImage) error
	GetByID(ctx context.Context, id string) (*domain.PatientImage, error)
	List(ctx context.Context, offset, limit int) ([]domain.PatientImage, error)
	Delete(ctx context.Context, id string) error
}

type patientImageRepository struct {
	db Querier
}

// NewPatientImageRepository constructs the repository.
func NewPatientImageRepository(db Querier) PatientImageRepository {
	return &patientImageRepository{db: db}
}

const patientImageColumns = `id, patient_id, image_type, file_path, uploaded_by_staff_id, notes, uploaded_at`

func (r *patientImageRepository) Create(ctx context.Context, image *domain.PatientImage) error {
	const query = `
        INSERT INTO patient_images (patient_id, image_type, file_path, uploaded_by_staff_id, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, uploaded_at`

	return r.db.QueryRow(ctx, query,
		image.PatientID,
		image.ImageType,
		image.FilePath,
		image.UploadedByStaffID,
		image.Notes,
	).Scan(&image.ID, &image.UploadedAt)
}

func (r *patientImageRepository) Update(ctx context.Context, image *domain.PatientImage) error {
	const query = `
        UPDATE patient_images
        SET patient_id=$1, image_type=$2, file_path=$3, uploaded_by_staff_id=$4, notes=$5
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		image.PatientID,
		image.ImageType,
		image.FilePath,
		image.UploadedByStaffID,
		image.Notes,
		image.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *patientImageRepository) GetByID(ctx context.Context, id string) (*domain.PatientImage, error) {
	const query = `SELECT ` + patientImageColumns + ` FROM patient_images WHERE id=$1`

	var image domain.PatientImage
	if err := scanPatientImage(r.db.QueryRow(ctx, query, id), &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *patientImageRepository) List(ctx context.Context, offset, limit int) ([]domain.PatientImage, error) {
	const query = `
        SELECT ` + patientImageColumns + `
        FROM patient_images ORDER BY uploaded_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.PatientImage
	for rows.Next() {
		var image domain.PatientImage
		if err := scanPatientImage(rows, &image); err != nil {
			return nil, err
		}
		result = append(result, image)
	}
	return result, rows.Err()
}

func (r *patientImageRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM patient_images WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanPatientImage(row pgx.Row, image *domain.PatientImage) error {
	return row.Scan(
		&image.ID,
		&image.PatientID,
		&image.ImageType,
		&image.FilePath,
		&image.UploadedByStaffID,
		&image.Notes,
		&image.UploadedAt,
	)
}
