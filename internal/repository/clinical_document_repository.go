package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// ClinicalDocumentRepository persists clinical document metadata.
type ClinicalDocumentRepository interface {
	Create(ctx context.Context, document *domain.ClinicalDocument) error
	Update(ctx context.Context, document *domain.ClinicalDocument) error
	GetByID(ctx context.Context, id string) (*domain.ClinicalDocument, error)
	List(ctx context.Context, offset, limit int) ([]domain.ClinicalDocument, error)
	Delete(ctx context.Context, id string) error
}

type clinicalDocumentRepository struct {
	db Querier
}

// NewClinicalDocumentRepository constructs the repository.
func NewClinicalDocumentRepository(db Querier) ClinicalDocumentRepository {
	return &clinicalDocumentRepository{db: db}
}

const clinicalDocumentColumns = `id, patient_id, appointment_id, document_type, consent_version, file_path, created_at`

func (r *clinicalDocumentRepository) Create(ctx context.Context, document *domain.ClinicalDocument) error {
	const query = `
        INSERT INTO clinical_documents (patient_id, appointment_id, document_type, consent_version, file_path)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		document.PatientID,
		document.AppointmentID,
		document.DocumentType,
		document.ConsentVersion,
		document.FilePath,
	).Scan(&document.ID, &document.CreatedAt)
}

func (r *clinicalDocumentRepository) Update(ctx context.Context, document *domain.ClinicalDocument) error {
	const query = `
        UPDATE clinical_documents
        SET patient_id=$1, appointment_id=$2, document_type=$3, consent_version=$4, file_path=$5
        WHERE id=$6`

	cmd, err := r.db.Exec(ctx, query,
		document.PatientID,
		document.AppointmentID,
		document.DocumentType,
		document.ConsentVersion,
		document.FilePath,
		document.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clinicalDocumentRepository) GetByID(ctx context.Context, id string) (*domain.ClinicalDocument, error) {
	const query = `SELECT ` + clinicalDocumentColumns + ` FROM clinical_documents WHERE id=$1`

	var document domain.ClinicalDocument
	if err := scanClinicalDocument(r.db.QueryRow(ctx, query, id), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *clinicalDocumentRepository) List(ctx context.Context, offset, limit int) ([]domain.ClinicalDocument, error) {
	const query = `
        SELECT ` + clinicalDocumentColumns + `
        FROM clinical_documents ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ClinicalDocument
	for rows.Next() {
		var document domain.ClinicalDocument
		if err := scanClinicalDocument(rows, &document); err != nil {
			return nil, err
		}
		result = append(result, document)
	}
	return result, rows.Err()
}

func (r *clinicalDocumentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM clinical_documents WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanClinicalDocument(row pgx.Row, document *domain.ClinicalDocument) error {
	return row.Scan(
		&document.ID,
		&document.PatientID,
		&document.AppointmentID,
		&document.DocumentType,
		&document.ConsentVersion,
		&document.FilePath,
		&document.CreatedAt,
	)
}
