package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// ProcedureRepository handles persistence for performed procedures.
type ProcedureRepository interface {
	Create(ctx context.Context, procedure *domain.Procedure) error
	Update(ctx context.Context, procedure *domain.Procedure) error
	GetByID(ctx context.Context, id string) (*domain.Procedure, error)
	List(ctx context.Context, offset, limit int) ([]domain.Procedure, error)
	Delete(ctx context.Context, id string) error
}

type procedureRepository struct {
	db Querier
}

// NewProcedureRepository instantiates the repository.
func NewProcedureRepository(db Querier) ProcedureRepository {
	return &procedureRepository{db: db}
}

const procedureColumns = `id, patient_id, doctor_id, appointment_id, plan_id, procedure_name, procedure_notes, performed_at, created_at, updated_at`

func (r *procedureRepository) Create(ctx context.Context, procedure *domain.Procedure) error {
	const query = `
        INSERT INTO procedures (patient_id, doctor_id, appointment_id, plan_id, procedure_name, procedure_notes, performed_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		procedure.PatientID,
		procedure.DoctorID,
		procedure.AppointmentID,
		procedure.PlanID,
		procedure.ProcedureName,
		procedure.ProcedureNotes,
		procedure.PerformedAt,
	).Scan(&procedure.ID, &procedure.CreatedAt, &procedure.UpdatedAt)
}

func (r *procedureRepository) Update(ctx context.Context, procedure *domain.Procedure) error {
	const query = `
        UPDATE procedures
        SET patient_id=$1, doctor_id=$2, appointment_id=$3, plan_id=$4, procedure_name=$5, procedure_notes=$6, performed_at=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.db.Exec(ctx, query,
		procedure.PatientID,
		procedure.DoctorID,
		procedure.AppointmentID,
		procedure.PlanID,
		procedure.ProcedureName,
		procedure.ProcedureNotes,
		procedure.PerformedAt,
		procedure.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *procedureRepository) GetByID(ctx context.Context, id string) (*domain.Procedure, error) {
	const query = `SELECT ` + procedureColumns + ` FROM procedures WHERE id=$1`

	var procedure domain.Procedure
	if err := scanProcedure(r.db.QueryRow(ctx, query, id), &procedure); err != nil {
		return nil, err
	}
	return &procedure, nil
}

func (r *procedureRepository) List(ctx context.Context, offset, limit int) ([]domain.Procedure, error) {
	const query = `
        SELECT ` + procedureColumns + `
        FROM procedures ORDER BY performed_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Procedure
	for rows.Next() {
		var procedure domain.Procedure
		if err := scanProcedure(rows, &procedure); err != nil {
			return nil, err
		}
		result = append(result, procedure)
	}
	return result, rows.Err()
}

func (r *procedureRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM procedures WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanProcedure(row pgx.Row, procedure *domain.Procedure) error {
	return row.Scan(
		&procedure.ID,
		&procedure.PatientID,
		&procedure.DoctorID,
		&procedure.AppointmentID,
		&procedure.PlanID,
		&procedure.ProcedureName,
		&procedure.ProcedureNotes,
		&procedure.PerformedAt,
		&procedure.CreatedAt,
		&procedure.UpdatedAt,
	)
}
