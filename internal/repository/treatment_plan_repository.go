package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// TreatmentPlanRepository handles persistence for treatment plans.
type TreatmentPlanRepository interface {
	Create(ctx context.Context, plan *domain.TreatmentPlan) error
	Update(ctx context.Context, plan *domain.TreatmentPlan) error
	GetByID(ctx context.Context, id string) (*domain.TreatmentPlan, error)
	List(ctx context.Context, offset, limit int) ([]domain.TreatmentPlan, error)
	Delete(ctx context.Context, id string) error
}

type treatmentPlanRepository struct {
	db Querier
}

// NewTreatmentPlanRepository instantiates the repository.
func NewTreatmentPlanRepository(db Querier) TreatmentPlanRepository {
	return &treatmentPlanRepository{db: db}
}

const treatmentPlanColumns = `id, patient_id, doctor_id, appointment_id, diagnosis_summary, plan_details, prescription, status, created_at, updated_at`

func (r *treatmentPlanRepository) Create(ctx context.Context, plan *domain.TreatmentPlan) error {
	const query = `
        INSERT INTO treatment_plans (patient_id, doctor_id, appointment_id, diagnosis_summary, plan_details, prescription, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		plan.PatientID,
		plan.DoctorID,
		plan.AppointmentID,
		plan.DiagnosisSummary,
		plan.PlanDetails,
		plan.Prescription,
		plan.Status,
	).Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
}

func (r *treatmentPlanRepository) Update(ctx context.Context, plan *domain.TreatmentPlan) error {
	const query = `
        UPDATE treatment_plans
        SET patient_id=$1, doctor_id=$2, appointment_id=$3, diagnosis_summary=$4, plan_details=$5, prescription=$6, status=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.db.Exec(ctx, query,
		plan.PatientID,
		plan.DoctorID,
		plan.AppointmentID,
		plan.DiagnosisSummary,
		plan.PlanDetails,
		plan.Prescription,
		plan.Status,
		plan.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *treatmentPlanRepository) GetByID(ctx context.Context, id string) (*domain.TreatmentPlan, error) {
	const query = `SELECT ` + treatmentPlanColumns + ` FROM treatment_plans WHERE id=$1`

	var plan domain.TreatmentPlan
	if err := scanTreatmentPlan(r.db.QueryRow(ctx, query, id), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *treatmentPlanRepository) List(ctx context.Context, offset, limit int) ([]domain.TreatmentPlan, error) {
	const query = `
        SELECT ` + treatmentPlanColumns + `
        FROM treatment_plans ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TreatmentPlan
	for rows.Next() {
		var plan domain.TreatmentPlan
		if err := scanTreatmentPlan(rows, &plan); err != nil {
			return nil, err
		}
		result = append(result, plan)
	}
	return result, rows.Err()
}

func (r *treatmentPlanRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM treatment_plans WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTreatmentPlan(row pgx.Row, plan *domain.TreatmentPlan) error {
	return row.Scan(
		&plan.ID,
		&plan.PatientID,
		&plan.DoctorID,
		&plan.AppointmentID,
		&plan.DiagnosisSummary,
		&plan.PlanDetails,
		&plan.Prescription,
		&plan.Status,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
}
