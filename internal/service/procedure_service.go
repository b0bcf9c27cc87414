package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ProcedureService manages procedures performed under a treatment plan.
type ProcedureService struct {
	procedures repository.ProcedureRepository
	plans      repository.TreatmentPlanRepository
}

// NewProcedureService constructs the service.
func NewProcedureService(procedures repository.ProcedureRepository, plans repository.TreatmentPlanRepository) *ProcedureService {
	return &ProcedureService{procedures: procedures, plans: plans}
}

// ProcedureInput carries writable procedure fields.
type ProcedureInput struct {
	PlanID         *string
	ProcedureName  *string
	ProcedureNotes *string
	PerformedAt    *time.Time
}

// Create records a procedure. The parent plan must exist; the procedure
// inherits the plan's patient, doctor and appointment.
func (s *ProcedureService) Create(ctx context.Context, input ProcedureInput) (*domain.Procedure, error) {
	if input.PlanID == nil || input.ProcedureName == nil {
		return nil, apperrors.NewValidationError("plan_id and procedure_name are required", nil)
	}

	plan, err := s.plans.GetByID(ctx, *input.PlanID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("treatment plan", map[string]any{"id": *input.PlanID})
		}
		return nil, apperrors.MapError(err)
	}

	performedAt := time.Now()
	if input.PerformedAt != nil {
		performedAt = *input.PerformedAt
	}

	procedure := &domain.Procedure{
		PatientID:     plan.PatientID,
		DoctorID:      plan.DoctorID,
		AppointmentID: plan.AppointmentID,
		PlanID:        plan.ID,
		ProcedureName: *input.ProcedureName,
		PerformedAt:   performedAt,
	}
	if input.ProcedureNotes != nil {
		procedure.ProcedureNotes = *input.ProcedureNotes
	}

	if err := s.procedures.Create(ctx, procedure); err != nil {
		return nil, apperrors.MapError(err)
	}
	return procedure, nil
}

// Get fetches a procedure by id.
func (s *ProcedureService) Get(ctx context.Context, id string) (*domain.Procedure, error) {
	procedure, err := s.procedures.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("procedure", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return procedure, nil
}

// List returns procedures with offset/limit pagination.
func (s *ProcedureService) List(ctx context.Context, offset, limit int) ([]domain.Procedure, error) {
	return s.procedures.List(ctx, offset, limit)
}

// Update modifies a procedure.
func (s *ProcedureService) Update(ctx context.Context, id string, input ProcedureInput) (*domain.Procedure, error) {
	procedure, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ProcedureName != nil {
		procedure.ProcedureName = *input.ProcedureName
	}
	if input.ProcedureNotes != nil {
		procedure.ProcedureNotes = *input.ProcedureNotes
	}
	if input.PerformedAt != nil {
		procedure.PerformedAt = *input.PerformedAt
	}

	if err := s.procedures.Update(ctx, procedure); err != nil {
		return nil, apperrors.MapError(err)
	}
	return procedure, nil
}

// Delete removes a procedure.
func (s *ProcedureService) Delete(ctx context.Context, id string) error {
	if err := s.procedures.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("procedure", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
