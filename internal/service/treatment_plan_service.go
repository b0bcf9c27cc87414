package service

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// TreatmentPlanService manages treatment plans.
type TreatmentPlanService struct {
	plans        repository.TreatmentPlanRepository
	appointments repository.AppointmentRepository
}

// NewTreatmentPlanService constructs the service.
func NewTreatmentPlanService(plans repository.TreatmentPlanRepository, appointments repository.AppointmentRepository) *TreatmentPlanService {
	return &TreatmentPlanService{plans: plans, appointments: appointments}
}

// TreatmentPlanInput carries writable plan fields.
type TreatmentPlanInput struct {
	PatientID        *string
	DoctorID         *string
	AppointmentID    *string
	DiagnosisSummary *string
	PlanDetails      *string
	Prescription     []byte
	Status           *domain.TreatmentPlanStatus
}

// Create adds a treatment plan. The referenced appointment must exist; the
// plan inherits its patient and doctor when not supplied. Status defaults to
// draft.
func (s *TreatmentPlanService) Create(ctx context.Context, input TreatmentPlanInput) (*domain.TreatmentPlan, error) {
	if input.AppointmentID == nil || input.PlanDetails == nil {
		return nil, apperrors.NewValidationError("appointment_id and plan_details are required", nil)
	}
	if len(input.Prescription) > 0 && !json.Valid(input.Prescription) {
		return nil, apperrors.NewValidationError("prescription must be valid JSON", nil)
	}

	appointment, err := s.appointments.GetByID(ctx, *input.AppointmentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"id": *input.AppointmentID})
		}
		return nil, apperrors.MapError(err)
	}

	status := domain.TreatmentPlanDraft
	if input.Status != nil {
		status = *input.Status
	}
	if !domain.ValidTreatmentPlanStatus(status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}

	plan := &domain.TreatmentPlan{
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		AppointmentID: appointment.ID,
		PlanDetails:   *input.PlanDetails,
		Prescription:  input.Prescription,
		Status:        status,
	}
	if input.PatientID != nil {
		plan.PatientID = *input.PatientID
	}
	if input.DoctorID != nil {
		plan.DoctorID = *input.DoctorID
	}
	if input.DiagnosisSummary != nil {
		plan.DiagnosisSummary = *input.DiagnosisSummary
	}

	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, apperrors.MapError(err)
	}
	return plan, nil
}

// Get fetches a treatment plan by id.
func (s *TreatmentPlanService) Get(ctx context.Context, id string) (*domain.TreatmentPlan, error) {
	plan, err := s.plans.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("treatment plan", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return plan, nil
}

// List returns treatment plans with offset/limit pagination.
func (s *TreatmentPlanService) List(ctx context.Context, offset, limit int) ([]domain.TreatmentPlan, error) {
	return s.plans.List(ctx, offset, limit)
}

// Update modifies a treatment plan.
func (s *TreatmentPlanService) Update(ctx context.Context, id string, input TreatmentPlanInput) (*domain.TreatmentPlan, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DiagnosisSummary != nil {
		plan.DiagnosisSummary = *input.DiagnosisSummary
	}
	if input.PlanDetails != nil {
		plan.PlanDetails = *input.PlanDetails
	}
	if input.Prescription != nil {
		if !json.Valid(input.Prescription) {
			return nil, apperrors.NewValidationError("prescription must be valid JSON", nil)
		}
		plan.Prescription = input.Prescription
	}
	if input.Status != nil {
		if !domain.ValidTreatmentPlanStatus(*input.Status) {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
		}
		plan.Status = *input.Status
	}

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, apperrors.MapError(err)
	}
	return plan, nil
}

// Delete removes a treatment plan.
func (s *TreatmentPlanService) Delete(ctx context.Context, id string) error {
	if err := s.plans.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("treatment plan", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
