package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// TreatmentPlansHandler manages treatment plan endpoints.
type TreatmentPlansHandler struct {
	service *service.TreatmentPlanService
}

// NewTreatmentPlansHandler constructs handler.
func NewTreatmentPlansHandler(planService *service.TreatmentPlanService) *TreatmentPlansHandler {
	return &TreatmentPlansHandler{service: planService}
}

// Create POST /treatment-plans.
func (h *TreatmentPlansHandler) Create(c *fiber.Ctx) error {
	var req dto.TreatmentPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plan, err := h.service.Create(c.Context(), treatmentPlanInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": treatmentPlanResponse(plan)})
}

// Get GET /treatment-plans/:id.
func (h *TreatmentPlansHandler) Get(c *fiber.Ctx) error {
	plan, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": treatmentPlanResponse(plan)})
}

// List GET /treatment-plans.
func (h *TreatmentPlansHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	plans, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.TreatmentPlanResponse, 0, len(plans))
	for i := range plans {
		items = append(items, treatmentPlanResponse(&plans[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /treatment-plans/:id.
func (h *TreatmentPlansHandler) Update(c *fiber.Ctx) error {
	var req dto.TreatmentPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	plan, err := h.service.Update(c.Context(), c.Params("id"), treatmentPlanInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": treatmentPlanResponse(plan)})
}

// Delete DELETE /treatment-plans/:id.
func (h *TreatmentPlansHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func treatmentPlanInput(req dto.TreatmentPlanRequest) service.TreatmentPlanInput {
	return service.TreatmentPlanInput{
		PatientID:        req.PatientID,
		DoctorID:         req.DoctorID,
		AppointmentID:    req.AppointmentID,
		DiagnosisSummary: req.DiagnosisSummary,
		PlanDetails:      req.PlanDetails,
		Prescription:     req.Prescription,
		Status:           req.Status,
	}
}

func treatmentPlanResponse(plan *domain.TreatmentPlan) dto.TreatmentPlanResponse {
	return dto.TreatmentPlanResponse{
		ID:               plan.ID,
		PatientID:        plan.PatientID,
		DoctorID:         plan.DoctorID,
		AppointmentID:    plan.AppointmentID,
		DiagnosisSummary: plan.DiagnosisSummary,
		PlanDetails:      plan.PlanDetails,
		Prescription:     plan.Prescription,
		Status:           plan.Status,
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
}
