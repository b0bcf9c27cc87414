package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ProceduresHandler manages procedure endpoints.
type ProceduresHandler struct {
	service *service.ProcedureService
}

// NewProceduresHandler constructs handler.
func NewProceduresHandler(procedureService *service.ProcedureService) *ProceduresHandler {
	return &ProceduresHandler{service: procedureService}
}

// Create POST /procedures.
func (h *ProceduresHandler) Create(c *fiber.Ctx) error {
	var req dto.ProcedureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	procedure, err := h.service.Create(c.Context(), service.ProcedureInput{
		PlanID:         req.PlanID,
		ProcedureName:  req.ProcedureName,
		ProcedureNotes: req.ProcedureNotes,
		PerformedAt:    req.PerformedAt,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": procedureResponse(procedure)})
}

// Get GET /procedures/:id.
func (h *ProceduresHandler) Get(c *fiber.Ctx) error {
	procedure, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": procedureResponse(procedure)})
}

// List GET /procedures.
func (h *ProceduresHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	procedures, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.ProcedureResponse, 0, len(procedures))
	for i := range procedures {
		items = append(items, procedureResponse(&procedures[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /procedures/:id.
func (h *ProceduresHandler) Update(c *fiber.Ctx) error {
	var req dto.ProcedureRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	procedure, err := h.service.Update(c.Context(), c.Params("id"), service.ProcedureInput{
		PlanID:         req.PlanID,
		ProcedureName:  req.ProcedureName,
		ProcedureNotes: req.ProcedureNotes,
		PerformedAt:    req.PerformedAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": procedureResponse(procedure)})
}

// Delete DELETE /procedures/:id.
func (h *ProceduresHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func procedureResponse(procedure *domain.Procedure) dto.ProcedureResponse {
	return dto.ProcedureResponse{
		ID:             procedure.ID,
		PatientID:      procedure.PatientID,
		DoctorID:       procedure.DoctorID,
		AppointmentID:  procedure.AppointmentID,
		PlanID:         procedure.PlanID,
		ProcedureName:  procedure.ProcedureName,
		ProcedureNotes: procedure.ProcedureNotes,
		PerformedAt:    procedure.PerformedAt,
		CreatedAt:      procedure.CreatedAt,
		UpdatedAt:      procedure.UpdatedAt,
	}
}
