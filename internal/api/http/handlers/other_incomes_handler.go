package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// OtherIncomesHandler manages non-treatment income endpoints.
type OtherIncomesHandler struct {
	service *service.FinanceService
}

// NewOtherIncomesHandler constructs handler.
func NewOtherIncomesHandler(financeService *service.FinanceService) *OtherIncomesHandler {
	return &OtherIncomesHandler{service: financeService}
}

// Create POST /other-incomes.
func (h *OtherIncomesHandler) Create(c *fiber.Ctx) error {
	var req dto.OtherIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	income, err := h.service.CreateOtherIncome(c.Context(), otherIncomeInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": otherIncomeResponse(income)})
}

// Get GET /other-incomes/:id.
func (h *OtherIncomesHandler) Get(c *fiber.Ctx) error {
	income, err := h.service.GetOtherIncome(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": otherIncomeResponse(income)})
}

// List GET /other-incomes.
func (h *OtherIncomesHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	incomes, err := h.service.ListOtherIncomes(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.OtherIncomeResponse, 0, len(incomes))
	for i := range incomes {
		items = append(items, otherIncomeResponse(&incomes[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /other-incomes/:id.
func (h *OtherIncomesHandler) Update(c *fiber.Ctx) error {
	var req dto.OtherIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	income, err := h.service.UpdateOtherIncome(c.Context(), c.Params("id"), otherIncomeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": otherIncomeResponse(income)})
}

// Delete DELETE /other-incomes/:id.
func (h *OtherIncomesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteOtherIncome(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func otherIncomeInput(req dto.OtherIncomeRequest) service.OtherIncomeInput {
	return service.OtherIncomeInput{
		Source:     req.Source,
		Amount:     req.Amount,
		IncomeDate: req.IncomeDate,
		StaffID:    req.StaffID,
		PatientID:  req.PatientID,
	}
}

func otherIncomeResponse(income *domain.OtherIncome) dto.OtherIncomeResponse {
	return dto.OtherIncomeResponse{
		ID:         income.ID,
		Source:     income.Source,
		Amount:     income.Amount,
		IncomeDate: income.IncomeDate,
		StaffID:    income.StaffID,
		PatientID:  income.PatientID,
		CreatedAt:  income.CreatedAt,
	}
}
