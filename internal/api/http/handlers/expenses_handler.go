package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ExpensesHandler manages expense endpoints.
type ExpensesHandler struct {
	service *service.FinanceService
}

// NewExpensesHandler constructs handler.
func NewExpensesHandler(financeService *service.FinanceService) *ExpensesHandler {
	return &ExpensesHandler{service: financeService}
}

// Create POST /expenses.
func (h *ExpensesHandler) Create(c *fiber.Ctx) error {
	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	expense, err := h.service.CreateExpense(c.Context(), expenseInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": expenseResponse(expense)})
}

// Get GET /expenses/:id.
func (h *ExpensesHandler) Get(c *fiber.Ctx) error {
	expense, err := h.service.GetExpense(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": expenseResponse(expense)})
}

// List GET /expenses.
func (h *ExpensesHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	expenses, err := h.service.ListExpenses(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, expenseResponse(&expenses[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /expenses/:id.
func (h *ExpensesHandler) Update(c *fiber.Ctx) error {
	var req dto.ExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	expense, err := h.service.UpdateExpense(c.Context(), c.Params("id"), expenseInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": expenseResponse(expense)})
}

// Delete DELETE /expenses/:id.
func (h *ExpensesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.DeleteExpense(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func expenseInput(req dto.ExpenseRequest) service.ExpenseInput {
	return service.ExpenseInput{
		Category:    req.Category,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Reason:      req.Reason,
		StaffID:     req.StaffID,
	}
}

func expenseResponse(expense *domain.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          expense.ID,
		Category:    expense.Category,
		Amount:      expense.Amount,
		ExpenseDate: expense.ExpenseDate,
		Reason:      expense.Reason,
		StaffID:     expense.StaffID,
		CreatedAt:   expense.CreatedAt,
	}
}
