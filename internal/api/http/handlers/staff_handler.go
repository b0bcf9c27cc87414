package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// StaffHandler manages staff administration endpoints.
type StaffHandler struct {
	service *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{service: staffService}
}

// Create POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.service.Create(c.Context(), service.StaffInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		HireDate: req.HireDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": staffResponse(account)})
}

// Get GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	account, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(account)})
}

// List GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	accounts, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.StaffResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, staffResponse(&accounts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	account, err := h.service.Update(c.Context(), c.Params("id"), service.StaffInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		HireDate: req.HireDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": staffResponse(account)})
}

// Delete DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
