package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DoctorsHandler manages doctor profile endpoints.
type DoctorsHandler struct {
	service *service.DoctorService
}

// NewDoctorsHandler constructs handler.
func NewDoctorsHandler(doctorService *service.DoctorService) *DoctorsHandler {
	return &DoctorsHandler{service: doctorService}
}

// Create POST /doctors. Onboards the doctor together with its staff
// credential.
func (h *DoctorsHandler) Create(c *fiber.Ctx) error {
	var req dto.DoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" {
		return apperrors.NewValidationError("full_name required", nil)
	}

	doctor, err := h.service.Onboard(c.Context(), service.DoctorInput{
		FullName: req.FullName,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Email:    req.Email,
		HireDate: req.HireDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": doctorResponse(doctor)})
}

// Get GET /doctors/:id.
func (h *DoctorsHandler) Get(c *fiber.Ctx) error {
	doctor, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": doctorResponse(doctor)})
}

// List GET /doctors.
func (h *DoctorsHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	doctors, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		items = append(items, doctorResponse(&doctors[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /doctors/:id.
func (h *DoctorsHandler) Update(c *fiber.Ctx) error {
	var req dto.DoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	doctor, err := h.service.Update(c.Context(), c.Params("id"), service.DoctorInput{
		FullName: req.FullName,
		Gender:   req.Gender,
		Phone:    req.Phone,
		Email:    req.Email,
		HireDate: req.HireDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": doctorResponse(doctor)})
}

// Delete DELETE /doctors/:id.
func (h *DoctorsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func doctorResponse(doctor *domain.DoctorProfile) dto.DoctorResponse {
	return dto.DoctorResponse{
		ID:        doctor.ID,
		FullName:  doctor.FullName,
		Gender:    doctor.Gender,
		Phone:     doctor.Phone,
		Email:     doctor.Email,
		HireDate:  doctor.HireDate,
		StaffID:   doctor.StaffID,
		CreatedAt: doctor.CreatedAt,
		UpdatedAt: doctor.UpdatedAt,
	}
}
