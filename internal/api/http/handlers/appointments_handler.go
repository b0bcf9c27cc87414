package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// AppointmentsHandler manages appointment endpoints.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// Create POST /appointments.
func (h *AppointmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.service.Create(c.Context(), service.AppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: req.AppointmentTime,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": appointmentResponse(appointment)})
}

// Get GET /appointments/:id.
func (h *AppointmentsHandler) Get(c *fiber.Ctx) error {
	appointment, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentResponse(appointment)})
}

// List GET /appointments. Optional patient_id and doctor_id query filters.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)

	var patientID, doctorID *string
	if v := c.Query("patient_id"); v != "" {
		patientID = &v
	}
	if v := c.Query("doctor_id"); v != "" {
		doctorID = &v
	}

	appointments, err := h.service.List(c.Context(), patientID, doctorID, offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		items = append(items, appointmentResponse(&appointments[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /appointments/:id.
func (h *AppointmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.AppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	appointment, err := h.service.Update(c.Context(), c.Params("id"), service.AppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentTime: req.AppointmentTime,
		Status:          req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": appointmentResponse(appointment)})
}

// Delete DELETE /appointments/:id.
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func appointmentResponse(appointment *domain.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:              appointment.ID,
		Status:          appointment.Status,
		AppointmentTime: appointment.AppointmentTime,
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
