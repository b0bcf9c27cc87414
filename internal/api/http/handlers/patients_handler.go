package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// PatientsHandler manages patient endpoints.
type PatientsHandler struct {
	service *service.PatientService
}

// NewPatientsHandler constructs handler.
func NewPatientsHandler(patientService *service.PatientService) *PatientsHandler {
	return &PatientsHandler{service: patientService}
}

// Create POST /patients.
func (h *PatientsHandler) Create(c *fiber.Ctx) error {
	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patient, err := h.service.Create(c.Context(), patientInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": patientResponse(patient)})
}

// Get GET /patients/:id.
func (h *PatientsHandler) Get(c *fiber.Ctx) error {
	patient, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": patientResponse(patient)})
}

// List GET /patients.
func (h *PatientsHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	patients, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		items = append(items, patientResponse(&patients[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /patients/:id.
func (h *PatientsHandler) Update(c *fiber.Ctx) error {
	var req dto.PatientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	patient, err := h.service.Update(c.Context(), c.Params("id"), patientInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": patientResponse(patient)})
}

// Delete DELETE /patients/:id.
func (h *PatientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func patientInput(req dto.PatientRequest) service.PatientInput {
	return service.PatientInput{
		FullName:              req.FullName,
		Gender:                req.Gender,
		DateOfBirth:           req.DateOfBirth,
		Phone:                 req.Phone,
		Email:                 req.Email,
		Address:               req.Address,
		AllergiesText:         req.Allergies,
		MedicalConditionsText: req.MedicalConditions,
	}
}

func patientResponse(patient *domain.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		ID:                patient.ID,
		FullName:          patient.FullName,
		Gender:            patient.Gender,
		DateOfBirth:       patient.DateOfBirth,
		Phone:             patient.Phone,
		Email:             patient.Email,
		Address:           patient.Address,
		Allergies:         patient.AllergiesText,
		MedicalConditions: patient.MedicalConditionsText,
		CreatedAt:         patient.CreatedAt,
		UpdatedAt:         patient.UpdatedAt,
	}
}
