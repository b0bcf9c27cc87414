package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// MedicalRecordsHandler manages medical record endpoints.
type MedicalRecordsHandler struct {
	service *service.MedicalRecordService
}

// NewMedicalRecordsHandler constructs handler.
func NewMedicalRecordsHandler(recordService *service.MedicalRecordService) *MedicalRecordsHandler {
	return &MedicalRecordsHandler{service: recordService}
}

// Create POST /medical-records.
func (h *MedicalRecordsHandler) Create(c *fiber.Ctx) error {
	var req dto.MedicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.service.Create(c.Context(), medicalRecordInput(req))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": medicalRecordResponse(record)})
}

// Get GET /medical-records/:id.
func (h *MedicalRecordsHandler) Get(c *fiber.Ctx) error {
	record, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": medicalRecordResponse(record)})
}

// List GET /medical-records.
func (h *MedicalRecordsHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	records, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.MedicalRecordResponse, 0, len(records))
	for i := range records {
		items = append(items, medicalRecordResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /medical-records/:id.
func (h *MedicalRecordsHandler) Update(c *fiber.Ctx) error {
	var req dto.MedicalRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	record, err := h.service.Update(c.Context(), c.Params("id"), medicalRecordInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": medicalRecordResponse(record)})
}

// Delete DELETE /medical-records/:id.
func (h *MedicalRecordsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func medicalRecordInput(req dto.MedicalRecordRequest) service.MedicalRecordInput {
	return service.MedicalRecordInput{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		Diagnosis:         req.Diagnosis,
		ClinicalFindings:  req.ClinicalFindings,
		Treatment:         req.Treatment,
		Allergies:         req.Allergies,
		MedicalConditions: req.MedicalConditions,
		CurrentMeds:       req.CurrentMeds,
	}
}

func medicalRecordResponse(record *domain.MedicalRecord) dto.MedicalRecordResponse {
	return dto.MedicalRecordResponse{
		ID:                record.ID,
		PatientID:         record.PatientID,
		DoctorID:          record.DoctorID,
		Diagnosis:         record.Diagnosis,
		ClinicalFindings:  record.ClinicalFindings,
		Treatment:         record.Treatment,
		Allergies:         record.Allergies,
		MedicalConditions: record.MedicalConditions,
		CurrentMeds:       record.CurrentMeds,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}
