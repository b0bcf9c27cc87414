package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DocumentPublicPrefix is the public retrieval route prefix for stored
// clinical documents; responses embed URLs under it.
const DocumentPublicPrefix = "/uploads/clinical-documents/"

// ClinicalDocumentsHandler manages clinical document endpoints, including
// multipart upload and public file retrieval.
type ClinicalDocumentsHandler struct {
	service *service.DocumentService
}

// NewClinicalDocumentsHandler constructs handler.
func NewClinicalDocumentsHandler(documentService *service.DocumentService) *ClinicalDocumentsHandler {
	return &ClinicalDocumentsHandler{service: documentService}
}

// Upload POST /clinical-documents. Multipart form: file plus metadata fields.
func (h *ClinicalDocumentsHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}

	input := service.DocumentInput{}
	if v := c.FormValue("patient_id"); v != "" {
		input.PatientID = &v
	}
	if v := c.FormValue("appointment_id"); v != "" {
		input.AppointmentID = &v
	}
	if v := c.FormValue("document_type"); v != "" {
		input.DocumentType = &v
	}
	if v := c.FormValue("consent_version"); v != "" {
		input.ConsentVersion = &v
	}

	document, err := h.service.Upload(c.Context(), input, file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": documentResponse(document)})
}

// Get GET /clinical-documents/:id.
func (h *ClinicalDocumentsHandler) Get(c *fiber.Ctx) error {
	document, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(document)})
}

// List GET /clinical-documents.
func (h *ClinicalDocumentsHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	documents, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.ClinicalDocumentResponse, 0, len(documents))
	for i := range documents {
		items = append(items, documentResponse(&documents[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /clinical-documents/:id.
func (h *ClinicalDocumentsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClinicalDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	document, err := h.service.Update(c.Context(), c.Params("id"), service.DocumentInput{
		AppointmentID:  req.AppointmentID,
		DocumentType:   req.DocumentType,
		ConsentVersion: req.ConsentVersion,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": documentResponse(document)})
}

// Delete DELETE /clinical-documents/:id.
func (h *ClinicalDocumentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ServeFile GET /uploads/clinical-documents/:filename.
func (h *ClinicalDocumentsHandler) ServeFile(c *fiber.Ctx) error {
	path, err := h.service.ResolveFile(c.Params("filename"))
	if err != nil {
		return err
	}
	return c.SendFile(path)
}

func documentResponse(document *domain.ClinicalDocument) dto.ClinicalDocumentResponse {
	return dto.ClinicalDocumentResponse{
		ID:             document.ID,
		PatientID:      document.PatientID,
		AppointmentID:  document.AppointmentID,
		DocumentType:   document.DocumentType,
		ConsentVersion: document.ConsentVersion,
		URL:            DocumentPublicPrefix + filepath.Base(document.FilePath),
		CreatedAt:      document.CreatedAt,
	}
}
