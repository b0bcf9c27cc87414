package handlers

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/api/dto"
	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ImagePublicPrefix is the public retrieval route prefix for stored patient
// images; responses embed URLs under it.
const ImagePublicPrefix = "/uploads/patient-images/"

// PatientImagesHandler manages patient image endpoints, including multipart
// upload and public file retrieval.
type PatientImagesHandler struct {
	service *service.ImageService
}

// NewPatientImagesHandler constructs handler.
func NewPatientImagesHandler(imageService *service.ImageService) *PatientImagesHandler {
	return &PatientImagesHandler{service: imageService}
}

// Upload POST /patient-images. The uploader is taken from the authenticated
// principal.
func (h *PatientImagesHandler) Upload(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Account == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}

	input := service.ImageInput{}
	if v := c.FormValue("patient_id"); v != "" {
		input.PatientID = &v
	}
	if v := c.FormValue("image_type"); v != "" {
		input.ImageType = &v
	}
	if v := c.FormValue("notes"); v != "" {
		input.Notes = &v
	}

	image, err := h.service.Upload(c.Context(), input, principal.Account.ID, file)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": imageResponse(image)})
}

// Get GET /patient-images/:id.
func (h *PatientImagesHandler) Get(c *fiber.Ctx) error {
	image, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": imageResponse(image)})
}

// List GET /patient-images.
func (h *PatientImagesHandler) List(c *fiber.Ctx) error {
	offset, limit := parsePagination(c)
	images, err := h.service.List(c.Context(), offset, limit)
	if err != nil {
		return err
	}
	items := make([]dto.PatientImageResponse, 0, len(images))
	for i := range images {
		items = append(items, imageResponse(&images[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Update PATCH /patient-images/:id.
func (h *PatientImagesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdatePatientImageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	image, err := h.service.Update(c.Context(), c.Params("id"), service.ImageInput{
		ImageType: req.ImageType,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": imageResponse(image)})
}

// Delete DELETE /patient-images/:id.
func (h *PatientImagesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ServeFile GET /uploads/patient-images/:filename.
func (h *PatientImagesHandler) ServeFile(c *fiber.Ctx) error {
	path, err := h.service.ResolveFile(c.Params("filename"))
	if err != nil {
		return err
	}
	return c.SendFile(path)
}

func imageResponse(image *domain.PatientImage) dto.PatientImageResponse {
	return dto.PatientImageResponse{
		ID:                image.ID,
		PatientID:         image.PatientID,
		ImageType:         image.ImageType,
		URL:               ImagePublicPrefix + filepath.Base(image.FilePath),
		UploadedByStaffID: image.UploadedByStaffID,
		Notes:             image.Notes,
		UploadedAt:        image.UploadedAt,
	}
}
