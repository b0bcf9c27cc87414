package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-service/internal/domain"
)

func TestDocumentResponseEmbedsRetrievableURL(t *testing.T) {
	doc := &domain.ClinicalDocument{
		ID:           "doc-1",
		PatientID:    "pat-1",
		DocumentType: "consent_form",
		FilePath:     "uploads/clinical_documents/clinical-doc-0c1d2e3f.pdf",
		CreatedAt:    time.Now(),
	}

	resp := documentResponse(doc)
	require.Equal(t, "/uploads/clinical-documents/clinical-doc-0c1d2e3f.pdf", resp.URL)

	// The embedded URL must match the public retrieval route as registered.
	app := fiber.New()
	var served string
	app.Get(DocumentPublicPrefix+":filename", func(c *fiber.Ctx) error {
		served = c.Params("filename")
		return c.SendStatus(fiber.StatusOK)
	})
	res, err := app.Test(httptest.NewRequest("GET", resp.URL, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "clinical-doc-0c1d2e3f.pdf", served)
}

func TestImageResponseEmbedsRetrievableURL(t *testing.T) {
	img := &domain.PatientImage{
		ID:                "img-1",
		PatientID:         "pat-1",
		ImageType:         "xray",
		FilePath:          "uploads/patient_images/patient-img-4a5b6c7d.png",
		UploadedByStaffID: "staff-1",
		UploadedAt:        time.Now(),
	}

	resp := imageResponse(img)
	require.Equal(t, "/uploads/patient-images/patient-img-4a5b6c7d.png", resp.URL)

	app := fiber.New()
	var served string
	app.Get(ImagePublicPrefix+":filename", func(c *fiber.Ctx) error {
		served = c.Params("filename")
		return c.SendStatus(fiber.StatusOK)
	})
	res, err := app.Test(httptest.NewRequest("GET", resp.URL, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
	assert.Equal(t, "patient-img-4a5b6c7d.png", served)
}
