package service

import (
	"context"
	"mime/multipart"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	"github.com/spec-kit/clinic-service/internal/storage"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// ImageService manages patient image metadata and the files behind it.
type ImageService struct {
	images   repository.PatientImageRepository
	patients repository.PatientRepository
	store    *storage.DiskStore
	logger   *zap.Logger
}

// NewImageService constructs the service.
func NewImageService(
	images repository.PatientImageRepository,
	patients repository.PatientRepository,
	store *storage.DiskStore,
	logger *zap.Logger,
) *ImageService {
	return &ImageService{images: images, patients: patients, store: store, logger: logger}
}

// ImageInput carries writable image metadata. UploadedByStaffID is taken from
// the authenticated principal, never from the request body.
type ImageInput struct {
	PatientID *string
	ImageType *string
	Notes     *string
}

// Upload stores an image file and records its metadata.
func (s *ImageService) Upload(ctx context.Context, input ImageInput, uploadedBy string, file *multipart.FileHeader) (*domain.PatientImage, error) {
	if input.PatientID == nil || input.ImageType == nil {
		return nil, apperrors.NewValidationError("patient_id and image_type are required", nil)
	}
	if file == nil {
		return nil, apperrors.NewValidationError("file is required", nil)
	}
	if _, err := s.patients.GetByID(ctx, *input.PatientID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("patient", map[string]any{"id": *input.PatientID})
		}
		return nil, apperrors.MapError(err)
	}

	path, err := s.store.SaveImage(file)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	image := &domain.PatientImage{
		PatientID:         *input.PatientID,
		ImageType:         *input.ImageType,
		FilePath:          path,
		UploadedByStaffID: uploadedBy,
		Notes:             input.Notes,
	}
	if err := s.images.Create(ctx, image); err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			s.logger.Warn("orphan image file left behind", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// Get fetches image metadata by id.
func (s *ImageService) Get(ctx context.Context, id string) (*domain.PatientImage, error) {
	image, err := s.images.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("patient image", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// List returns image metadata with offset/limit pagination.
func (s *ImageService) List(ctx context.Context, offset, limit int) ([]domain.PatientImage, error) {
	return s.images.List(ctx, offset, limit)
}

// Update modifies image metadata; the stored file is untouched.
func (s *ImageService) Update(ctx context.Context, id string, input ImageInput) (*domain.PatientImage, error) {
	image, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.ImageType != nil {
		image.ImageType = *input.ImageType
	}
	if input.Notes != nil {
		image.Notes = input.Notes
	}

	if err := s.images.Update(ctx, image); err != nil {
		return nil, apperrors.MapError(err)
	}
	return image, nil
}

// Delete removes the metadata row and the file on disk.
func (s *ImageService) Delete(ctx context.Context, id string) error {
	image, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.images.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.store.Remove(image.FilePath); err != nil {
		s.logger.Warn("failed to remove image file", zap.String("path", image.FilePath), zap.Error(err))
	}
	return nil
}

// ResolveFile maps a stored image filename to its on-disk path.
func (s *ImageService) ResolveFile(filename string) (string, error) {
	return s.store.Resolve("patient_images", filename)
}
