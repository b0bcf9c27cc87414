package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/repository"
	"github.com/spec-kit/clinic-service/internal/storage"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DocumentService manages clinical document metadata and the files behind it.
type DocumentService struct {
	documents  repository.ClinicalDocumentRepository
	patients   repository.PatientRepository
	store      *storage.DiskStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDocumentService constructs the service.
func NewDocumentService(
	documents repository.ClinicalDocumentRepository,
	patients repository.PatientRepository,
	store *storage.DiskStore,
	dispatcher events.Dispatcher,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		documents:  documents,
		patients:   patients,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// DocumentInput carries writable document metadata.
type DocumentInput struct {
	PatientID      *string
	AppointmentID  *string
	DocumentType   *string
	ConsentVersion *string
}

// Upload stores the file on disk and records its metadata. A metadata insert
// failure removes the just-written file.
func (s *DocumentService) Upload(ctx context.Context, input DocumentInput, file *multipart.FileHeader) (*domain.ClinicalDocument, error) {
	if input.PatientID == nil || input.DocumentType == nil {
		return nil, apperrors.NewValidationError("patient_id and document_type are required", nil)
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

	path, err := s.store.SaveDocument(file)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	document := &domain.ClinicalDocument{
		PatientID:    *input.PatientID,
		DocumentType: *input.DocumentType,
		FilePath:     path,
	}
	if input.AppointmentID != nil {
		document.AppointmentID = *input.AppointmentID
	}
	if input.ConsentVersion != nil {
		document.ConsentVersion = *input.ConsentVersion
	}

	if err := s.documents.Create(ctx, document); err != nil {
		if rmErr := s.store.Remove(path); rmErr != nil {
			s.logger.Warn("orphan document file left behind", zap.String("path", path), zap.Error(rmErr))
		}
		return nil, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventDocumentUploaded,
		SubjectID: document.ID,
		Timestamp: time.Now(),
		Payload: events.DocumentUploadedPayload{
			PatientID:    document.PatientID,
			DocumentType: document.DocumentType,
			FileName:     filepath.Base(document.FilePath),
		},
	})
	return document, nil
}

// Get fetches document metadata by id.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.ClinicalDocument, error) {
	document, err := s.documents.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("clinical document", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return document, nil
}

// List returns document metadata with offset/limit pagination.
func (s *DocumentService) List(ctx context.Context, offset, limit int) ([]domain.ClinicalDocument, error) {
	return s.documents.List(ctx, offset, limit)
}

// Update modifies document metadata; the stored file is untouched.
func (s *DocumentService) Update(ctx context.Context, id string, input DocumentInput) (*domain.ClinicalDocument, error) {
	document, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DocumentType != nil {
		document.DocumentType = *input.DocumentType
	}
	if input.ConsentVersion != nil {
		document.ConsentVersion = *input.ConsentVersion
	}
	if input.AppointmentID != nil {
		document.AppointmentID = *input.AppointmentID
	}

	if err := s.documents.Update(ctx, document); err != nil {
		return nil, apperrors.MapError(err)
	}
	return document, nil
}

// Delete removes the metadata row and the file on disk.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	document, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	if err := s.store.Remove(document.FilePath); err != nil {
		s.logger.Warn("failed to remove document file", zap.String("path", document.FilePath), zap.Error(err))
	}
	return nil
}

// ResolveFile maps a stored document filename to its on-disk path.
func (s *DocumentService) ResolveFile(filename string) (string, error) {
	return s.store.Resolve("clinical_documents", filename)
}
