package service

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// MedicalRecordService manages clinical encounter records.
type MedicalRecordService struct {
	records  repository.MedicalRecordRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
}

// NewMedicalRecordService constructs the service.
func NewMedicalRecordService(
	records repository.MedicalRecordRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
) *MedicalRecordService {
	return &MedicalRecordService{records: records, patients: patients, doctors: doctors}
}

// MedicalRecordInput carries writable record fields. CurrentMeds is a raw
// JSON document and must parse when present.
type MedicalRecordInput struct {
	PatientID         *string
	DoctorID          *string
	Diagnosis         *string
	ClinicalFindings  *string
	Treatment         *string
	Allergies         *string
	MedicalConditions *string
	CurrentMeds       []byte
}

// Create adds a medical record after verifying the patient and doctor exist.
func (s *MedicalRecordService) Create(ctx context.Context, input MedicalRecordInput) (*domain.MedicalRecord, error) {
	if input.PatientID == nil || input.DoctorID == nil || input.Diagnosis == nil {
		return nil, apperrors.NewValidationError("patient_id, doctor_id and diagnosis are required", nil)
	}
	if err := validateRawJSON(input.CurrentMeds); err != nil {
		return nil, err
	}
	if _, err := s.patients.GetByID(ctx, *input.PatientID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("patient", map[string]any{"id": *input.PatientID})
		}
		return nil, apperrors.MapError(err)
	}
	if _, err := s.doctors.GetByID(ctx, *input.DoctorID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("doctor", map[string]any{"id": *input.DoctorID})
		}
		return nil, apperrors.MapError(err)
	}

	record := &domain.MedicalRecord{
		PatientID:   *input.PatientID,
		DoctorID:    *input.DoctorID,
		Diagnosis:   *input.Diagnosis,
		CurrentMeds: input.CurrentMeds,
	}
	if input.ClinicalFindings != nil {
		record.ClinicalFindings = *input.ClinicalFindings
	}
	if input.Treatment != nil {
		record.Treatment = *input.Treatment
	}
	if input.Allergies != nil {
		record.Allergies = *input.Allergies
	}
	if input.MedicalConditions != nil {
		record.MedicalConditions = *input.MedicalConditions
	}

	if err := s.records.Create(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// Get fetches a medical record by id.
func (s *MedicalRecordService) Get(ctx context.Context, id string) (*domain.MedicalRecord, error) {
	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("medical record", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// List returns medical records with offset/limit pagination.
func (s *MedicalRecordService) List(ctx context.Context, offset, limit int) ([]domain.MedicalRecord, error) {
	return s.records.List(ctx, offset, limit)
}

// Update modifies a medical record.
func (s *MedicalRecordService) Update(ctx context.Context, id string, input MedicalRecordInput) (*domain.MedicalRecord, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Diagnosis != nil {
		record.Diagnosis = *input.Diagnosis
	}
	if input.ClinicalFindings != nil {
		record.ClinicalFindings = *input.ClinicalFindings
	}
	if input.Treatment != nil {
		record.Treatment = *input.Treatment
	}
	if input.Allergies != nil {
		record.Allergies = *input.Allergies
	}
	if input.MedicalConditions != nil {
		record.MedicalConditions = *input.MedicalConditions
	}
	if input.CurrentMeds != nil {
		if err := validateRawJSON(input.CurrentMeds); err != nil {
			return nil, err
		}
		record.CurrentMeds = input.CurrentMeds
	}

	if err := s.records.Update(ctx, record); err != nil {
		return nil, apperrors.MapError(err)
	}
	return record, nil
}

// Delete removes a medical record.
func (s *MedicalRecordService) Delete(ctx context.Context, id string) error {
	if err := s.records.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("medical record", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func validateRawJSON(raw []byte) error {
	if len(raw) == 0 {
		return nil
	}
	if !json.Valid(raw) {
		return apperrors.NewValidationError("current_meds must be valid JSON", nil)
	}
	return nil
}
