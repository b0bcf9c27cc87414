package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// PatientService manages patient records.
type PatientService struct {
	patients repository.PatientRepository
}

// NewPatientService constructs the service.
func NewPatientService(patients repository.PatientRepository) *PatientService {
	return &PatientService{patients: patients}
}

// PatientInput carries writable patient fields. Nil pointers mean "leave
// unchanged" on update.
type PatientInput struct {
	FullName              *string
	Gender                *domain.Gender
	DateOfBirth           *time.Time
	Phone                 *string
	Email                 *string
	Address               *string
	AllergiesText         *string
	MedicalConditionsText *string
}

// Create adds a patient record.
func (s *PatientService) Create(ctx context.Context, input PatientInput) (*domain.Patient, error) {
	if input.FullName == nil || input.Gender == nil || input.DateOfBirth == nil || input.Phone == nil || input.Email == nil {
		return nil, apperrors.NewValidationError("full_name, gender, date_of_birth, phone and email are required", nil)
	}
	if *input.Gender != domain.GenderMale && *input.Gender != domain.GenderFemale {
		return nil, apperrors.NewValidationError("invalid gender", map[string]any{"gender": *input.Gender})
	}

	patient := &domain.Patient{
		FullName:              *input.FullName,
		Gender:                *input.Gender,
		DateOfBirth:           *input.DateOfBirth,
		Phone:                 *input.Phone,
		Email:                 NormalizeEmail(*input.Email),
		Address:               input.Address,
		AllergiesText:         input.AllergiesText,
		MedicalConditionsText: input.MedicalConditionsText,
	}
	if err := s.patients.Create(ctx, patient); err != nil {
		return nil, apperrors.MapError(err)
	}
	return patient, nil
}

// Get fetches a patient by id.
func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("patient", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return patient, nil
}

// List returns patients with offset/limit pagination.
func (s *PatientService) List(ctx context.Context, offset, limit int) ([]domain.Patient, error) {
	return s.patients.List(ctx, offset, limit)
}

// Update modifies a patient record.
func (s *PatientService) Update(ctx context.Context, id string, input PatientInput) (*domain.Patient, error) {
	patient, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		patient.FullName = *input.FullName
	}
	if input.Gender != nil {
		if *input.Gender != domain.GenderMale && *input.Gender != domain.GenderFemale {
			return nil, apperrors.NewValidationError("invalid gender", map[string]any{"gender": *input.Gender})
		}
		patient.Gender = *input.Gender
	}
	if input.DateOfBirth != nil {
		patient.DateOfBirth = *input.DateOfBirth
	}
	if input.Phone != nil {
		patient.Phone = *input.Phone
	}
	if input.Email != nil {
		patient.Email = NormalizeEmail(*input.Email)
	}
	if input.Address != nil {
		patient.Address = input.Address
	}
	if input.AllergiesText != nil {
		patient.AllergiesText = input.AllergiesText
	}
	if input.MedicalConditionsText != nil {
		patient.MedicalConditionsText = input.MedicalConditionsText
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, apperrors.MapError(err)
	}
	return patient, nil
}

// Delete removes a patient record.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}
