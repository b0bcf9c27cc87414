package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// AppointmentService manages appointment scheduling.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	patients     repository.PatientRepository
	doctors      repository.DoctorRepository
	dispatcher   events.Dispatcher
}

// NewAppointmentService constructs the service.
func NewAppointmentService(
	appointments repository.AppointmentRepository,
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	dispatcher events.Dispatcher,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		dispatcher:   dispatcher,
	}
}

// AppointmentInput carries writable appointment fields.
type AppointmentInput struct {
	PatientID       *string
	DoctorID        *string
	AppointmentTime *time.Time
	Status          *domain.AppointmentStatus
}

// Create schedules an appointment after verifying both participants exist.
// Status defaults to scheduled.
func (s *AppointmentService) Create(ctx context.Context, input AppointmentInput) (*domain.Appointment, error) {
	if input.PatientID == nil || input.DoctorID == nil || input.AppointmentTime == nil {
		return nil, apperrors.NewValidationError("patient_id, doctor_id and appointment_time are required", nil)
	}
	if err := s.checkParticipants(ctx, *input.PatientID, *input.DoctorID); err != nil {
		return nil, err
	}

	status := domain.AppointmentScheduled
	if input.Status != nil {
		status = *input.Status
	}
	if !domain.ValidAppointmentStatus(status) {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": status})
	}

	appointment := &domain.Appointment{
		Status:          status,
		AppointmentTime: *input.AppointmentTime,
		PatientID:       *input.PatientID,
		DoctorID:        *input.DoctorID,
	}
	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventAppointmentCreated,
		SubjectID: appointment.ID,
		Timestamp: time.Now(),
		Payload: events.AppointmentCreatedPayload{
			PatientID:       appointment.PatientID,
			DoctorID:        appointment.DoctorID,
			AppointmentTime: appointment.AppointmentTime,
		},
	})
	return appointment, nil
}

// Get fetches an appointment by id.
func (s *AppointmentService) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return appointment, nil
}

// List returns appointments, optionally filtered by patient and/or doctor.
// With no filters it falls back to offset/limit pagination.
func (s *AppointmentService) List(ctx context.Context, patientID, doctorID *string, offset, limit int) ([]domain.Appointment, error) {
	if patientID != nil || doctorID != nil {
		return s.appointments.ListByParticipants(ctx, patientID, doctorID)
	}
	return s.appointments.List(ctx, offset, limit)
}

// Update modifies an appointment. A status change is published as an event.
func (s *AppointmentService) Update(ctx context.Context, id string, input AppointmentInput) (*domain.Appointment, error) {
	appointment, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := appointment.Status

	if input.PatientID != nil || input.DoctorID != nil {
		patientID := appointment.PatientID
		doctorID := appointment.DoctorID
		if input.PatientID != nil {
			patientID = *input.PatientID
		}
		if input.DoctorID != nil {
			doctorID = *input.DoctorID
		}
		if err := s.checkParticipants(ctx, patientID, doctorID); err != nil {
			return nil, err
		}
		appointment.PatientID = patientID
		appointment.DoctorID = doctorID
	}
	if input.AppointmentTime != nil {
		appointment.AppointmentTime = *input.AppointmentTime
	}
	if input.Status != nil {
		if !domain.ValidAppointmentStatus(*input.Status) {
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": *input.Status})
		}
		appointment.Status = *input.Status
	}

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, apperrors.MapError(err)
	}

	if appointment.Status != oldStatus {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventAppointmentStatusChanged,
			SubjectID: appointment.ID,
			Timestamp: time.Now(),
			Payload: events.AppointmentStatusChangedPayload{
				OldStatus: oldStatus,
				NewStatus: appointment.Status,
			},
		})
	}
	return appointment, nil
}

// Delete removes an appointment.
func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("appointment", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *AppointmentService) checkParticipants(ctx context.Context, patientID, doctorID string) error {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("patient", map[string]any{"id": patientID})
		}
		return apperrors.MapError(err)
	}
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"id": doctorID})
		}
		return apperrors.MapError(err)
	}
	return nil
}
