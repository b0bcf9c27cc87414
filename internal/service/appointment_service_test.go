package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

type fakePatientRepo struct {
	mu       sync.Mutex
	patients map[string]domain.Patient
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[string]domain.Patient)}
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient.ID = uuid.NewString()
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *domain.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[patient.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, id string) (*domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	patient, ok := r.patients[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := patient
	return &copied, nil
}

func (r *fakePatientRepo) List(ctx context.Context, offset, limit int) ([]domain.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Patient, 0, len(r.patients))
	for _, patient := range r.patients {
		out = append(out, patient)
	}
	return out, nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.patients[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.patients, id)
	return nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments map[string]domain.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]domain.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment.ID = uuid.NewString()
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[appointment.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.appointments[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := appointment
	return &copied, nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, offset, limit int) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Appointment, 0, len(r.appointments))
	for _, appointment := range r.appointments {
		out = append(out, appointment)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) ListByParticipants(ctx context.Context, patientID, doctorID *string) ([]domain.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Appointment, 0)
	for _, appointment := range r.appointments {
		if patientID != nil && appointment.PatientID != *patientID {
			continue
		}
		if doctorID != nil && appointment.DoctorID != *doctorID {
			continue
		}
		out = append(out, appointment)
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.appointments[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.appointments, id)
	return nil
}

func seedPatientAndDoctor(t *testing.T, patients *fakePatientRepo, doctors *fakeDoctorRepo) (string, string) {
	t.Helper()
	patient := &domain.Patient{FullName: "Pat", Gender: domain.GenderFemale, DateOfBirth: time.Now().AddDate(-30, 0, 0), Phone: "555", Email: "pat@clinic.test"}
	require.NoError(t, patients.Create(context.Background(), patient))
	doctor := &domain.DoctorProfile{FullName: "Dr. Who", Gender: domain.GenderMale, Phone: "555", Email: "who@clinic.test", HireDate: time.Now()}
	require.NoError(t, doctors.Create(context.Background(), doctor))
	return patient.ID, doctor.ID
}

func TestAppointmentCreate(t *testing.T) {
	patients := newFakePatientRepo()
	doctors := newFakeDoctorRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAppointmentService(newFakeAppointmentRepo(), patients, doctors, dispatcher)

	patientID, doctorID := seedPatientAndDoctor(t, patients, doctors)
	when := time.Now().Add(48 * time.Hour)

	var published []events.Event
	dispatcher.Subscribe(events.EventAppointmentCreated, func(ctx context.Context, event events.Event) error {
		published = append(published, event)
		return nil
	})

	appointment, err := svc.Create(context.Background(), AppointmentInput{
		PatientID:       &patientID,
		DoctorID:        &doctorID,
		AppointmentTime: &when,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentScheduled, appointment.Status)
	require.Len(t, published, 1)

	t.Run("unknown patient rejected", func(t *testing.T) {
		missing := "missing"
		_, err := svc.Create(context.Background(), AppointmentInput{
			PatientID:       &missing,
			DoctorID:        &doctorID,
			AppointmentTime: &when,
		})
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		bad := domain.AppointmentStatus("pending")
		_, err := svc.Create(context.Background(), AppointmentInput{
			PatientID:       &patientID,
			DoctorID:        &doctorID,
			AppointmentTime: &when,
			Status:          &bad,
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})
}

func TestAppointmentStatusChangePublishesEvent(t *testing.T) {
	patients := newFakePatientRepo()
	doctors := newFakeDoctorRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAppointmentService(newFakeAppointmentRepo(), patients, doctors, dispatcher)

	patientID, doctorID := seedPatientAndDoctor(t, patients, doctors)
	when := time.Now().Add(24 * time.Hour)
	appointment, err := svc.Create(context.Background(), AppointmentInput{
		PatientID:       &patientID,
		DoctorID:        &doctorID,
		AppointmentTime: &when,
	})
	require.NoError(t, err)

	var changes []events.AppointmentStatusChangedPayload
	dispatcher.Subscribe(events.EventAppointmentStatusChanged, func(ctx context.Context, event events.Event) error {
		if payload, ok := event.Payload.(events.AppointmentStatusChangedPayload); ok {
			changes = append(changes, payload)
		}
		return nil
	})

	completed := domain.AppointmentCompleted
	updated, err := svc.Update(context.Background(), appointment.ID, AppointmentInput{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.AppointmentCompleted, updated.Status)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.AppointmentScheduled, changes[0].OldStatus)
	assert.Equal(t, domain.AppointmentCompleted, changes[0].NewStatus)

	// same status again is not a change
	_, err = svc.Update(context.Background(), appointment.ID, AppointmentInput{Status: &completed})
	require.NoError(t, err)
	assert.Len(t, changes, 1)
}

func TestAppointmentListFilters(t *testing.T) {
	patients := newFakePatientRepo()
	doctors := newFakeDoctorRepo()
	svc := NewAppointmentService(newFakeAppointmentRepo(), patients, doctors, events.NewInMemoryDispatcher())

	patientID, doctorID := seedPatientAndDoctor(t, patients, doctors)
	otherPatientID, _ := seedPatientAndDoctor(t, patients, doctors)
	when := time.Now().Add(24 * time.Hour)

	for _, pid := range []string{patientID, otherPatientID} {
		p := pid
		_, err := svc.Create(context.Background(), AppointmentInput{
			PatientID:       &p,
			DoctorID:        &doctorID,
			AppointmentTime: &when,
		})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), nil, nil, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(context.Background(), &patientID, nil, 0, 10)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, patientID, mine[0].PatientID)
}
