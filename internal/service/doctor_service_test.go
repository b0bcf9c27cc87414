package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

func newDoctorService(t *testing.T, staff *fakeStaffRepo, doctors *fakeDoctorRepo) *DoctorService {
	t.Helper()
	svc, err := NewDoctorService(
		testConfig(),
		doctors,
		&fakeUnitOfWork{staff: staff, doctors: doctors},
		events.NewInMemoryDispatcher(),
		nil,
		zap.NewNop(),
	)
	require.NoError(t, err)
	return svc
}

func TestOnboardCreatesLinkedPair(t *testing.T) {
	staff := newFakeStaffRepo()
	doctors := newFakeDoctorRepo()
	svc := newDoctorService(t, staff, doctors)

	doctor, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Amin",
		Gender:   domain.GenderMale,
		Phone:    "555-0100",
		Email:    "Amin@Clinic.Test",
		HireDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, doctor.StaffID)
	assert.Equal(t, "amin@clinic.test", doctor.Email)

	account, err := staff.GetByID(context.Background(), *doctor.StaffID)
	require.NoError(t, err)
	assert.Equal(t, domain.StaffRoleDoctor, account.Role)
	require.NotNil(t, account.DoctorID)
	assert.Equal(t, doctor.ID, *account.DoctorID)

	// credential carries the configured default password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("ChangeMe123!")))
}

func TestOnboardValidation(t *testing.T) {
	svc := newDoctorService(t, newFakeStaffRepo(), newFakeDoctorRepo())

	_, err := svc.Onboard(context.Background(), DoctorInput{FullName: "Dr. NoContact"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Odd",
		Gender:   domain.Gender("Other"),
		Phone:    "555",
		Email:    "odd@clinic.test",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestOnboardRollsBackOnLinkFailure(t *testing.T) {
	staff := newFakeStaffRepo()
	staff.failOn = "set_doctor_id"
	doctors := newFakeDoctorRepo()
	svc := newDoctorService(t, staff, doctors)

	_, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Amin",
		Gender:   domain.GenderMale,
		Phone:    "555-0100",
		Email:    "amin@clinic.test",
	})
	require.Error(t, err)

	// no partial rows survive the failed transaction
	assert.Empty(t, staff.accounts)
	assert.Empty(t, doctors.doctors)
}

func TestOnboardRollsBackOnProfileFailure(t *testing.T) {
	staff := newFakeStaffRepo()
	doctors := newFakeDoctorRepo()
	doctors.failOn = "create"
	svc := newDoctorService(t, staff, doctors)

	_, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Amin",
		Gender:   domain.GenderMale,
		Phone:    "555-0100",
		Email:    "amin@clinic.test",
	})
	require.Error(t, err)
	assert.Empty(t, staff.accounts)
	assert.Empty(t, doctors.doctors)
}

func TestOnboardConflictsOnExistingEmail(t *testing.T) {
	staff := newFakeStaffRepo()
	require.NoError(t, staff.Create(context.Background(), &domain.StaffAccount{
		FullName: "Existing",
		Email:    "amin@clinic.test",
		Role:     domain.StaffRoleStaff,
	}))
	svc := newDoctorService(t, staff, newFakeDoctorRepo())

	_, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Amin",
		Gender:   domain.GenderMale,
		Phone:    "555-0100",
		Email:    "AMIN@clinic.test",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestDoctorUpdateFullNameConflict(t *testing.T) {
	staff := newFakeStaffRepo()
	doctors := newFakeDoctorRepo()
	svc := newDoctorService(t, staff, doctors)

	first, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. First",
		Gender:   domain.GenderFemale,
		Phone:    "555-0001",
		Email:    "first@clinic.test",
	})
	require.NoError(t, err)
	second, err := svc.Onboard(context.Background(), DoctorInput{
		FullName: "Dr. Second",
		Gender:   domain.GenderMale,
		Phone:    "555-0002",
		Email:    "second@clinic.test",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, DoctorInput{FullName: first.FullName})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	updated, err := svc.Update(context.Background(), second.ID, DoctorInput{Phone: "555-0202"})
	require.NoError(t, err)
	assert.Equal(t, "555-0202", updated.Phone)
}

func TestDoctorGetNotFound(t *testing.T) {
	svc := newDoctorService(t, newFakeStaffRepo(), newFakeDoctorRepo())
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
