package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-service/internal/domain"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

func strPtr(s string) *string { return &s }

func TestStaffCreateDefaultsToCustomer(t *testing.T) {
	svc := NewStaffService(testConfig(), newFakeStaffRepo(), newFakeDoctorRepo())

	account, err := svc.Create(context.Background(), StaffInput{
		FullName: strPtr("Front Desk"),
		Email:    strPtr(" Desk@Clinic.Test "),
		Password: strPtr("pw123456"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StaffRoleCustomer, account.Role)
	assert.Equal(t, "desk@clinic.test", account.Email)
}

func TestStaffCreateRequiresFields(t *testing.T) {
	svc := NewStaffService(testConfig(), newFakeStaffRepo(), newFakeDoctorRepo())

	_, err := svc.Create(context.Background(), StaffInput{Email: strPtr("a@b.c")})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestStaffUpdateEmailConflict(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewStaffService(testConfig(), staff, newFakeDoctorRepo())

	first, err := svc.Create(context.Background(), StaffInput{
		FullName: strPtr("First"),
		Email:    strPtr("first@clinic.test"),
		Password: strPtr("pw"),
	})
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), StaffInput{
		FullName: strPtr("Second"),
		Email:    strPtr("second@clinic.test"),
		Password: strPtr("pw"),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), second.ID, StaffInput{Email: strPtr(first.Email)})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	// updating with its own email is not a conflict
	_, err = svc.Update(context.Background(), second.ID, StaffInput{Email: strPtr("SECOND@clinic.test")})
	require.NoError(t, err)
}

func TestStaffUpdateSyncsDoctorProfile(t *testing.T) {
	staff := newFakeStaffRepo()
	doctors := newFakeDoctorRepo()
	svc := NewStaffService(testConfig(), staff, doctors)

	doctor := &domain.DoctorProfile{
		FullName: "Dr. Old Name",
		Gender:   domain.GenderFemale,
		Phone:    "555-0000",
		Email:    "old@clinic.test",
		HireDate: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, doctors.Create(context.Background(), doctor))

	account := &domain.StaffAccount{
		FullName: "Dr. Old Name",
		Email:    "old@clinic.test",
		Role:     domain.StaffRoleDoctor,
		DoctorID: &doctor.ID,
	}
	require.NoError(t, staff.Create(context.Background(), account))

	hire := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), account.ID, StaffInput{
		FullName: strPtr("Dr. New Name"),
		Phone:    strPtr("555-9999"),
		Email:    strPtr("new@clinic.test"),
		HireDate: &hire,
	})
	require.NoError(t, err)

	synced, err := doctors.GetByID(context.Background(), doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dr. New Name", synced.FullName)
	assert.Equal(t, "new@clinic.test", synced.Email)
	assert.Equal(t, "555-9999", synced.Phone)
	assert.Equal(t, hire, synced.HireDate)
}

func TestStaffUpdateToleratesDanglingDoctorLink(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewStaffService(testConfig(), staff, newFakeDoctorRepo())

	missing := "00000000-0000-0000-0000-000000000000"
	account := &domain.StaffAccount{
		FullName: "Orphan",
		Email:    "orphan@clinic.test",
		Role:     domain.StaffRoleDoctor,
		DoctorID: &missing,
	}
	require.NoError(t, staff.Create(context.Background(), account))

	_, err := svc.Update(context.Background(), account.ID, StaffInput{FullName: strPtr("Renamed")})
	require.NoError(t, err)
}

func TestStaffDeleteNotFound(t *testing.T) {
	svc := NewStaffService(testConfig(), newFakeStaffRepo(), newFakeDoctorRepo())
	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
