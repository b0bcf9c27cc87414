package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLHours:   1,
			BcryptCost:            bcrypt.MinCost,
			DefaultDoctorPassword: "ChangeMe123!",
		},
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@clinic.test", NormalizeEmail("  Jane@Clinic.TEST "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestRegister(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewAuthService(testConfig(), staff)

	account, token, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Jane@Clinic.TEST ",
		Password: "secret123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@clinic.test", account.Email)
	assert.Equal(t, domain.StaffRoleCustomer, account.Role)
	assert.NotEqual(t, "secret123", account.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("secret123")))

	t.Run("duplicate email conflicts even with different casing", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Email:    "JANE@clinic.test",
			Password: "other",
			FullName: "Imposter",
		})
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, _, err := svc.Register(context.Background(), RegisterInput{
			Email:    "new@clinic.test",
			Password: "pw",
			FullName: "New",
			Role:     domain.StaffRole("WIZARD"),
		})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
	})
}

func TestLogin(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewAuthService(testConfig(), staff)

	_, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "jane@clinic.test",
		Password: "secret123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	account, token, err := svc.Login(context.Background(), "Jane@Clinic.Test", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "jane@clinic.test", account.Email)

	_, _, err = svc.Login(context.Background(), "jane@clinic.test", "wrong")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)

	_, _, err = svc.Login(context.Background(), "ghost@clinic.test", "secret123")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestChangePassword(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewAuthService(testConfig(), staff)

	account, _, err := svc.Register(context.Background(), RegisterInput{
		Email:    "jane@clinic.test",
		Password: "secret123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), account.ID, "wrong", "newpass")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.ChangePassword(context.Background(), account.ID, "secret123", "newpass"))

	_, _, err = svc.Login(context.Background(), "jane@clinic.test", "secret123")
	require.Error(t, err)
	_, _, err = svc.Login(context.Background(), "jane@clinic.test", "newpass")
	require.NoError(t, err)
}

func TestAdminResetPassword(t *testing.T) {
	staff := newFakeStaffRepo()
	svc := NewAuthService(testConfig(), staff)

	err := svc.AdminResetPassword(context.Background(), "ghost@clinic.test", "newpass")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, _, err = svc.Register(context.Background(), RegisterInput{
		Email:    "jane@clinic.test",
		Password: "secret123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AdminResetPassword(context.Background(), "Jane@Clinic.Test", "recovered"))

	_, _, err = svc.Login(context.Background(), "jane@clinic.test", "recovered")
	require.NoError(t, err)
}
