package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clinic-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)

	token, expiresAt, err := tm.GenerateToken("staff-1", "jane@clinic.test", domain.StaffRoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", claims.Subject)
	assert.Equal(t, "jane@clinic.test", claims.Email)
	assert.Equal(t, domain.StaffRoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	other := NewTokenManager("other-secret", 1)

	token, _, err := tm.GenerateToken("staff-1", "jane@clinic.test", domain.StaffRoleStaff)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	tm := &TokenManager{secret: []byte("test-secret"), ttl: -time.Hour}

	token, _, err := tm.GenerateToken("staff-1", "jane@clinic.test", domain.StaffRoleStaff)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 1)
	_, err := tm.ParseToken("not.a.token")
	require.Error(t, err)
}
