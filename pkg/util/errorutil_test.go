package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
		{NewNotFound("thing", nil), "NOT_FOUND", http.StatusNotFound},
		{NewUnauthorized("no"), "UNAUTHORIZED", http.StatusUnauthorized},
		{NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{NewConflict("dup", nil), "CONFLICT", http.StatusConflict},
		{NewInternalError(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		domainErr := ToDomainError(tc.err)
		require.NotNil(t, domainErr)
		assert.Equal(t, tc.code, domainErr.Code)
		assert.Equal(t, tc.status, domainErr.HTTPStatus)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	domainErr := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)

	wrapped := ToDomainError(fmt.Errorf("lookup: %w", pgx.ErrNoRows))
	assert.Equal(t, "NOT_FOUND", wrapped.Code)
}

func TestToDomainErrorMapsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "staff_email_key"}

	domainErr := ToDomainError(pgErr)
	require.NotNil(t, domainErr)
	assert.Equal(t, "CONFLICT", domainErr.Code)
	assert.Equal(t, http.StatusConflict, domainErr.HTTPStatus)

	wrapped := ToDomainError(fmt.Errorf("insert staff: %w", pgErr))
	assert.Equal(t, "CONFLICT", wrapped.Code)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	domainErr := ToDomainError(errors.New("boom"))
	require.NotNil(t, domainErr)
	assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	assert.ErrorContains(t, domainErr, "boom")
}

func TestMapErrorPassesNilThrough(t *testing.T) {
	require.NoError(t, MapError(nil))

	err := MapError(pgx.ErrNoRows)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", ToDomainError(err).Code)
}
