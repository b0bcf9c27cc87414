package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/service"
)

type staffRepoStub struct {
	mu       sync.Mutex
	accounts map[string]*domain.StaffAccount
}

func newStaffRepoStub() *staffRepoStub {
	return &staffRepoStub{accounts: make(map[string]*domain.StaffAccount)}
}

func (r *staffRepoStub) Create(ctx context.Context, staff *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff.ID = uuid.NewString()
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt
	r.accounts[staff.Email] = staff
	return nil
}

func (r *staffRepoStub) Update(ctx context.Context, staff *domain.StaffAccount) error { return nil }

func (r *staffRepoStub) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return nil
}

func (r *staffRepoStub) SetDoctorID(ctx context.Context, id string, doctorID *string) error {
	return nil
}

func (r *staffRepoStub) GetByID(ctx context.Context, id string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *staffRepoStub) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if account, ok := r.accounts[email]; ok {
		return account, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *staffRepoStub) List(ctx context.Context, offset, limit int) ([]domain.StaffAccount, error) {
	return nil, nil
}

func (r *staffRepoStub) Delete(ctx context.Context, id string) error { return nil }

func TestRegisterResponseOmitsPasswordFields(t *testing.T) {
	svc := service.NewAuthService(config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			AccessTokenTTLHours: 1,
			BcryptCost:          bcrypt.MinCost,
		},
	}, newStaffRepoStub())

	app := fiber.New()
	app.Post("/auth/register", NewAuthHandler(svc).Register)

	body := `{"email":"Nurse@Clinic.Test","password":"s3cret-pw","full_name":"Nurse Joy"}`
	req := httptest.NewRequest("POST", "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	var payload struct {
		Data struct {
			User        map[string]any `json:"user"`
			AccessToken string         `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.NotEmpty(t, payload.Data.AccessToken)
	assert.Equal(t, "nurse@clinic.test", payload.Data.User["email"])
	for key := range payload.Data.User {
		assert.NotContains(t, key, "password")
	}
}
