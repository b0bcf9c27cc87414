package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// AuthService coordinates registration, login and password flows.
type AuthService struct {
	staff      repository.StaffRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, staff repository.StaffRepository) *AuthService {
	return &AuthService{
		staff:      staff,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLHours),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput carries registration fields.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     domain.StaffRole
}

// NormalizeEmail trims surrounding whitespace and lowercases the address.
// Applied on every path that reads or writes an email so lookups stay
// consistent.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new staff account and issues a token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.StaffAccount, string, error) {
	email := NormalizeEmail(input.Email)

	if _, err := s.staff.GetByEmail(ctx, email); err == nil {
		return nil, "", apperrors.NewConflict("user with this email already exists", map[string]any{"email": email})
	} else if err != pgx.ErrNoRows {
		return nil, "", apperrors.MapError(err)
	}

	role := input.Role
	if role == "" {
		role = domain.StaffRoleCustomer
	}
	if !domain.ValidStaffRole(role) {
		return nil, "", apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}

	var phone *string
	if input.Phone != "" {
		phone = &input.Phone
	}
	account := &domain.StaffAccount{
		FullName:     input.FullName,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.staff.Create(ctx, account); err != nil {
		return nil, "", apperrors.MapError(err)
	}

	token, _, err := s.tokenMgr.GenerateToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	return account, token, nil
}

// Login authenticates a staff account by email and password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.StaffAccount, string, error) {
	account, err := s.staff.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, "", apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", apperrors.NewUnauthorized("invalid email or password")
	}

	token, _, err := s.tokenMgr.GenerateToken(account.ID, account.Email, account.Role)
	if err != nil {
		return nil, "", apperrors.NewInternalError(err)
	}
	return account, token, nil
}

// ChangePassword verifies the current password before persisting a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, staffID, currentPassword, newPassword string) error {
	account, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}
	if err := auth.ComparePassword(account.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return apperrors.MapError(s.staff.UpdatePassword(ctx, account.ID, hash))
}

// AdminResetPassword overwrites an account's password without checking the
// current one. Reachable only behind the SUPER_ADMIN allowlist; this is the
// designed recovery path for lost passwords.
func (s *AuthService) AdminResetPassword(ctx context.Context, email, newPassword string) error {
	account, err := s.staff.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("account", map[string]any{"email": NormalizeEmail(email)})
		}
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return apperrors.MapError(s.staff.UpdatePassword(ctx, account.ID, hash))
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
