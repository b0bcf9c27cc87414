package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// StaffService manages staff credential records.
type StaffService struct {
	staff      repository.StaffRepository
	doctors    repository.DoctorRepository
	bcryptCost int
}

// NewStaffService constructs the service.
func NewStaffService(cfg config.Config, staff repository.StaffRepository, doctors repository.DoctorRepository) *StaffService {
	return &StaffService{
		staff:      staff,
		doctors:    doctors,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// StaffInput carries writable staff fields. Nil pointers mean "leave unchanged"
// on update.
type StaffInput struct {
	FullName *string
	Phone    *string
	Email    *string
	Password *string
	Role     *domain.StaffRole
	HireDate *time.Time
}

// Create adds a staff account; role defaults to CUSTOMER when absent.
func (s *StaffService) Create(ctx context.Context, input StaffInput) (*domain.StaffAccount, error) {
	if input.FullName == nil || input.Email == nil || input.Password == nil {
		return nil, apperrors.NewValidationError("full_name, email and password required", nil)
	}

	email := NormalizeEmail(*input.Email)
	if existing, err := s.staff.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperrors.NewConflict("staff with this email already exists", map[string]any{"email": email})
	} else if err != nil && err != pgx.ErrNoRows {
		return nil, apperrors.MapError(err)
	}

	role := domain.StaffRoleCustomer
	if input.Role != nil {
		role = *input.Role
	}
	if !domain.ValidStaffRole(role) {
		return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": role})
	}

	hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	account := &domain.StaffAccount{
		FullName:     *input.FullName,
		Phone:        input.Phone,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		HireDate:     input.HireDate,
	}
	if err := s.staff.Create(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// Get fetches a staff account by id.
func (s *StaffService) Get(ctx context.Context, id string) (*domain.StaffAccount, error) {
	account, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("staff", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return account, nil
}

// List returns staff accounts with offset/limit pagination.
func (s *StaffService) List(ctx context.Context, offset, limit int) ([]domain.StaffAccount, error) {
	return s.staff.List(ctx, offset, limit)
}

// Update modifies a staff account. When the account is linked to a doctor
// profile, name/phone/email/hire_date changes are propagated to the profile.
// The sync is one-directional: staff to doctor only.
func (s *StaffService) Update(ctx context.Context, id string, input StaffInput) (*domain.StaffAccount, error) {
	account, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := NormalizeEmail(*input.Email)
		if email != account.Email {
			if existing, err := s.staff.GetByEmail(ctx, email); err == nil && existing != nil && existing.ID != account.ID {
				return nil, apperrors.NewConflict("staff with this email already exists", map[string]any{"email": email})
			} else if err != nil && err != pgx.ErrNoRows {
				return nil, apperrors.MapError(err)
			}
		}
		account.Email = email
	}
	if input.FullName != nil {
		account.FullName = *input.FullName
	}
	if input.Phone != nil {
		account.Phone = input.Phone
	}
	if input.HireDate != nil {
		account.HireDate = input.HireDate
	}
	if input.Role != nil {
		if !domain.ValidStaffRole(*input.Role) {
			return nil, apperrors.NewValidationError("invalid role", map[string]any{"role": *input.Role})
		}
		account.Role = *input.Role
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		account.PasswordHash = hash
	}

	if err := s.staff.Update(ctx, account); err != nil {
		return nil, apperrors.MapError(err)
	}

	if account.DoctorID != nil {
		if err := s.syncDoctorProfile(ctx, account); err != nil {
			return nil, err
		}
	}
	return account, nil
}

// Delete removes a staff account.
func (s *StaffService) Delete(ctx context.Context, id string) error {
	if err := s.staff.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("staff", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (s *StaffService) syncDoctorProfile(ctx context.Context, account *domain.StaffAccount) error {
	doctor, err := s.doctors.GetByID(ctx, *account.DoctorID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// dangling link; nothing to sync
			return nil
		}
		return apperrors.MapError(err)
	}

	doctor.FullName = account.FullName
	doctor.Email = account.Email
	if account.Phone != nil {
		doctor.Phone = *account.Phone
	}
	if account.HireDate != nil {
		doctor.HireDate = *account.HireDate
	}
	return apperrors.MapError(s.doctors.Update(ctx, doctor))
}
