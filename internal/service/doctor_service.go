package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/clinic-service/internal/auth"
	"github.com/spec-kit/clinic-service/internal/config"
	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/events"
	"github.com/spec-kit/clinic-service/internal/persistence"
	"github.com/spec-kit/clinic-service/internal/repository"
	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

const doctorCacheTTL = 10 * time.Minute

// DoctorService manages doctor profiles and the paired staff credential.
type DoctorService struct {
	doctors        repository.DoctorRepository
	uow            repository.UnitOfWork
	dispatcher     events.Dispatcher
	cache          *persistence.Redis
	logger         *zap.Logger
	defaultPwdHash string
}

// NewDoctorService constructs the service. The default doctor password is
// hashed once at startup so onboarding does not pay bcrypt cost per field
// validation failure.
func NewDoctorService(
	cfg config.Config,
	doctors repository.DoctorRepository,
	uow repository.UnitOfWork,
	dispatcher events.Dispatcher,
	cache *persistence.Redis,
	logger *zap.Logger,
) (*DoctorService, error) {
	hash, err := auth.HashPassword(cfg.Auth.DefaultDoctorPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &DoctorService{
		doctors:        doctors,
		uow:            uow,
		dispatcher:     dispatcher,
		cache:          cache,
		logger:         logger,
		defaultPwdHash: hash,
	}, nil
}

// DoctorInput carries writable doctor fields.
type DoctorInput struct {
	FullName string
	Gender   domain.Gender
	Phone    string
	Email    string
	HireDate time.Time
}

// Onboard creates the doctor profile together with its staff credential in a
// single transaction. The two rows end up referencing each other; a failure
// at any step leaves neither behind.
func (s *DoctorService) Onboard(ctx context.Context, input DoctorInput) (*domain.DoctorProfile, error) {
	if input.Gender == "" || input.Email == "" || input.Phone == "" {
		return nil, apperrors.NewValidationError("gender, email and phone are required", nil)
	}
	if input.Gender != domain.GenderMale && input.Gender != domain.GenderFemale {
		return nil, apperrors.NewValidationError("invalid gender", map[string]any{"gender": input.Gender})
	}

	email := NormalizeEmail(input.Email)
	hireDate := input.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now()
	}

	var doctor *domain.DoctorProfile
	err := s.uow.Run(ctx, func(ctx context.Context, stores repository.Stores) error {
		if _, err := stores.Staff.GetByEmail(ctx, email); err == nil {
			return apperrors.NewConflict("staff with this email already exists", map[string]any{"email": email})
		} else if err != pgx.ErrNoRows {
			return err
		}

		account := &domain.StaffAccount{
			FullName:     input.FullName,
			Phone:        &input.Phone,
			Email:        email,
			PasswordHash: s.defaultPwdHash,
			Role:         domain.StaffRoleDoctor,
			HireDate:     &hireDate,
		}
		if err := stores.Staff.Create(ctx, account); err != nil {
			return err
		}

		doctor = &domain.DoctorProfile{
			FullName: input.FullName,
			Gender:   input.Gender,
			Phone:    input.Phone,
			Email:    email,
			HireDate: hireDate,
			StaffID:  &account.ID,
		}
		if err := stores.Doctors.Create(ctx, doctor); err != nil {
			return err
		}

		return stores.Staff.SetDoctorID(ctx, account.ID, &doctor.ID)
	})
	if err != nil {
		s.logger.Error("doctor onboarding failed; transaction rolled back",
			zap.String("email", email), zap.Error(err))
		return nil, apperrors.MapError(err)
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventDoctorOnboarded,
		SubjectID: doctor.ID,
		Timestamp: time.Now(),
		Payload: events.DoctorOnboardedPayload{
			DoctorID: doctor.ID,
			StaffID:  *doctor.StaffID,
			FullName: doctor.FullName,
		},
	})
	return doctor, nil
}

// Get fetches a doctor profile, consulting the cache first.
func (s *DoctorService) Get(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	if cached := s.cacheGet(ctx, id); cached != nil {
		return cached, nil
	}

	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("doctor", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	s.cacheSet(ctx, doctor)
	return doctor, nil
}

// List returns doctor profiles ordered by hire date.
func (s *DoctorService) List(ctx context.Context, offset, limit int) ([]domain.DoctorProfile, error) {
	return s.doctors.List(ctx, offset, limit)
}

// Update modifies a doctor profile. A changed full name must not collide with
// an existing profile.
func (s *DoctorService) Update(ctx context.Context, id string, input DoctorInput) (*domain.DoctorProfile, error) {
	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("doctor", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if input.FullName != "" && input.FullName != doctor.FullName {
		if existing, err := s.doctors.GetByFullName(ctx, input.FullName); err == nil && existing != nil {
			return nil, apperrors.NewConflict("a doctor with this full name already exists", map[string]any{"full_name": input.FullName})
		} else if err != nil && err != pgx.ErrNoRows {
			return nil, apperrors.MapError(err)
		}
		doctor.FullName = input.FullName
	}
	if input.Gender != "" {
		doctor.Gender = input.Gender
	}
	if input.Phone != "" {
		doctor.Phone = input.Phone
	}
	if input.Email != "" {
		doctor.Email = NormalizeEmail(input.Email)
	}
	if !input.HireDate.IsZero() {
		doctor.HireDate = input.HireDate
	}

	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cacheInvalidate(ctx, id)
	return doctor, nil
}

// Delete removes a doctor profile.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.doctors.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("doctor", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.cacheInvalidate(ctx, id)
	return nil
}

func doctorCacheKey(id string) string {
	return "doctor:" + id
}

func (s *DoctorService) cacheGet(ctx context.Context, id string) *domain.DoctorProfile {
	if s.cache == nil || s.cache.Client == nil {
		return nil
	}
	raw, err := s.cache.Client.Get(ctx, doctorCacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var doctor domain.DoctorProfile
	if err := json.Unmarshal(raw, &doctor); err != nil {
		return nil
	}
	return &doctor
}

func (s *DoctorService) cacheSet(ctx context.Context, doctor *domain.DoctorProfile) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	raw, err := json.Marshal(doctor)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, doctorCacheKey(doctor.ID), raw, doctorCacheTTL).Err(); err != nil {
		s.logger.Debug("doctor cache set failed", zap.Error(err))
	}
}

func (s *DoctorService) cacheInvalidate(ctx context.Context, id string) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Del(ctx, doctorCacheKey(id)).Err(); err != nil {
		s.logger.Debug("doctor cache invalidation failed", zap.Error(err))
	}
}
