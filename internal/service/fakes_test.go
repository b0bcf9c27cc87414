package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
	"github.com/spec-kit/clinic-service/internal/repository"
)

type fakeStaffRepo struct {
	mu       sync.Mutex
	accounts map[string]domain.StaffAccount
	failOn   string
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{accounts: make(map[string]domain.StaffAccount)}
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "create" {
		return errFake
	}
	staff.ID = uuid.NewString()
	r.accounts[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) Update(ctx context.Context, staff *domain.StaffAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.accounts[staff.ID] = *staff
	return nil
}

func (r *fakeStaffRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.PasswordHash = passwordHash
	r.accounts[id] = account
	return nil
}

func (r *fakeStaffRepo) SetDoctorID(ctx context.Context, id string, doctorID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "set_doctor_id" {
		return errFake
	}
	account, ok := r.accounts[id]
	if !ok {
		return pgx.ErrNoRows
	}
	account.DoctorID = doctorID
	r.accounts[id] = account
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := account
	return &copied, nil
}

func (r *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, account := range r.accounts {
		if account.Email == email {
			copied := account
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeStaffRepo) List(ctx context.Context, offset, limit int) ([]domain.StaffAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.StaffAccount, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}
	return out, nil
}

func (r *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.accounts, id)
	return nil
}

type fakeDoctorRepo struct {
	mu      sync.Mutex
	doctors map[string]domain.DoctorProfile
	failOn  string
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]domain.DoctorProfile)}
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *domain.DoctorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn == "create" {
		return errFake
	}
	doctor.ID = uuid.NewString()
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *domain.DoctorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[doctor.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.doctors[doctor.ID] = *doctor
	return nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, id string) (*domain.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := doctor
	return &copied, nil
}

func (r *fakeDoctorRepo) GetByFullName(ctx context.Context, fullName string) (*domain.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doctor := range r.doctors {
		if doctor.FullName == fullName {
			copied := doctor
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeDoctorRepo) List(ctx context.Context, offset, limit int) ([]domain.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DoctorProfile, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		out = append(out, doctor)
	}
	return out, nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.doctors[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.doctors, id)
	return nil
}

// fakeUnitOfWork mimics transactional behavior: the callback runs against
// scratch copies and changes are merged back only when it succeeds.
type fakeUnitOfWork struct {
	staff   *fakeStaffRepo
	doctors *fakeDoctorRepo
}

func (u *fakeUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, stores repository.Stores) error) error {
	txStaff := newFakeStaffRepo()
	txStaff.failOn = u.staff.failOn
	for id, account := range u.staff.accounts {
		txStaff.accounts[id] = account
	}
	txDoctors := newFakeDoctorRepo()
	txDoctors.failOn = u.doctors.failOn
	for id, doctor := range u.doctors.doctors {
		txDoctors.doctors[id] = doctor
	}

	if err := fn(ctx, repository.Stores{Staff: txStaff, Doctors: txDoctors}); err != nil {
		return err
	}

	u.staff.accounts = txStaff.accounts
	u.doctors.doctors = txDoctors.doctors
	return nil
}

type fakeError string

func (e fakeError) Error() string { return string(e) }

const errFake = fakeError("storage failure")
