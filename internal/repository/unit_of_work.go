package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Stores groups the repositories that participate in a single transaction.
type Stores struct {
	Staff   StaffRepository
	Doctors DoctorRepository
}

// UnitOfWork runs a function atomically: every store operation inside fn
// commits together or rolls back together.
type UnitOfWork interface {
	Run(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}

type pgxUnitOfWork struct {
	pool *pgxpool.Pool
}

// NewUnitOfWork builds a Postgres-backed unit of work.
func NewUnitOfWork(pool *pgxpool.Pool) UnitOfWork {
	return &pgxUnitOfWork{pool: pool}
}

func (u *pgxUnitOfWork) Run(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op once committed
	}()

	stores := Stores{
		Staff:   NewStaffRepository(tx),
		Doctors: NewDoctorRepository(tx),
	}
	if err := fn(ctx, stores); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
