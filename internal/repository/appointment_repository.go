package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/clinic-service/internal/domain"
)

// AppointmentRepository handles persistence for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Update(ctx context.Context, appointment *domain.Appointment) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	List(ctx context.Context, offset, limit int) ([]domain.Appointment, error)
	ListByParticipants(ctx context.Context, patientID, doctorID *string) ([]domain.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type appointmentRepository struct {
	db Querier
}

// NewAppointmentRepository instantiates the repository.
func NewAppointmentRepository(db Querier) AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `id, status, appointment_time, patient_id, doctor_id, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (status, appointment_time, patient_id, doctor_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		appointment.Status,
		appointment.AppointmentTime,
		appointment.PatientID,
		appointment.DoctorID,
	).Scan(&appointment.ID, &appointment.CreatedAt, &appointment.UpdatedAt)
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        UPDATE appointments
        SET status=$1, appointment_time=$2, patient_id=$3, doctor_id=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.db.Exec(ctx, query,
		appointment.Status,
		appointment.AppointmentTime,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`

	var appointment domain.Appointment
	if err := scanAppointment(r.db.QueryRow(ctx, query, id), &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context, offset, limit int) ([]domain.Appointment, error) {
	const query = `
        SELECT ` + appointmentColumns + `
        FROM appointments ORDER BY created_at DESC
        LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepository) ListByParticipants(ctx context.Context, patientID, doctorID *string) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + ` FROM appointments`
	args := []any{}
	clauses := []string{}

	if patientID != nil {
		args = append(args, *patientID)
		clauses = append(clauses, fmt.Sprintf("patient_id=$%d", len(args)))
	}
	if doctorID != nil {
		args = append(args, *doctorID)
		clauses = append(clauses, fmt.Sprintf("doctor_id=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY appointment_time DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var result []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		if err := scanAppointment(rows, &appointment); err != nil {
			return nil, err
		}
		result = append(result, appointment)
	}
	return result, rows.Err()
}

func scanAppointment(row pgx.Row, appointment *domain.Appointment) error {
	return row.Scan(
		&appointment.ID,
		&appointment.Status,
		&appointment.AppointmentTime,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
}
