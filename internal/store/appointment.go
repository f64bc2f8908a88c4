package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

const appointmentColumns = `
	id, business_id, customer_id, employee_id, service_id, start_time, end_time,
	total_price, status, confirmation_code, notes, completed_at, cancelled_at,
	created_at, updated_at`

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.BusinessID,
		&a.CustomerID,
		&a.EmployeeID,
		&a.ServiceID,
		&a.StartTime,
		&a.EndTime,
		&a.TotalPrice,
		&a.Status,
		&a.ConfirmationCode,
		&a.Notes,
		&a.CompletedAt,
		&a.CancelledAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// BlockingAppointments returns the appointments that still occupy employee
// time (not cancelled, not no-show) in [from, to) for the given employees.
func (s *Store) BlockingAppointments(ctx context.Context, db Querier, businessID uuid.UUID, employeeIDs []uuid.UUID, from, to time.Time) ([]model.Appointment, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments
		WHERE business_id = $1
		  AND employee_id = ANY($2)
		  AND status NOT IN ('cancelled', 'no_show')
		  AND start_time < $4
		  AND end_time > $3
		ORDER BY start_time
	`

	rows, err := db.Query(ctx, query, businessID, employeeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("list blocking appointments: %w", err)
	}
	defer rows.Close()

	var appts []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, *a)
	}
	return appts, rows.Err()
}

// OverlapExists re-checks the half-open overlap rule at commit time: a
// blocking appointment for this employee intersecting [start, end).
func (s *Store) OverlapExists(ctx context.Context, db Querier, businessID, employeeID uuid.UUID, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM appointments
			WHERE business_id = $1
			  AND employee_id = $2
			  AND status NOT IN ('cancelled', 'no_show')
			  AND start_time < $4
			  AND end_time > $3
		)
	`

	var exists bool
	if err := db.QueryRow(ctx, query, businessID, employeeID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap: %w", err)
	}
	return exists, nil
}

func (s *Store) InsertAppointment(ctx context.Context, db Querier, a *model.Appointment) error {
	query := `
		INSERT INTO appointments
			(id, business_id, customer_id, employee_id, service_id,
			 start_time, end_time, total_price, status, confirmation_code, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := db.QueryRow(ctx, query,
		a.ID,
		a.BusinessID,
		a.CustomerID,
		a.EmployeeID,
		a.ServiceID,
		a.StartTime,
		a.EndTime,
		a.TotalPrice,
		a.Status,
		a.ConfirmationCode,
		a.Notes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (s *Store) AppointmentByID(ctx context.Context, db Querier, businessID, apptID uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments
		WHERE id = $1 AND business_id = $2
	`

	a, err := scanAppointment(db.QueryRow(ctx, query, apptID, businessID))
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return a, nil
}

// AppointmentForUpdate loads the appointment under a row lock so the status
// transition in the surrounding transaction cannot race another writer.
func (s *Store) AppointmentForUpdate(ctx context.Context, db Querier, businessID, apptID uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT` + appointmentColumns + `
		FROM appointments
		WHERE id = $1 AND business_id = $2
		FOR UPDATE
	`

	a, err := scanAppointment(db.QueryRow(ctx, query, apptID, businessID))
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment for update: %w", err)
	}
	return a, nil
}

func (s *Store) SetAppointmentStatus(ctx context.Context, db Querier, apptID uuid.UUID, status model.AppointmentStatus, at time.Time) error {
	query := `
		UPDATE appointments
		SET status = $2,
		    completed_at = CASE WHEN $2 = 'completed' THEN $3 ELSE completed_at END,
		    cancelled_at = CASE WHEN $2 = 'cancelled' THEN $3 ELSE cancelled_at END,
		    updated_at = now()
		WHERE id = $1
	`

	tag, err := db.Exec(ctx, query, apptID, status, at)
	if err != nil {
		return fmt.Errorf("set appointment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("set appointment status: appointment %s not found", apptID)
	}
	return nil
}
