package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

const scheduleWindowColumns = `
	id, business_id, employee_id, day_of_week, start_minutes, end_minutes,
	is_available, created_at, updated_at`

func scanScheduleWindow(row pgx.Row) (*model.ScheduleWindow, error) {
	var w model.ScheduleWindow
	err := row.Scan(
		&w.ID,
		&w.BusinessID,
		&w.EmployeeID,
		&w.DayOfWeek,
		&w.StartMinutes,
		&w.EndMinutes,
		&w.IsAvailable,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// WindowsForDay returns the available windows for the given employees on one
// weekday. Employees with is_available = false on that day are excluded.
func (s *Store) WindowsForDay(ctx context.Context, db Querier, businessID uuid.UUID, employeeIDs []uuid.UUID, dayOfWeek int) ([]model.ScheduleWindow, error) {
	query := `
		SELECT` + scheduleWindowColumns + `
		FROM schedule_windows
		WHERE business_id = $1
		  AND employee_id = ANY($2)
		  AND day_of_week = $3
		  AND is_available
		ORDER BY employee_id, start_minutes
	`

	rows, err := db.Query(ctx, query, businessID, employeeIDs, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("list schedule windows: %w", err)
	}
	defer rows.Close()

	var windows []model.ScheduleWindow
	for rows.Next() {
		w, err := scanScheduleWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule window: %w", err)
		}
		windows = append(windows, *w)
	}
	return windows, rows.Err()
}

// EmployeeWindows returns an employee's full week, ordered by weekday.
func (s *Store) EmployeeWindows(ctx context.Context, db Querier, businessID, employeeID uuid.UUID) ([]model.ScheduleWindow, error) {
	query := `
		SELECT` + scheduleWindowColumns + `
		FROM schedule_windows
		WHERE business_id = $1 AND employee_id = $2
		ORDER BY day_of_week, start_minutes
	`

	rows, err := db.Query(ctx, query, businessID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list employee windows: %w", err)
	}
	defer rows.Close()

	var windows []model.ScheduleWindow
	for rows.Next() {
		w, err := scanScheduleWindow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule window: %w", err)
		}
		windows = append(windows, *w)
	}
	return windows, rows.Err()
}

// DeleteEmployeeWindows removes the employee's whole week. Used by the
// replace-week operation inside its transaction.
func (s *Store) DeleteEmployeeWindows(ctx context.Context, db Querier, businessID, employeeID uuid.UUID) error {
	_, err := db.Exec(ctx,
		`DELETE FROM schedule_windows WHERE business_id = $1 AND employee_id = $2`,
		businessID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("delete employee windows: %w", err)
	}
	return nil
}

func (s *Store) InsertScheduleWindow(ctx context.Context, db Querier, w *model.ScheduleWindow) error {
	query := `
		INSERT INTO schedule_windows
			(id, business_id, employee_id, day_of_week, start_minutes, end_minutes, is_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := db.QueryRow(ctx, query,
		w.ID,
		w.BusinessID,
		w.EmployeeID,
		w.DayOfWeek,
		w.StartMinutes,
		w.EndMinutes,
		w.IsAvailable,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert schedule window: %w", err)
	}
	return nil
}
