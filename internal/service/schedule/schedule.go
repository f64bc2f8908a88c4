package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type WindowInput struct {
	DayOfWeek    int
	StartMinutes int
	EndMinutes   int
	IsAvailable  bool
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service manages per-employee weekly availability windows. Mutation is
// whole-week replacement: the caller sends the full week and the previous
// windows are deleted and reinserted inside one transaction.
type Service interface {
	ListWindows(ctx context.Context, businessID, employeeID uuid.UUID) ([]model.ScheduleWindow, error)
	ReplaceWeek(ctx context.Context, businessID, employeeID uuid.UUID, windows []WindowInput) ([]model.ScheduleWindow, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type scheduleService struct {
	db *store.Store
}

func New(db *store.Store) Service {
	return &scheduleService{db: db}
}

func (s *scheduleService) ListWindows(ctx context.Context, businessID, employeeID uuid.UUID) ([]model.ScheduleWindow, error) {
	employee, err := s.db.EmployeeByID(ctx, s.db.Pool(), businessID, employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return s.db.EmployeeWindows(ctx, s.db.Pool(), businessID, employeeID)
}

func (s *scheduleService) ReplaceWeek(ctx context.Context, businessID, employeeID uuid.UUID, windows []WindowInput) ([]model.ScheduleWindow, error) {
	if err := validateWeek(windows); err != nil {
		return nil, err
	}

	var out []model.ScheduleWindow
	err := s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		employee, err := s.db.EmployeeByID(ctx, tx, businessID, employeeID)
		if err != nil {
			return err
		}
		if employee == nil {
			return ErrEmployeeNotFound
		}

		if err := s.db.DeleteEmployeeWindows(ctx, tx, businessID, employeeID); err != nil {
			return err
		}

		out = make([]model.ScheduleWindow, 0, len(windows))
		for _, in := range windows {
			w := model.ScheduleWindow{
				ID:           uuid.New(),
				BusinessID:   businessID,
				EmployeeID:   employeeID,
				DayOfWeek:    in.DayOfWeek,
				StartMinutes: in.StartMinutes,
				EndMinutes:   in.EndMinutes,
				IsAvailable:  in.IsAvailable,
			}
			if err := s.db.InsertScheduleWindow(ctx, tx, &w); err != nil {
				return err
			}
			out = append(out, w)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// validateWeek checks ranges and the one-window-per-weekday rule.
func validateWeek(windows []WindowInput) error {
	seen := [7]bool{}
	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return fmt.Errorf("%w: day_of_week %d out of range", ErrInvalidWindow, w.DayOfWeek)
		}
		if w.StartMinutes < 0 || w.EndMinutes > model.MinutesPerDay || w.StartMinutes >= w.EndMinutes {
			return fmt.Errorf("%w: range %d-%d", ErrInvalidWindow, w.StartMinutes, w.EndMinutes)
		}
		if seen[w.DayOfWeek] {
			return fmt.Errorf("%w: day %d", ErrDuplicateDay, w.DayOfWeek)
		}
		seen[w.DayOfWeek] = true
	}
	return nil
}
