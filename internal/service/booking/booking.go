package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/service/loyalty"
	"github.com/trimsy-app/trimsy_backend/internal/store"
	"github.com/trimsy-app/trimsy_backend/pkg/reqctx"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	CustomerID uuid.UUID
	ServiceID  uuid.UUID
	EmployeeID uuid.UUID
	Date       time.Time // calendar date
	Minutes    int       // start time, minutes since midnight
	Notes      *string
}

type CompletionResult struct {
	Appointment   *model.Appointment
	PointsAwarded int64
	LevelUp       bool
	Level         string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*model.Appointment, error)
	GetByID(ctx context.Context, businessID, apptID uuid.UUID) (*model.Appointment, error)
	Complete(ctx context.Context, businessID, apptID uuid.UUID) (*CompletionResult, error)
	Cancel(ctx context.Context, businessID, apptID uuid.UUID) (*model.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

// defaultVisitPoints is granted when loyalty is enabled but both the service
// reward and the business per-visit floor compute to zero. Inherited business
// rule, kept as-is.
const defaultVisitPoints = 100

const insertAttempts = 3

type bookingService struct {
	db      *store.Store
	loyalty loyalty.Service
	log     *slog.Logger
}

func New(db *store.Store, loyaltySvc loyalty.Service) Service {
	return &bookingService{db: db, loyalty: loyaltySvc, log: slog.Default()}
}

func (s *bookingService) Create(ctx context.Context, businessID uuid.UUID, req CreateRequest) (*model.Appointment, error) {
	pool := s.db.Pool()

	business, err := s.db.BusinessByID(ctx, pool, businessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	svc, err := s.db.ServiceByID(ctx, pool, businessID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	employee, err := s.db.EmployeeByID(ctx, pool, businessID, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil || !employee.IsActive {
		return nil, ErrEmployeeNotFound
	}
	assigned, err := s.db.EmployeeAssignedToService(ctx, pool, req.EmployeeID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !assigned {
		return nil, ErrEmployeeNotFound
	}

	customer, err := s.db.CustomerByID(ctx, pool, businessID, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	// The requested time is the business's wall clock, matching the grid
	// the availability read produced.
	loc := business.Location()
	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.Minutes/60, req.Minutes%60, 0, 0, loc)
	end := start.Add(svc.Duration())

	appt := &model.Appointment{
		ID:         uuid.New(),
		BusinessID: businessID,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		ServiceID:  req.ServiceID,
		StartTime:  start,
		EndTime:    end,
		TotalPrice: svc.Price,
		Status:     model.AppointmentConfirmed,
		Notes:      req.Notes,
	}

	err = s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		// Serialize against concurrent bookings for this employee, then
		// re-check the interval: the availability read that led here gives
		// no guarantee the slot is still free.
		if err := store.LockEmployee(ctx, tx, req.EmployeeID); err != nil {
			return err
		}

		taken, err := s.db.OverlapExists(ctx, tx, businessID, req.EmployeeID, start, end)
		if err != nil {
			return err
		}
		if taken {
			return ErrSlotTaken
		}

		// A rejected INSERT aborts the enclosing transaction, so each
		// attempt runs under its own savepoint and rolls it back before
		// the next code is drawn.
		return withFreshCode(insertAttempts, func(code string) error {
			appt.ConfirmationCode = code

			sp, err := tx.Begin(ctx)
			if err != nil {
				return err
			}
			if err := s.db.InsertAppointment(ctx, sp, appt); err != nil {
				_ = sp.Rollback(ctx)
				return err
			}
			return sp.Commit(ctx)
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "appointment booked",
		"business_id", businessID,
		"appointment_id", appt.ID,
		"employee_id", req.EmployeeID,
		"start_time", start,
	)
	return appt, nil
}

func (s *bookingService) GetByID(ctx context.Context, businessID, apptID uuid.UUID) (*model.Appointment, error) {
	appt, err := s.db.AppointmentByID(ctx, s.db.Pool(), businessID, apptID)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrNotFound
	}
	return appt, nil
}

// Complete moves confirmed → completed exactly once, and in the same
// transaction awards loyalty points and updates the customer's visit stats.
// Every step rolls back together: points are never granted for a completion
// that failed to persist.
func (s *bookingService) Complete(ctx context.Context, businessID, apptID uuid.UUID) (*CompletionResult, error) {
	var result *CompletionResult

	err := s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		appt, err := s.db.AppointmentForUpdate(ctx, tx, businessID, apptID)
		if err != nil {
			return err
		}
		if appt == nil {
			return ErrNotFound
		}

		switch appt.Status {
		case model.AppointmentCompleted:
			return ErrAlreadyCompleted
		case model.AppointmentConfirmed:
			// the only legal source state
		default:
			return ErrNotCompletable
		}

		now := time.Now()
		if err := s.db.SetAppointmentStatus(ctx, tx, appt.ID, model.AppointmentCompleted, now); err != nil {
			return err
		}
		appt.Status = model.AppointmentCompleted
		appt.CompletedAt = &now

		result = &CompletionResult{Appointment: appt}

		business, err := s.db.BusinessByID(ctx, tx, businessID)
		if err != nil {
			return err
		}

		if business != nil && business.LoyaltyEnabled {
			svc, err := s.db.ServiceByID(ctx, tx, businessID, appt.ServiceID)
			if err != nil {
				return err
			}
			var serviceReward int64
			if svc != nil {
				serviceReward = svc.PointsReward
			}

			points := visitPoints(serviceReward, business.PointsPerVisit)
			award, err := s.loyalty.Award(ctx, tx, businessID, loyalty.AwardRequest{
				CustomerID:  appt.CustomerID,
				Amount:      points,
				Type:        model.TransactionEarnVisit,
				Description: "Completed visit",
				ReferenceID: &appt.ID,
			})
			if err != nil {
				return err
			}
			result.PointsAwarded = points
			result.LevelUp = award.LevelUp
			result.Level = award.Wallet.CurrentLevel
		}

		return s.db.ApplyVisitStats(ctx, tx, businessID, appt.CustomerID, appt.TotalPrice, now)
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"business_id", businessID,
		"appointment_id", apptID,
		"points_awarded", result.PointsAwarded,
	}
	if actor, ok := reqctx.UserIDFromContext(ctx); ok {
		attrs = append(attrs, "actor_id", actor)
	}
	s.log.InfoContext(ctx, "appointment completed", attrs...)
	return result, nil
}

func (s *bookingService) Cancel(ctx context.Context, businessID, apptID uuid.UUID) (*model.Appointment, error) {
	var appt *model.Appointment

	err := s.db.WithinTx(ctx, func(tx pgx.Tx) error {
		var err error
		appt, err = s.db.AppointmentForUpdate(ctx, tx, businessID, apptID)
		if err != nil {
			return err
		}
		if appt == nil {
			return ErrNotFound
		}

		switch appt.Status {
		case model.AppointmentCancelled:
			return ErrAlreadyCancelled
		case model.AppointmentCompleted:
			return ErrAlreadyCompleted
		case model.AppointmentNoShow:
			return ErrNotCompletable
		}

		now := time.Now()
		if err := s.db.SetAppointmentStatus(ctx, tx, appt.ID, model.AppointmentCancelled, now); err != nil {
			return err
		}
		appt.Status = model.AppointmentCancelled
		appt.CancelledAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		"business_id", businessID,
		"appointment_id", apptID,
	}
	if actor, ok := reqctx.UserIDFromContext(ctx); ok {
		attrs = append(attrs, "actor_id", actor)
	}
	s.log.InfoContext(ctx, "appointment cancelled", attrs...)
	return appt, nil
}

// visitPoints applies the completion reward rule: the larger of the service
// reward and the business per-visit floor, with the inherited default of 100
// only when that computes to exactly zero.
func visitPoints(serviceReward, perVisit int64) int64 {
	points := serviceReward
	if perVisit > points {
		points = perVisit
	}
	if points == 0 {
		return defaultVisitPoints
	}
	return points
}
