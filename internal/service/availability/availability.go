package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Request struct {
	ServiceID  uuid.UUID
	Date       time.Time  // calendar date; only Y/M/D are used
	EmployeeID *uuid.UUID // optional filter
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

// Service derives the bookable slots for a service on a date. It is a pure
// read: it reflects the data at read time and makes no reservation; the
// booking transaction re-checks conflicts at commit.
type Service interface {
	GetAvailability(ctx context.Context, businessID uuid.UUID, req Request) (TimeGrid, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type availabilityService struct {
	db *store.Store
}

func New(db *store.Store) Service {
	return &availabilityService{db: db}
}

func (s *availabilityService) GetAvailability(ctx context.Context, businessID uuid.UUID, req Request) (TimeGrid, error) {
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

	employees, err := s.db.ServiceEmployees(ctx, pool, businessID, req.ServiceID, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return TimeGrid{}, nil
	}

	employeeIDs := make([]uuid.UUID, len(employees))
	for i, e := range employees {
		employeeIDs[i] = e.ID
	}

	dayOfWeek := int(req.Date.Weekday())
	windows, err := s.db.WindowsForDay(ctx, pool, businessID, employeeIDs, dayOfWeek)
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return TimeGrid{}, nil
	}

	// Windows are wall-clock times in the business timezone; anchor the
	// whole day there before comparing against stored timestamps.
	loc := business.Location()
	dayStart := atMinute(req.Date, 0, loc)
	dayEnd := atMinute(req.Date.AddDate(0, 0, 1), 0, loc)
	appts, err := s.db.BlockingAppointments(ctx, pool, businessID, employeeIDs, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[uuid.UUID][]model.Appointment, len(employeeIDs))
	for _, a := range appts {
		byEmployee[a.EmployeeID] = append(byEmployee[a.EmployeeID], a)
	}

	// (minute -> employees), then flattened into an ordered grid.
	open := make(map[int][]uuid.UUID)
	for _, w := range windows {
		for _, m := range slotStarts(w.StartMinutes, w.EndMinutes, svc.DurationMinutes, StepMinutes) {
			start := atMinute(req.Date, m, loc)
			end := start.Add(svc.Duration())
			if conflictsAny(byEmployee[w.EmployeeID], start, end) {
				continue
			}
			open[m] = append(open[m], w.EmployeeID)
		}
	}

	grid := make(TimeGrid, 0, len(open))
	for m, ids := range open {
		grid = append(grid, Slot{Minutes: m, EmployeeIDs: ids})
	}
	sort.Slice(grid, func(i, j int) bool { return grid[i].Minutes < grid[j].Minutes })

	return grid, nil
}

// String is a debugging aid: "09:00[2] 09:15[1] …".
func (g TimeGrid) String() string {
	out := ""
	for i, s := range g {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s[%d]", s.Label(), len(s.EmployeeIDs))
	}
	return out
}
