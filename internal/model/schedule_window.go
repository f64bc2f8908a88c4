package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const MinutesPerDay = 24 * 60

// ScheduleWindow is one employee's availability on one weekday.
// Start and end are minutes since midnight; at most one window exists per
// (employee, day_of_week).
type ScheduleWindow struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"business_id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	DayOfWeek    int       `json:"day_of_week"` // 0 = Sunday … 6 = Saturday
	StartMinutes int       `json:"start_minutes"`
	EndMinutes   int       `json:"end_minutes"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FormatMinutes renders minutes-since-midnight as "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// ParseClock parses "HH:MM" into minutes since midnight. Out-of-range fields
// and trailing text are rejected.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}
