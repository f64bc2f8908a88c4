package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/api/http/middleware"
	"github.com/trimsy-app/trimsy_backend/internal/model"
)

const dateLayout = "2006-01-02"

func businessIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	v, ok := c.Locals(middleware.LocalsBusinessID).(string)
	if !ok || v == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(v)
	return id, err == nil
}

// parseDate accepts a calendar date in "YYYY-MM-DD" form.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// parseClock accepts "HH:MM" and returns minutes since midnight.
func parseClock(s string) (int, error) {
	return model.ParseClock(s)
}
