package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
	"github.com/trimsy-app/trimsy_backend/internal/service/schedule"
)

type ScheduleHandler struct {
	svc schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func mapScheduleError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedule.ErrEmployeeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, schedule.ErrInvalidWindow), errors.Is(err, schedule.ErrDuplicateDay):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

type windowResponse struct {
	ID          uuid.UUID `json:"id"`
	DayOfWeek   int       `json:"day_of_week"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	IsAvailable bool      `json:"is_available"`
}

func toWindowResponses(windows []model.ScheduleWindow) []windowResponse {
	out := make([]windowResponse, 0, len(windows))
	for _, w := range windows {
		out = append(out, windowResponse{
			ID:          w.ID,
			DayOfWeek:   w.DayOfWeek,
			StartTime:   model.FormatMinutes(w.StartMinutes),
			EndTime:     model.FormatMinutes(w.EndMinutes),
			IsAvailable: w.IsAvailable,
		})
	}
	return out
}

// GET /schedule/windows?employee_id=...
func (h *ScheduleHandler) List(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	employeeIDStr := c.Query("employee_id")
	if employeeIDStr == "" {
		return badRequest(c, "employee_id is required")
	}
	employeeID, err := uuid.Parse(employeeIDStr)
	if err != nil {
		return badRequest(c, "invalid employee_id")
	}

	windows, err := h.svc.ListWindows(c.Context(), businessID, employeeID)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, toWindowResponses(windows))
}

// PUT /schedule/windows replaces the employee's whole week.
func (h *ScheduleHandler) Replace(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		EmployeeID string `json:"employee_id"`
		Windows    []struct {
			DayOfWeek   int    `json:"day_of_week"`
			StartTime   string `json:"start_time"`
			EndTime     string `json:"end_time"`
			IsAvailable *bool  `json:"is_available"`
		} `json:"windows"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.EmployeeID == "" {
		return badRequest(c, "employee_id is required")
	}
	employeeID, err := uuid.Parse(body.EmployeeID)
	if err != nil {
		return badRequest(c, "invalid employee_id")
	}

	inputs := make([]schedule.WindowInput, 0, len(body.Windows))
	for _, w := range body.Windows {
		start, err := parseClock(w.StartTime)
		if err != nil {
			return badRequest(c, "invalid start_time, expected HH:MM")
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return badRequest(c, "invalid end_time, expected HH:MM")
		}
		available := true
		if w.IsAvailable != nil {
			available = *w.IsAvailable
		}
		inputs = append(inputs, schedule.WindowInput{
			DayOfWeek:    w.DayOfWeek,
			StartMinutes: start,
			EndMinutes:   end,
			IsAvailable:  available,
		})
	}

	windows, err := h.svc.ReplaceWeek(c.Context(), businessID, employeeID, inputs)
	if err != nil {
		return mapScheduleError(c, err)
	}
	return ok(c, toWindowResponses(windows))
}
