package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/service/availability"
)

type AvailabilityHandler struct {
	svc availability.Service
}

func NewAvailabilityHandler(svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// GET /availability?date=YYYY-MM-DD&service_id=...&employee_id=...
func (h *AvailabilityHandler) Get(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var q struct {
		Date       string `query:"date"`
		ServiceID  string `query:"service_id"`
		EmployeeID string `query:"employee_id"`
	}
	if err := c.Bind().Query(&q); err != nil {
		return badRequest(c, "invalid query parameters")
	}

	if q.Date == "" || q.ServiceID == "" {
		return badRequest(c, "date and service_id are required")
	}

	date, err := parseDate(q.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	serviceID, err := uuid.Parse(q.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}

	req := availability.Request{ServiceID: serviceID, Date: date}
	if q.EmployeeID != "" {
		id, err := uuid.Parse(q.EmployeeID)
		if err != nil {
			return badRequest(c, "invalid employee_id")
		}
		req.EmployeeID = &id
	}

	grid, err := h.svc.GetAvailability(c.Context(), businessID, req)
	if err != nil {
		if errors.Is(err, availability.ErrServiceNotFound) ||
			errors.Is(err, availability.ErrBusinessNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return ok(c, grid)
}
