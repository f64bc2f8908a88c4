package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/service/booking"
)

type AppointmentHandler struct {
	svc booking.Service
}

func NewAppointmentHandler(svc booking.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrBusinessNotFound),
		errors.Is(err, booking.ErrServiceNotFound),
		errors.Is(err, booking.ErrEmployeeNotFound),
		errors.Is(err, booking.ErrCustomerNotFound),
		errors.Is(err, booking.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSlotTaken):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrAlreadyCompleted),
		errors.Is(err, booking.ErrAlreadyCancelled),
		errors.Is(err, booking.ErrNotCompletable):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /appointments
func (h *AppointmentHandler) Create(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	var body struct {
		CustomerID string  `json:"customer_id"`
		ServiceID  string  `json:"service_id"`
		EmployeeID string  `json:"employee_id"`
		Date       string  `json:"date"`
		Time       string  `json:"time"`
		Notes      *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CustomerID == "" || body.ServiceID == "" || body.EmployeeID == "" || body.Date == "" || body.Time == "" {
		return badRequest(c, "customer_id, service_id, employee_id, date and time are required")
	}

	customerID, err := uuid.Parse(body.CustomerID)
	if err != nil {
		return badRequest(c, "invalid customer_id")
	}
	serviceID, err := uuid.Parse(body.ServiceID)
	if err != nil {
		return badRequest(c, "invalid service_id")
	}
	employeeID, err := uuid.Parse(body.EmployeeID)
	if err != nil {
		return badRequest(c, "invalid employee_id")
	}
	date, err := parseDate(body.Date)
	if err != nil {
		return badRequest(c, "invalid date, expected YYYY-MM-DD")
	}
	minutes, err := parseClock(body.Time)
	if err != nil {
		return badRequest(c, "invalid time, expected HH:MM")
	}

	appt, err := h.svc.Create(c.Context(), businessID, booking.CreateRequest{
		CustomerID: customerID,
		ServiceID:  serviceID,
		EmployeeID: employeeID,
		Date:       date,
		Minutes:    minutes,
		Notes:      body.Notes,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, fiber.Map{
		"id":                appt.ID,
		"confirmation_code": appt.ConfirmationCode,
		"start_time":        appt.StartTime,
		"end_time":          appt.EndTime,
		"total_price":       appt.TotalPrice,
		"status":            appt.Status,
	})
}

// GET /appointments/:id
func (h *AppointmentHandler) GetByID(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.GetByID(c.Context(), businessID, apptID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return ok(c, appt)
}

// PATCH /appointments/:id/complete
func (h *AppointmentHandler) Complete(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	result, err := h.svc.Complete(c.Context(), businessID, apptID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, fiber.Map{
		"id":             result.Appointment.ID,
		"status":         result.Appointment.Status,
		"points_awarded": result.PointsAwarded,
		"level_up":       result.LevelUp,
		"level":          result.Level,
	})
}

// PATCH /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c fiber.Ctx) error {
	businessID, valid := businessIDFromLocals(c)
	if !valid {
		return badRequest(c, "missing business context")
	}

	apptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid appointment id")
	}

	appt, err := h.svc.Cancel(c.Context(), businessID, apptID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, fiber.Map{"id": appt.ID, "status": appt.Status})
}
