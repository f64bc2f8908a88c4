package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppointmentStatus string

const (
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Blocking reports whether an appointment in this status still occupies its
// employee's time. Cancelled and no-show appointments free the interval.
func (s AppointmentStatus) Blocking() bool {
	return s != AppointmentCancelled && s != AppointmentNoShow
}

// Terminal statuses admit no further transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCompleted || s == AppointmentCancelled || s == AppointmentNoShow
}

type Appointment struct {
	ID               uuid.UUID         `json:"id"`
	BusinessID       uuid.UUID         `json:"business_id"`
	CustomerID       uuid.UUID         `json:"customer_id"`
	EmployeeID       uuid.UUID         `json:"employee_id"`
	ServiceID        uuid.UUID         `json:"service_id"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          time.Time         `json:"end_time"`
	TotalPrice       decimal.Decimal   `json:"total_price"`
	Status           AppointmentStatus `json:"status"`
	ConfirmationCode string            `json:"confirmation_code"`
	Notes            *string           `json:"notes,omitempty"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	CancelledAt      *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Overlaps applies the half-open interval rule: [a.Start, a.End) and
// [start, end) overlap iff a.Start < end && a.End > start. An appointment
// ending exactly when another starts does not conflict.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}
