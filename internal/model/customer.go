package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	FullName   string    `json:"full_name"`
	Phone      *string   `json:"phone,omitempty"`
	Email      *string   `json:"email,omitempty"`

	// Aggregate visit stats, maintained by the completion workflow.
	TotalVisits   int64           `json:"total_visits"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastVisitDate *time.Time      `json:"last_visit_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
