package model

import (
	"time"

	"github.com/google/uuid"
)

// Business is a tenant. Every other record in the system is scoped by its id.
type Business struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Timezone       string    `json:"timezone"`
	IsActive       bool      `json:"is_active"`
	LoyaltyEnabled bool      `json:"loyalty_enabled"`
	// PointsPerVisit is the business-wide floor for points granted per
	// completed visit; a service's own reward takes precedence when higher.
	PointsPerVisit int64     `json:"points_per_visit"`
	DefaultLevel   string    `json:"default_level"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Location resolves the business timezone, falling back to UTC when the
// stored name is empty or unknown. Slot times are wall-clock times in this
// location.
func (b *Business) Location() *time.Location {
	if b.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
