package model

import (
	"time"

	"github.com/google/uuid"
)

// Reward can be bought with wallet points. Stock nil means unlimited.
type Reward struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
	PointsCost int64     `json:"points_cost"`
	Stock      *int64    `json:"stock,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// InStock reports whether at least one unit can still be redeemed.
func (r *Reward) InStock() bool {
	return r.Stock == nil || *r.Stock > 0
}

type RedemptionStatus string

const (
	RedemptionRedeemed RedemptionStatus = "redeemed"
)

// RewardRedemption is the append-only audit record of one redemption.
type RewardRedemption struct {
	ID         uuid.UUID        `json:"id"`
	BusinessID uuid.UUID        `json:"business_id"`
	CustomerID uuid.UUID        `json:"customer_id"`
	RewardID   uuid.UUID        `json:"reward_id"`
	PointsCost int64            `json:"points_cost"`
	Status     RedemptionStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
}
