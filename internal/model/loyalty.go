package model

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the derived point balance for one customer at one business,
// created lazily on the first award. Invariant: CurrentPoints equals the sum
// of all transaction amounts for the pair, and TotalPointsEarned only ever
// grows (negative amounts never reduce it).
type Wallet struct {
	BusinessID        uuid.UUID `json:"business_id"`
	CustomerID        uuid.UUID `json:"customer_id"`
	CurrentPoints     int64     `json:"current_points"`
	TotalPointsEarned int64     `json:"total_points_earned"`
	CurrentLevel      string    `json:"current_level"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Apply returns the wallet after a signed ledger delta: the balance moves by
// amount while TotalPointsEarned absorbs only the positive part, mirroring
// the store's atomic upsert expression.
func (w Wallet) Apply(amount int64) Wallet {
	w.CurrentPoints += amount
	if amount > 0 {
		w.TotalPointsEarned += amount
	}
	return w
}

type TransactionType string

const (
	TransactionEarnVisit    TransactionType = "earn_visit"
	TransactionEarnBonus    TransactionType = "earn_bonus"
	TransactionRedeemReward TransactionType = "redeem_reward"
)

// PointsTransaction is one append-only ledger entry. Rows are never updated
// or deleted.
type PointsTransaction struct {
	ID          uuid.UUID       `json:"id"`
	BusinessID  uuid.UUID       `json:"business_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Amount      int64           `json:"amount"` // signed: positive earns, negative redeems
	Type        TransactionType `json:"type"`
	Description string          `json:"description"`
	ReferenceID *uuid.UUID      `json:"reference_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LevelTier is a named band of cumulative earned points. MaxPoints nil means
// the band is unbounded above.
type LevelTier struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Name       string    `json:"name"`
	MinPoints  int64     `json:"min_points"`
	MaxPoints  *int64    `json:"max_points,omitempty"`
}

// Contains reports whether a cumulative earned total falls inside this tier.
func (t *LevelTier) Contains(totalEarned int64) bool {
	if totalEarned < t.MinPoints {
		return false
	}
	return t.MaxPoints == nil || totalEarned <= *t.MaxPoints
}
