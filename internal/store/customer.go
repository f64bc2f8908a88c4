package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

func (s *Store) CustomerByID(ctx context.Context, db Querier, businessID, customerID uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, business_id, full_name, phone, email,
		       total_visits, total_spent, last_visit_date, created_at, updated_at
		FROM customers
		WHERE id = $1 AND business_id = $2
	`

	var c model.Customer
	err := db.QueryRow(ctx, query, customerID, businessID).Scan(
		&c.ID,
		&c.BusinessID,
		&c.FullName,
		&c.Phone,
		&c.Email,
		&c.TotalVisits,
		&c.TotalSpent,
		&c.LastVisitDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// ApplyVisitStats bumps the customer's aggregates after a completed visit.
// The increments run store-side so concurrent completions cannot lose one.
func (s *Store) ApplyVisitStats(ctx context.Context, db Querier, businessID, customerID uuid.UUID, spent decimal.Decimal, visitDate time.Time) error {
	query := `
		UPDATE customers
		SET total_visits = total_visits + 1,
		    total_spent = total_spent + $3,
		    last_visit_date = $4,
		    updated_at = now()
		WHERE id = $1 AND business_id = $2
	`

	tag, err := db.Exec(ctx, query, customerID, businessID, spent, visitDate)
	if err != nil {
		return fmt.Errorf("apply visit stats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("apply visit stats: customer %s not found", customerID)
	}
	return nil
}
