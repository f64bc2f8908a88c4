package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

func (s *Store) Wallet(ctx context.Context, db Querier, businessID, customerID uuid.UUID) (*model.Wallet, error) {
	query := `
		SELECT business_id, customer_id, current_points, total_points_earned,
		       current_level, created_at, updated_at
		FROM customer_points
		WHERE business_id = $1 AND customer_id = $2
	`

	var w model.Wallet
	err := db.QueryRow(ctx, query, businessID, customerID).Scan(
		&w.BusinessID,
		&w.CustomerID,
		&w.CurrentPoints,
		&w.TotalPointsEarned,
		&w.CurrentLevel,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return &w, nil
}

// WalletForUpdate locks the wallet row for the rest of the transaction.
// Returns nil when the customer has no wallet yet.
func (s *Store) WalletForUpdate(ctx context.Context, db Querier, businessID, customerID uuid.UUID) (*model.Wallet, error) {
	query := `
		SELECT business_id, customer_id, current_points, total_points_earned,
		       current_level, created_at, updated_at
		FROM customer_points
		WHERE business_id = $1 AND customer_id = $2
		FOR UPDATE
	`

	var w model.Wallet
	err := db.QueryRow(ctx, query, businessID, customerID).Scan(
		&w.BusinessID,
		&w.CustomerID,
		&w.CurrentPoints,
		&w.TotalPointsEarned,
		&w.CurrentLevel,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet for update: %w", err)
	}
	return &w, nil
}

// ApplyWalletDelta creates the wallet on first touch and moves the balance
// in one atomic statement: the increments are evaluated by the store, never
// computed from a stale application-side read. total_points_earned only
// grows, negative deltas leave it unchanged.
func (s *Store) ApplyWalletDelta(ctx context.Context, db Querier, businessID, customerID uuid.UUID, delta int64, defaultLevel string) (*model.Wallet, error) {
	query := `
		INSERT INTO customer_points
			(business_id, customer_id, current_points, total_points_earned, current_level)
		VALUES ($1, $2, $3, GREATEST($3, 0), $4)
		ON CONFLICT (business_id, customer_id) DO UPDATE
		SET current_points = customer_points.current_points + $3,
		    total_points_earned = customer_points.total_points_earned + GREATEST($3, 0),
		    updated_at = now()
		RETURNING business_id, customer_id, current_points, total_points_earned,
		          current_level, created_at, updated_at
	`

	var w model.Wallet
	err := db.QueryRow(ctx, query, businessID, customerID, delta, defaultLevel).Scan(
		&w.BusinessID,
		&w.CustomerID,
		&w.CurrentPoints,
		&w.TotalPointsEarned,
		&w.CurrentLevel,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("apply wallet delta: %w", err)
	}
	return &w, nil
}

func (s *Store) SetWalletLevel(ctx context.Context, db Querier, businessID, customerID uuid.UUID, level string) error {
	_, err := db.Exec(ctx, `
		UPDATE customer_points
		SET current_level = $3, updated_at = now()
		WHERE business_id = $1 AND customer_id = $2
	`, businessID, customerID, level)
	if err != nil {
		return fmt.Errorf("set wallet level: %w", err)
	}
	return nil
}

func (s *Store) InsertPointsTransaction(ctx context.Context, db Querier, t *model.PointsTransaction) error {
	query := `
		INSERT INTO points_transactions
			(id, business_id, customer_id, amount, type, description, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := db.QueryRow(ctx, query,
		t.ID,
		t.BusinessID,
		t.CustomerID,
		t.Amount,
		t.Type,
		t.Description,
		t.ReferenceID,
	).Scan(&t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert points transaction: %w", err)
	}
	return nil
}

// PointsHistory returns the newest ledger entries first.
func (s *Store) PointsHistory(ctx context.Context, db Querier, businessID, customerID uuid.UUID, limit int) ([]model.PointsTransaction, error) {
	query := `
		SELECT id, business_id, customer_id, amount, type, description, reference_id, created_at
		FROM points_transactions
		WHERE business_id = $1 AND customer_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`

	rows, err := db.Query(ctx, query, businessID, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list points history: %w", err)
	}
	defer rows.Close()

	var history []model.PointsTransaction
	for rows.Next() {
		var t model.PointsTransaction
		err := rows.Scan(&t.ID, &t.BusinessID, &t.CustomerID, &t.Amount, &t.Type, &t.Description, &t.ReferenceID, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan points transaction: %w", err)
		}
		history = append(history, t)
	}
	return history, rows.Err()
}
