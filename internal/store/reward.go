package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

const rewardColumns = `
	id, business_id, name, points_cost, stock, is_active, created_at, updated_at`

// ActiveRewards lists what customers can currently redeem.
func (s *Store) ActiveRewards(ctx context.Context, db Querier, businessID uuid.UUID) ([]model.Reward, error) {
	query := `
		SELECT` + rewardColumns + `
		FROM rewards
		WHERE business_id = $1 AND is_active
		ORDER BY points_cost, name
	`

	rows, err := db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list rewards: %w", err)
	}
	defer rows.Close()

	var rewards []model.Reward
	for rows.Next() {
		var r model.Reward
		err := rows.Scan(&r.ID, &r.BusinessID, &r.Name, &r.PointsCost, &r.Stock, &r.IsActive, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan reward: %w", err)
		}
		rewards = append(rewards, r)
	}
	return rewards, rows.Err()
}

// RewardForUpdate locks the reward row so concurrent redemptions of the same
// reward serialize on it. Returns nil when missing or inactive.
func (s *Store) RewardForUpdate(ctx context.Context, db Querier, businessID, rewardID uuid.UUID) (*model.Reward, error) {
	query := `
		SELECT` + rewardColumns + `
		FROM rewards
		WHERE id = $1 AND business_id = $2 AND is_active
		FOR UPDATE
	`

	var r model.Reward
	err := db.QueryRow(ctx, query, rewardID, businessID).Scan(
		&r.ID, &r.BusinessID, &r.Name, &r.PointsCost, &r.Stock, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reward for update: %w", err)
	}
	return &r, nil
}

// DecrementRewardStock takes one unit, guarded by stock > 0 in the predicate
// so an exhausted reward can never go negative. Returns false when no unit
// was available.
func (s *Store) DecrementRewardStock(ctx context.Context, db Querier, rewardID uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `
		UPDATE rewards
		SET stock = stock - 1, updated_at = now()
		WHERE id = $1 AND stock IS NOT NULL AND stock > 0
	`, rewardID)
	if err != nil {
		return false, fmt.Errorf("decrement reward stock: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) InsertRedemption(ctx context.Context, db Querier, r *model.RewardRedemption) error {
	query := `
		INSERT INTO reward_redemptions
			(id, business_id, customer_id, reward_id, points_cost, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := db.QueryRow(ctx, query,
		r.ID,
		r.BusinessID,
		r.CustomerID,
		r.RewardID,
		r.PointsCost,
		r.Status,
	).Scan(&r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert redemption: %w", err)
	}
	return nil
}
