package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

func (s *Store) BusinessByID(ctx context.Context, db Querier, id uuid.UUID) (*model.Business, error) {
	query := `
		SELECT id, name, slug, timezone, is_active, loyalty_enabled,
		       points_per_visit, default_level, created_at, updated_at
		FROM businesses
		WHERE id = $1
	`

	var b model.Business
	err := db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Slug,
		&b.Timezone,
		&b.IsActive,
		&b.LoyaltyEnabled,
		&b.PointsPerVisit,
		&b.DefaultLevel,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business: %w", err)
	}
	return &b, nil
}

// ActiveBusinessExists backs the tenant middleware: it only needs to know
// whether the header refers to a live tenant.
func (s *Store) ActiveBusinessExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM businesses WHERE id = $1 AND is_active)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check business: %w", err)
	}
	return exists, nil
}

// LevelTiers returns the business's tier ladder ordered by min_points.
func (s *Store) LevelTiers(ctx context.Context, db Querier, businessID uuid.UUID) ([]model.LevelTier, error) {
	query := `
		SELECT id, business_id, name, min_points, max_points
		FROM level_tiers
		WHERE business_id = $1
		ORDER BY min_points ASC
	`

	rows, err := db.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list level tiers: %w", err)
	}
	defer rows.Close()

	var tiers []model.LevelTier
	for rows.Next() {
		var t model.LevelTier
		if err := rows.Scan(&t.ID, &t.BusinessID, &t.Name, &t.MinPoints, &t.MaxPoints); err != nil {
			return nil, fmt.Errorf("scan level tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}
