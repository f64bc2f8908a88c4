package loyalty

import "github.com/trimsy-app/trimsy_backend/internal/model"

// levelFor picks the tier whose band contains the cumulative earned total.
// Tiers come ordered by min_points; the last match wins so an open-ended top
// tier shadows lower ones. No match falls back to the business default.
func levelFor(tiers []model.LevelTier, totalEarned int64, fallback string) string {
	name := fallback
	for i := range tiers {
		if tiers[i].Contains(totalEarned) {
			name = tiers[i].Name
		}
	}
	return name
}
