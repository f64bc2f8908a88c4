package loyalty

import (
	"testing"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

func int64p(v int64) *int64 { return &v }

func TestLevelFor(t *testing.T) {
	tiers := []model.LevelTier{
		{Name: "Novice", MinPoints: 0, MaxPoints: int64p(99)},
		{Name: "Pro", MinPoints: 100, MaxPoints: int64p(499)},
		{Name: "VIP", MinPoints: 500},
	}

	tests := []struct {
		name        string
		totalEarned int64
		want        string
	}{
		{"zero lands in the first tier", 0, "Novice"},
		{"inside the first band", 99, "Novice"},
		{"first point of the second band", 100, "Pro"},
		{"inside the second band", 250, "Pro"},
		{"last point of the second band", 499, "Pro"},
		{"open-ended top tier", 500, "VIP"},
		{"far beyond the top tier", 100000, "VIP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := levelFor(tiers, tt.totalEarned, "Member")
			if got != tt.want {
				t.Errorf("levelFor(%d) = %q, want %q", tt.totalEarned, got, tt.want)
			}
		})
	}
}

func TestLevelForFallback(t *testing.T) {
	// A business with no tiers, or with tiers that start above zero,
	// leaves customers on the default level.
	if got := levelFor(nil, 300, "Member"); got != "Member" {
		t.Errorf("levelFor(no tiers) = %q, want Member", got)
	}

	tiers := []model.LevelTier{{Name: "Gold", MinPoints: 1000}}
	if got := levelFor(tiers, 300, "Member"); got != "Member" {
		t.Errorf("levelFor(below all tiers) = %q, want Member", got)
	}
}

func TestLevelForOverlappingTiersLastWins(t *testing.T) {
	// Misconfigured overlapping bands resolve to the later (higher) tier.
	tiers := []model.LevelTier{
		{Name: "Bronze", MinPoints: 0},
		{Name: "Silver", MinPoints: 100},
	}
	if got := levelFor(tiers, 150, "Member"); got != "Silver" {
		t.Errorf("levelFor(overlap) = %q, want Silver", got)
	}
}
