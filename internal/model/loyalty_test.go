package model

import "testing"

func TestLevelTierContains(t *testing.T) {
	capped := int64(499)
	tier := LevelTier{Name: "Pro", MinPoints: 100, MaxPoints: &capped}
	open := LevelTier{Name: "VIP", MinPoints: 500}

	tests := []struct {
		name  string
		tier  *LevelTier
		total int64
		want  bool
	}{
		{"below the band", &tier, 99, false},
		{"lower bound", &tier, 100, true},
		{"inside the band", &tier, 300, true},
		{"upper bound inclusive", &tier, 499, true},
		{"above the band", &tier, 500, false},
		{"open tier at the bound", &open, 500, true},
		{"open tier far above", &open, 1_000_000, true},
		{"open tier below", &open, 499, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.Contains(tt.total); got != tt.want {
				t.Errorf("%s.Contains(%d) = %v, want %v", tt.tier.Name, tt.total, got, tt.want)
			}
		})
	}
}

func TestWalletApply(t *testing.T) {
	tests := []struct {
		name    string
		deltas  []int64
		current int64
		earned  int64
	}{
		{"earn then redeem", []int64{100, -40}, 60, 100},
		{"earn only", []int64{100}, 100, 100},
		{"redeem only", []int64{-25}, -25, 0},
		{"zero is a no-op", []int64{0}, 0, 0},
		{"interleaved", []int64{50, -20, 30, -10}, 50, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Wallet
			for _, d := range tt.deltas {
				w = w.Apply(d)
			}
			if w.CurrentPoints != tt.current {
				t.Errorf("CurrentPoints = %d, want %d", w.CurrentPoints, tt.current)
			}
			if w.TotalPointsEarned != tt.earned {
				t.Errorf("TotalPointsEarned = %d, want %d", w.TotalPointsEarned, tt.earned)
			}
		})
	}
}

func TestWalletApplyNeverShrinksEarned(t *testing.T) {
	w := Wallet{CurrentPoints: 500, TotalPointsEarned: 500}
	w = w.Apply(-500)
	if w.TotalPointsEarned != 500 {
		t.Errorf("TotalPointsEarned = %d after a redemption, want 500", w.TotalPointsEarned)
	}
	if w.CurrentPoints != 0 {
		t.Errorf("CurrentPoints = %d, want 0", w.CurrentPoints)
	}
}
