package booking

import "testing"

func TestVisitPoints(t *testing.T) {
	tests := []struct {
		name          string
		serviceReward int64
		perVisit      int64
		want          int64
	}{
		{"service reward wins", 150, 50, 150},
		{"per-visit floor wins", 30, 80, 80},
		{"equal values", 60, 60, 60},
		{"both zero falls back to the default", 0, 0, defaultVisitPoints},
		{"service reward alone", 25, 0, 25},
		{"per-visit alone", 0, 40, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := visitPoints(tt.serviceReward, tt.perVisit)
			if got != tt.want {
				t.Errorf("visitPoints(%d, %d) = %d, want %d",
					tt.serviceReward, tt.perVisit, got, tt.want)
			}
		})
	}
}
