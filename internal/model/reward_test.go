package model

import "testing"

func TestRewardInStock(t *testing.T) {
	zero, one := int64(0), int64(1)

	tests := []struct {
		name  string
		stock *int64
		want  bool
	}{
		{"unlimited", nil, true},
		{"one left", &one, true},
		{"sold out", &zero, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Reward{Stock: tt.stock}
			if got := r.InStock(); got != tt.want {
				t.Errorf("InStock() = %v, want %v", got, tt.want)
			}
		})
	}
}
