package model

import "testing"

func TestBusinessLocation(t *testing.T) {
	tests := []struct {
		name string
		tz   string
		want string
	}{
		{"empty falls back to UTC", "", "UTC"},
		{"unknown falls back to UTC", "Mars/Olympus_Mons", "UTC"},
		{"valid zone", "America/New_York", "America/New_York"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Business{Timezone: tt.tz}
			if got := b.Location().String(); got != tt.want {
				t.Errorf("Location() = %q, want %q", got, tt.want)
			}
		})
	}
}
