package model

import "testing"

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{545, "09:05"},
		{720, "12:00"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:05", 545, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:30", 0, true},
		{"09:30xyz", 0, true},
		{"09:30 ", 0, true},
		{"9:5", 0, true},
		{"garbage", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:15", "13:45", "23:59"} {
		m, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q) error = %v", s, err)
		}
		if got := FormatMinutes(m); got != s {
			t.Errorf("FormatMinutes(ParseClock(%q)) = %q", s, got)
		}
	}
}
