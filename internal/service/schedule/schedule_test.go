package schedule

import (
	"errors"
	"testing"
)

func TestValidateWeek(t *testing.T) {
	tests := []struct {
		name    string
		windows []WindowInput
		wantErr error
	}{
		{
			name:    "empty week is legal",
			windows: nil,
		},
		{
			name: "full week",
			windows: []WindowInput{
				{DayOfWeek: 0, StartMinutes: 9 * 60, EndMinutes: 17 * 60, IsAvailable: true},
				{DayOfWeek: 1, StartMinutes: 9 * 60, EndMinutes: 17 * 60, IsAvailable: true},
				{DayOfWeek: 2, StartMinutes: 9 * 60, EndMinutes: 17 * 60, IsAvailable: true},
				{DayOfWeek: 3, StartMinutes: 9 * 60, EndMinutes: 17 * 60, IsAvailable: true},
				{DayOfWeek: 4, StartMinutes: 9 * 60, EndMinutes: 17 * 60, IsAvailable: true},
				{DayOfWeek: 5, StartMinutes: 10 * 60, EndMinutes: 14 * 60, IsAvailable: true},
				{DayOfWeek: 6, StartMinutes: 0, EndMinutes: 24 * 60, IsAvailable: false},
			},
		},
		{
			name:    "day of week above range",
			windows: []WindowInput{{DayOfWeek: 7, StartMinutes: 540, EndMinutes: 1020}},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "negative day of week",
			windows: []WindowInput{{DayOfWeek: -1, StartMinutes: 540, EndMinutes: 1020}},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "start at or after end",
			windows: []WindowInput{{DayOfWeek: 2, StartMinutes: 600, EndMinutes: 600}},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "end past midnight",
			windows: []WindowInput{{DayOfWeek: 2, StartMinutes: 600, EndMinutes: 1441}},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "duplicate weekday",
			windows: []WindowInput{
				{DayOfWeek: 3, StartMinutes: 540, EndMinutes: 720},
				{DayOfWeek: 3, StartMinutes: 780, EndMinutes: 1020},
			},
			wantErr: ErrDuplicateDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWeek(tt.windows)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("validateWeek() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateWeek() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
