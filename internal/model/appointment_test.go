package model

import (
	"testing"
	"time"
)

func at(h, m int) time.Time {
	return time.Date(2026, time.March, 9, h, m, 0, 0, time.UTC)
}

func TestAppointmentOverlaps(t *testing.T) {
	a := Appointment{StartTime: at(9, 0), EndTime: at(9, 30)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"same interval", at(9, 0), at(9, 30), true},
		{"starts during", at(9, 15), at(9, 45), true},
		{"ends during", at(8, 45), at(9, 15), true},
		{"surrounds", at(8, 0), at(10, 0), true},
		{"abuts after", at(9, 30), at(10, 0), false},
		{"abuts before", at(8, 30), at(9, 0), false},
		{"disjoint", at(11, 0), at(11, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestAppointmentStatusBlocking(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentConfirmed, true},
		{AppointmentCompleted, true},
		{AppointmentCancelled, false},
		{AppointmentNoShow, false},
	}

	for _, tt := range tests {
		if got := tt.status.Blocking(); got != tt.want {
			t.Errorf("%s.Blocking() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAppointmentStatusTerminal(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{AppointmentConfirmed, false},
		{AppointmentCompleted, true},
		{AppointmentCancelled, true},
		{AppointmentNoShow, true},
	}

	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
