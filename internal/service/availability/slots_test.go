package availability

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

func TestSlotStarts(t *testing.T) {
	tests := []struct {
		name        string
		startMin    int
		endMin      int
		durationMin int
		stepMin     int
		want        []int
	}{
		{
			name:     "hour window with 30 minute service",
			startMin: 9 * 60, endMin: 10 * 60, durationMin: 30, stepMin: 15,
			want: []int{540, 555, 570},
		},
		{
			name:     "service exactly fills the window",
			startMin: 9 * 60, endMin: 9*60 + 30, durationMin: 30, stepMin: 15,
			want: []int{540},
		},
		{
			name:     "window shorter than the service",
			startMin: 9 * 60, endMin: 9*60 + 20, durationMin: 30, stepMin: 15,
			want: nil,
		},
		{
			name:     "long service strides the grid",
			startMin: 10 * 60, endMin: 12 * 60, durationMin: 90, stepMin: 15,
			want: []int{600, 615, 630},
		},
		{
			name:     "zero duration yields nothing",
			startMin: 9 * 60, endMin: 17 * 60, durationMin: 0, stepMin: 15,
			want: nil,
		},
		{
			name:     "zero step yields nothing",
			startMin: 9 * 60, endMin: 17 * 60, durationMin: 30, stepMin: 0,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slotStarts(tt.startMin, tt.endMin, tt.durationMin, tt.stepMin)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("slotStarts(%d, %d, %d, %d) = %v, want %v",
					tt.startMin, tt.endMin, tt.durationMin, tt.stepMin, got, tt.want)
			}
		})
	}
}

func TestConflictsAny(t *testing.T) {
	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	appt := model.Appointment{
		ID:        uuid.New(),
		Status:    model.AppointmentConfirmed,
		StartTime: atMinute(date, 9*60, time.UTC),
		EndTime:   atMinute(date, 9*60+30, time.UTC),
	}

	tests := []struct {
		name  string
		start int
		end   int
		want  bool
	}{
		{"identical range", 540, 570, true},
		{"starts inside", 555, 585, true},
		{"ends inside", 525, 555, true},
		{"contains the appointment", 525, 585, true},
		{"abuts the end", 570, 600, false},
		{"abuts the start", 510, 540, false},
		{"clear of it", 600, 630, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := conflictsAny([]model.Appointment{appt}, atMinute(date, tt.start, time.UTC), atMinute(date, tt.end, time.UTC))
			if got != tt.want {
				t.Errorf("conflictsAny(%d-%d) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

// The scenario from the booking page: a 09:00-10:00 window, a 30 minute
// service, and one 09:00-09:30 appointment leaves exactly the 09:30 slot.
func TestSlotStartsAroundBookedSlot(t *testing.T) {
	date := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	booked := []model.Appointment{{
		Status:    model.AppointmentConfirmed,
		StartTime: atMinute(date, 9*60, time.UTC),
		EndTime:   atMinute(date, 9*60+30, time.UTC),
	}}

	var open []int
	for _, m := range slotStarts(9*60, 10*60, 30, StepMinutes) {
		start := atMinute(date, m, time.UTC)
		if conflictsAny(booked, start, start.Add(30*time.Minute)) {
			continue
		}
		open = append(open, m)
	}

	want := []int{9*60 + 30}
	if !reflect.DeepEqual(open, want) {
		t.Errorf("open slots = %v, want %v", open, want)
	}
}

func TestAtMinute(t *testing.T) {
	date := time.Date(2026, time.March, 9, 14, 22, 51, 0, time.UTC)

	got := atMinute(date, 9*60+45, time.UTC)
	want := time.Date(2026, time.March, 9, 9, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("atMinute() = %v, want %v", got, want)
	}
}

func TestAtMinuteBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}

	// The request date arrives parsed as UTC; the grid must still follow the
	// business's wall clock.
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	got := atMinute(date, 9*60, loc)
	want := time.Date(2026, time.September, 1, 9, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("atMinute() = %v, want %v", got, want)
	}
	if got.UTC().Hour() != 13 {
		t.Errorf("09:00 New York = %v UTC, want 13:00 UTC", got.UTC())
	}
}
