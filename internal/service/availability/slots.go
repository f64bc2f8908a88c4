package availability

import (
	"time"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

// StepMinutes is the candidate start-time granularity.
const StepMinutes = 15

// slotStarts generates candidate start minutes inside [startMin, endMin],
// stepping by stepMin, keeping only starts where the whole service still
// fits: start + duration <= endMin. A window shorter than one duration
// yields nothing.
func slotStarts(startMin, endMin, durationMin, stepMin int) []int {
	if durationMin <= 0 || stepMin <= 0 {
		return nil
	}
	var starts []int
	for m := startMin; m+durationMin <= endMin; m += stepMin {
		starts = append(starts, m)
	}
	return starts
}

// conflictsAny reports whether [start, end) overlaps any blocking
// appointment under the half-open rule. A slot abutting an appointment
// (slot end == appointment start) does not conflict.
func conflictsAny(appts []model.Appointment, start, end time.Time) bool {
	for i := range appts {
		if appts[i].Overlaps(start, end) {
			return true
		}
	}
	return false
}

// atMinute anchors a minutes-since-midnight wall-clock value onto a calendar
// date in loc. Wall-clock anchoring keeps the grid stable across DST shifts.
func atMinute(date time.Time, minutes int, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, loc)
}
