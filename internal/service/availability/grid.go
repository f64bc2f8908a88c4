package availability

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/trimsy-app/trimsy_backend/internal/model"
)

// Slot is one bookable start time and the employees free to take it.
type Slot struct {
	Minutes     int
	EmployeeIDs []uuid.UUID
}

func (s Slot) Label() string {
	return model.FormatMinutes(s.Minutes)
}

// TimeGrid is the availability result, ordered by ascending start time.
// It marshals as a JSON object keyed "HH:MM" with the keys emitted in slot
// order, which a plain map cannot guarantee.
type TimeGrid []Slot

func (g TimeGrid) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, slot := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(slot.Label())
		if err != nil {
			return nil, err
		}
		ids, err := json.Marshal(slot.EmployeeIDs)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(ids)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
