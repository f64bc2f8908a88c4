package availability

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

func TestSlotLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{9 * 60, "09:00"},
		{9*60 + 5, "09:05"},
		{23*60 + 45, "23:45"},
	}

	for _, tt := range tests {
		got := Slot{Minutes: tt.minutes}.Label()
		if got != tt.want {
			t.Errorf("Slot{Minutes: %d}.Label() = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestTimeGridMarshalOrdered(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	grid := TimeGrid{
		{Minutes: 9 * 60, EmployeeIDs: []uuid.UUID{a, b}},
		{Minutes: 9*60 + 15, EmployeeIDs: []uuid.UUID{a}},
		{Minutes: 14 * 60, EmployeeIDs: []uuid.UUID{b}},
	}

	raw, err := json.Marshal(grid)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"09:00":["11111111-1111-1111-1111-111111111111","22222222-2222-2222-2222-222222222222"],` +
		`"09:15":["11111111-1111-1111-1111-111111111111"],` +
		`"14:00":["22222222-2222-2222-2222-222222222222"]}`
	if string(raw) != want {
		t.Errorf("Marshal() = %s, want %s", raw, want)
	}

	// Round trip back into a generic map to confirm valid JSON.
	var decoded map[string][]uuid.UUID
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(decoded) != 3 {
		t.Errorf("decoded %d keys, want 3", len(decoded))
	}
}

func TestTimeGridMarshalEmpty(t *testing.T) {
	raw, err := json.Marshal(TimeGrid{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("Marshal() = %s, want {}", raw)
	}
}
