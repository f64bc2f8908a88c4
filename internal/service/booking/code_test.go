package booking

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestNewConfirmationCode(t *testing.T) {
	code, err := newConfirmationCode()
	if err != nil {
		t.Fatalf("newConfirmationCode() error = %v", err)
	}

	if len(code) != codeLength {
		t.Errorf("code length = %d, want %d", len(code), codeLength)
	}
	for _, r := range code {
		if !strings.ContainsRune(codeCharset, r) {
			t.Errorf("code %q contains %q outside the charset", code, r)
		}
	}
}

func TestNewConfirmationCodeNoAmbiguousChars(t *testing.T) {
	for _, r := range "01OIL" {
		if strings.ContainsRune(codeCharset, r) {
			t.Errorf("charset contains ambiguous character %q", r)
		}
	}
}

func TestNewConfirmationCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := newConfirmationCode()
		if err != nil {
			t.Fatalf("newConfirmationCode() error = %v", err)
		}
		seen[code] = true
	}
	// 31^8 possibilities: 50 draws colliding would mean a broken generator.
	if len(seen) < 50 {
		t.Errorf("generated %d distinct codes out of 50", len(seen))
	}
}

func TestWithFreshCodeRetriesOnCollision(t *testing.T) {
	collision := &pgconn.PgError{Code: "23505", ConstraintName: confirmationCodeConstraint}

	var codes []string
	err := withFreshCode(3, func(code string) error {
		codes = append(codes, code)
		if len(codes) < 3 {
			return collision
		}
		return nil
	})
	if err != nil {
		t.Fatalf("withFreshCode() error = %v", err)
	}
	if len(codes) != 3 {
		t.Fatalf("insert called %d times, want 3", len(codes))
	}
	if codes[0] == codes[1] || codes[1] == codes[2] {
		t.Errorf("retries reused a code: %v", codes)
	}
}

func TestWithFreshCodeGivesUpAfterAttempts(t *testing.T) {
	collision := &pgconn.PgError{Code: "23505", ConstraintName: confirmationCodeConstraint}

	calls := 0
	err := withFreshCode(3, func(string) error {
		calls++
		return collision
	})
	if !errors.Is(err, collision) {
		t.Fatalf("withFreshCode() error = %v, want the collision error", err)
	}
	if calls != 3 {
		t.Errorf("insert called %d times, want 3", calls)
	}
}

func TestWithFreshCodeDoesNotRetryOtherErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"plain error", errors.New("connection reset")},
		{"other unique index", &pgconn.PgError{Code: "23505", ConstraintName: "appointments_pkey"}},
		{"aborted transaction", &pgconn.PgError{Code: "25P02"}},
	}

	for _, tt := range tests {
		calls := 0
		err := withFreshCode(3, func(string) error {
			calls++
			return tt.err
		})
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.err)
		}
		if calls != 1 {
			t.Errorf("%s: insert called %d times, want 1", tt.name, calls)
		}
	}
}
