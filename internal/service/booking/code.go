package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/trimsy-app/trimsy_backend/internal/store"
)

// confirmationCodeConstraint is the unique index guarding codes.
const confirmationCodeConstraint = "appointments_confirmation_code_key"

// Ambiguous characters (0/O, 1/I/L) are excluded so codes survive being read
// over the phone.
const codeCharset = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const codeLength = 8

// newConfirmationCode returns a short human-shareable code like "K7PMQ2XH".
// Uniqueness is enforced by the appointments table; the insert retries on a
// collision.
func newConfirmationCode() (string, error) {
	out := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate confirmation code: %w", err)
		}
		out[i] = codeCharset[n.Int64()]
	}
	return string(out), nil
}

// withFreshCode draws codes until insert succeeds, retrying only when the
// confirmation-code unique index rejected the attempt, at most attempts
// times. insert must leave the surrounding transaction usable after a
// failure (run the statement under a savepoint).
func withFreshCode(attempts int, insert func(code string) error) error {
	for attempt := 0; ; attempt++ {
		code, err := newConfirmationCode()
		if err != nil {
			return err
		}
		err = insert(code)
		if err == nil {
			return nil
		}
		if store.IsUniqueViolation(err, confirmationCodeConstraint) && attempt < attempts-1 {
			continue
		}
		return err
	}
}
