package delivery

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"dispatch/internal/pkg/errs"
)

var referencePattern = regexp.MustCompile(`^ORD-\d{4}\d{6}$`)

// ReferenceCode is the human-shareable identifier of a delivery, ORD-<year><6 digits>.
type ReferenceCode string

// GenerateReferenceCode returns a random code for the year of now. Uniqueness
// is enforced by storage; callers retry on collision.
func GenerateReferenceCode(now time.Time) ReferenceCode {
	return ReferenceCode(fmt.Sprintf("ORD-%04d%06d", now.Year(), rand.IntN(1_000_000))) //nolint:gosec // not a secret
}

func ParseReferenceCode(value string) (ReferenceCode, error) {
	if !referencePattern.MatchString(value) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"reference code",
			fmt.Errorf("%q does not match ORD-<year><6 digits>", value),
		)
	}
	return ReferenceCode(value), nil
}

func (r ReferenceCode) String() string {
	return string(r)
}

func (r ReferenceCode) Validate() error {
	_, err := ParseReferenceCode(string(r))
	return err
}
