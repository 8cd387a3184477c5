package kernel

import (
	"fmt"

	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID or
// when a parsed identifier is the nil UUID. Deliveries and couriers never
// carry the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies deliveries and couriers. It wraps github.com/google/uuid
// so that the domain never handles an unchecked identifier.
//
// The zero value is invalid. Build a UUID with NewUUID for new aggregates,
// UUIDFromString for identifiers arriving over HTTP and UUIDFromBytes for
// rows read back from postgres.
//
// UUID is immutable and safe for concurrent use.
//
// Example:
//
//	deliveryID := kernel.NewUUID()
//	courierID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
// The result is always valid.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Println(id) // e.g. "7c9e6679-7425-40de-944b-e07fc1f90ae7"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses an identifier from text. The accepted forms are the
// ones github.com/google/uuid accepts:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "6ba7b8109dad11d180b400c04fd430c8"
//
// Parameters:
//   - s: the textual identifier
//
// Returns:
//   - UUID: the parsed identifier
//   - error: a ValueIsInvalid error for malformed input, or
//     ErrUUIDIsNotConstructed for the nil UUID
//
// Example:
//
//	id, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return err
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes restores an identifier from its 16-byte form, as stored in
// postgres uuid columns.
//
// Parameters:
//   - b: exactly 16 bytes
//
// Returns:
//   - UUID: the restored identifier
//   - error: a ValueIsInvalid error when b is not 16 bytes long, or
//     ErrUUIDIsNotConstructed when all bytes are zero
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", fmt.Errorf("invalid UUID format: %w", err))
	}
	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// String returns the canonical lowercase hyphenated form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying google UUID for persistence adapters.
// gorm writes it to uuid columns directly.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers hold the same value. Two zero
// values compare equal.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports whether the identifier was constructed.
//
// Returns:
//   - error: ErrUUIDIsNotConstructed for the zero value, nil otherwise
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
