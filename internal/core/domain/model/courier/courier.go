package courier

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is the driver profile referenced by assignments and location pushes.
// Accounts and roles live outside this service; only the identity and the
// display name shown on the tracking view are kept here.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Sam Carter")
//	if err != nil {
//	    return err
//	}
type Courier struct {
	id    kernel.UUID
	name  string
	guard guard.ConstructorGuard
}

// NewCourier validates the identity and a non-blank name.
func NewCourier(id kernel.UUID, name string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier read from storage.
func RestoreCourier(id kernel.UUID, name string) (*Courier, error) {
	return NewCourier(id, name)
}

func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

// Rename replaces the display name.
func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
