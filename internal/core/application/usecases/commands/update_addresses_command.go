package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateAddressesCommandIsNotConstructed = errors.New(
	"UpdateAddressesCommand must be created via NewUpdateAddressesCommand constructor",
)

// UpdateAddressesCommand edits one or both address texts. A nil field is
// left unchanged.
type UpdateAddressesCommand struct {
	deliveryID kernel.UUID
	pickup     *string
	dropoff    *string

	guard guard.ConstructorGuard
}

func NewUpdateAddressesCommand(deliveryID kernel.UUID, pickup, dropoff *string) (UpdateAddressesCommand, error) {
	if err := requireID("delivery id", deliveryID); err != nil {
		return UpdateAddressesCommand{}, err
	}
	if pickup == nil && dropoff == nil {
		return UpdateAddressesCommand{}, errs.NewValueIsRequiredError("address")
	}

	return UpdateAddressesCommand{
		deliveryID: deliveryID,
		pickup:     pickup,
		dropoff:    dropoff,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAddressesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAddressesCommandIsNotConstructed)
}

func (c UpdateAddressesCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c UpdateAddressesCommand) Pickup() *string         { return c.pickup }
func (c UpdateAddressesCommand) Dropoff() *string        { return c.dropoff }
