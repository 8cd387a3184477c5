package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand attaches a courier to a delivery. Calling it again
// with another courier is a reassignment.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(deliveryID, courierID, "dispatcher")
//	if err != nil {
//	    return err
//	}
//	d, err := handler.Handle(ctx, cmd)
type AssignCourierCommand struct {
	deliveryID kernel.UUID
	courierID  kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

func NewAssignCourierCommand(deliveryID, courierID kernel.UUID, actor string) (AssignCourierCommand, error) {
	if err := errors.Join(
		requireID("delivery id", deliveryID),
		requireID("courier id", courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		deliveryID: deliveryID,
		courierID:  courierID,
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c AssignCourierCommand) CourierID() kernel.UUID  { return c.courierID }
func (c AssignCourierCommand) Actor() string           { return c.actor }
