package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrAdvanceStatusCommandIsNotConstructed = errors.New(
		"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
	)
	ErrCancelDeliveryCommandIsNotConstructed = errors.New(
		"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
	)
	ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
		"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
	)
)

// AdvanceStatusCommand reports courier progress: PICKED_UP or IN_TRANSIT.
type AdvanceStatusCommand struct {
	deliveryID kernel.UUID
	action     delivery.Action
	note       string
	actor      string

	guard guard.ConstructorGuard
}

func NewAdvanceStatusCommand(deliveryID kernel.UUID, action, note, actor string) (AdvanceStatusCommand, error) {
	parsed, actionErr := delivery.ParseAction(action)
	if err := errors.Join(requireID("delivery id", deliveryID), actionErr); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return AdvanceStatusCommand{
		deliveryID: deliveryID,
		action:     parsed,
		note:       strings.TrimSpace(note),
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

func (c AdvanceStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c AdvanceStatusCommand) Action() delivery.Action { return c.action }
func (c AdvanceStatusCommand) Note() string            { return c.note }
func (c AdvanceStatusCommand) Actor() string           { return c.actor }

// CancelDeliveryCommand stops a delivery that is not finished yet. Actor is
// the role shown in the timeline note.
type CancelDeliveryCommand struct {
	deliveryID kernel.UUID
	actor      string

	guard guard.ConstructorGuard
}

func NewCancelDeliveryCommand(deliveryID kernel.UUID, actor string) (CancelDeliveryCommand, error) {
	if err := requireID("delivery id", deliveryID); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return CancelDeliveryCommand{
		deliveryID: deliveryID,
		actor:      strings.TrimSpace(actor),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

func (c CancelDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c CancelDeliveryCommand) Actor() string           { return c.actor }

// DeleteDeliveryCommand removes a delivery that was not delivered.
type DeleteDeliveryCommand struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteDeliveryCommand(deliveryID kernel.UUID) (DeleteDeliveryCommand, error) {
	if err := requireID("delivery id", deliveryID); err != nil {
		return DeleteDeliveryCommand{}, err
	}

	return DeleteDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

func (c DeleteDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }
