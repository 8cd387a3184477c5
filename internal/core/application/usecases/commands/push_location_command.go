package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrPushLocationCommandIsNotConstructed = errors.New(
	"PushLocationCommand must be created via NewPushLocationCommand constructor",
)

// PushLocationCommand carries one GPS sample from a courier device.
// A zero RecordedAt is replaced by the handler's clock.
type PushLocationCommand struct {
	courierID  kernel.UUID
	point      kernel.Location
	reading    courier.Reading
	recordedAt time.Time

	guard guard.ConstructorGuard
}

func NewPushLocationCommand(
	courierID kernel.UUID,
	lat, lng float64,
	reading courier.Reading,
	recordedAt time.Time,
) (PushLocationCommand, error) {
	point, pointErr := kernel.NewLocation(lat, lng)
	if err := errors.Join(requireID("courier id", courierID), pointErr); err != nil {
		return PushLocationCommand{}, err
	}

	return PushLocationCommand{
		courierID:  courierID,
		point:      point,
		reading:    reading,
		recordedAt: recordedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c PushLocationCommand) Validate() error {
	return c.guard.Validate(ErrPushLocationCommandIsNotConstructed)
}

func (c PushLocationCommand) CourierID() kernel.UUID   { return c.courierID }
func (c PushLocationCommand) Point() kernel.Location   { return c.point }
func (c PushLocationCommand) Reading() courier.Reading { return c.reading }
func (c PushLocationCommand) RecordedAt() time.Time    { return c.recordedAt }
