package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/ports"
)

// LocationObserver is told about every accepted sample.
type LocationObserver interface {
	LocationPushed()
}

// PushLocationCommandHandler upserts the single current sample of a courier.
type PushLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
	observer   LocationObserver
}

func NewPushLocationCommandHandler(
	uowFactory CourierUoWFactory,
	clock ports.Clock,
	observer LocationObserver,
) PushLocationCommandHandler {
	return PushLocationCommandHandler{uowFactory: uowFactory, clock: clock, observer: observer}
}

func (h PushLocationCommandHandler) Handle(ctx context.Context, cmd PushLocationCommand) (courier.Location, error) {
	if err := cmd.Validate(); err != nil {
		return courier.Location{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return courier.Location{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return courier.Location{}, err
	}

	recordedAt := cmd.RecordedAt()
	if recordedAt.IsZero() {
		recordedAt = h.clock.Now()
	}

	sample, err := courier.NewLocation(cmd.CourierID(), cmd.Point(), cmd.Reading(), recordedAt)
	if err != nil {
		return courier.Location{}, err
	}

	if err = uow.DriverLocationRepository().Push(ctx, sample); err != nil {
		return courier.Location{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return courier.Location{}, err
	}

	if h.observer != nil {
		h.observer.LocationPushed()
	}
	return sample, nil
}
