package commands

import (
	"context"

	"dispatch/internal/core/application/eventlog"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// AdvanceStatusCommandHandler moves an ASSIGNED delivery to IN_TRANSIT, or
// re-logs progress of one already in transit.
type AdvanceStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewAdvanceStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{uowFactory: uowFactory, publisher: publisher, clock: clock}
}

// Handle logs the action under its own label. The automatic IN_TRANSIT entry
// that follows PICKED_UP is written only once per delivery.
func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	inTransitLogged, err := eventlog.New(uow.EventRepository(), h.clock).HasInTransit(ctx, d.ID())
	if err != nil {
		return nil, err
	}

	tr, err := d.Advance(cmd.Action(), cmd.Note(), inTransitLogged, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = commitTransition(ctx, uow, h.clock, h.publisher, d, tr, cmd.Actor()); err != nil {
		return nil, err
	}

	return d, nil
}
