package commands

import (
	"context"

	"dispatch/internal/core/application/eventlog"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

type transitionUoW interface {
	TxManager
	DeliveryRepoFactory
	EventRepoFactory
}

// commitTransition stores the new state of d, appends the transition entries
// to the timeline, commits and then announces the change.
func commitTransition(
	ctx context.Context,
	uow transitionUoW,
	clock ports.Clock,
	publisher ports.EventPublisher,
	d *delivery.Delivery,
	tr delivery.Transition,
	actor string,
) error {
	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
		return err
	}

	events, err := eventlog.New(uow.EventRepository(), clock).Record(ctx, d.ID(), tr, actor)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	at := clock.Now()
	if len(events) > 0 {
		at = events[0].OccurredAt()
	}
	publisher.Publish(ctx, d.StatusChanges(tr, actor, at)...)
	return nil
}
