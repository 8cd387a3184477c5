// Package eventlog maintains the append-only timeline of a delivery.
//
// Every timeline starts with a PENDING entry. Deliveries stored before the
// timeline existed get one backfilled the first time they are read or changed.
package eventlog

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// SystemActor is recorded on entries written without a user, such as backfills.
const SystemActor = "system"

// Log appends to and reads from one EventRepository. Build it per unit of
// work so writes share the surrounding transaction.
type Log struct {
	repo  ports.EventRepository
	clock ports.Clock
}

func New(repo ports.EventRepository, clock ports.Clock) *Log {
	return &Log{repo: repo, clock: clock}
}

// EnsurePending inserts the PENDING entry when the delivery has none. The
// backfill is dated now, or just before the oldest entry when older entries
// exist, so the timeline still opens with it.
func (l *Log) EnsurePending(ctx context.Context, deliveryID kernel.UUID) error {
	has, err := l.repo.HasLabel(ctx, deliveryID, delivery.LabelPending)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	at := l.clock.Now()
	earliest, err := l.repo.Earliest(ctx, deliveryID)
	if err != nil {
		return err
	}
	if earliest != nil && !earliest.After(at) {
		at = earliest.Add(-time.Microsecond)
	}

	event, err := delivery.NewEvent(deliveryID, delivery.LabelPending, delivery.PendingNote, SystemActor, at)
	if err != nil {
		return err
	}
	return l.repo.Append(ctx, event)
}

// Record writes the entries of an accepted transition after making sure the
// timeline opens with PENDING.
func (l *Log) Record(
	ctx context.Context,
	deliveryID kernel.UUID,
	transition delivery.Transition,
	actor string,
) ([]delivery.Event, error) {
	if err := l.EnsurePending(ctx, deliveryID); err != nil {
		return nil, err
	}

	at := l.clock.Now()
	events := make([]delivery.Event, 0, len(transition.Entries))
	for _, entry := range transition.Entries {
		event, err := delivery.NewEvent(deliveryID, entry.Label, entry.Note, actor, at)
		if err != nil {
			return nil, err
		}
		if err = l.repo.Append(ctx, event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// HasInTransit reports whether an IN_TRANSIT entry was already written.
func (l *Log) HasInTransit(ctx context.Context, deliveryID kernel.UUID) (bool, error) {
	return l.repo.HasLabel(ctx, deliveryID, delivery.LabelInTransit)
}

// Timeline returns the entries in time order, backfilling PENDING first.
func (l *Log) Timeline(ctx context.Context, deliveryID kernel.UUID) ([]delivery.Event, error) {
	if err := l.EnsurePending(ctx, deliveryID); err != nil {
		return nil, err
	}
	return l.repo.List(ctx, deliveryID)
}
