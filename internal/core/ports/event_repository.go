package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// EventRepository is the append-only store of timeline entries.
type EventRepository interface {
	// Append stores a new entry. A second PENDING entry for the same delivery
	// is silently dropped.
	Append(ctx context.Context, event delivery.Event) error

	// HasLabel reports whether the delivery has at least one entry with label.
	HasLabel(ctx context.Context, deliveryID kernel.UUID, label delivery.EventLabel) (bool, error)

	// Earliest returns the timestamp of the oldest entry, or nil when there is none.
	Earliest(ctx context.Context, deliveryID kernel.UUID) (*time.Time, error)

	// List returns all entries of the delivery ordered by time ascending.
	List(ctx context.Context, deliveryID kernel.UUID) ([]delivery.Event, error)
}
