// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, external geometry providers, the event
// publisher and the clock.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier profiles.
type CourierRepository interface {
	// Add persists a new courier.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by identity.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}

// DriverLocationRepository keeps exactly one location sample per courier.
type DriverLocationRepository interface {
	// Push upserts the sample; the latest write wins and no history is kept.
	Push(ctx context.Context, location courier.Location) error

	// Get returns the current sample or an ObjectNotFoundError.
	Get(ctx context.Context, courierID kernel.UUID) (courier.Location, error)
}
