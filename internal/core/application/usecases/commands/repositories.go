// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	EventRepoFactory interface {
		EventRepository() ports.EventRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	DriverLocationRepoFactory interface {
		DriverLocationRepository() ports.DriverLocationRepository
	}

	// DeliveryUoW covers operations on one delivery and its timeline.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		EventRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CourierUoW covers courier profiles and their live location.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
		DriverLocationRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans deliveries and couriers, for assignment.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   d, err := uow.DeliveryRepository().GetForUpdate(ctx, id)
	//   c, err := uow.CourierRepository().Get(ctx, courierID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		EventRepoFactory
		CourierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
