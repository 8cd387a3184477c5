package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it after Begin share the transaction; before Begin they run on the plain
// connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	EventRepository() EventRepository
	CourierRepository() CourierRepository
	DriverLocationRepository() DriverLocationRepository
}
