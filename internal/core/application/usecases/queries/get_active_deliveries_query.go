package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery lists deliveries that are not finished yet. With a
// courier set only that courier's deliveries are returned.
type GetActiveDeliveriesQuery struct {
	courierID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActiveDeliveriesQuery(courierID *kernel.UUID) GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{courierID: courierID, guard: guard.NewConstructorGuard()}
}

func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one row of the dispatcher board.
type GetActiveDeliveriesQueryResponse struct {
	ID             kernel.UUID
	Reference      string
	Status         string
	Priority       string
	CustomerName   string
	PickupAddress  string
	DropoffAddress string
	CourierID      *kernel.UUID
	CreatedAt      time.Time
}
