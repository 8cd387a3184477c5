package queries

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDriverLocationQueryIsNotConstructed = errors.New(
	"GetDriverLocationQuery must be created via NewGetDriverLocationQuery constructor",
)

// GetDriverLocationQuery reads the current sample of one courier.
type GetDriverLocationQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDriverLocationQuery(courierID kernel.UUID) (GetDriverLocationQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetDriverLocationQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	return GetDriverLocationQuery{courierID: courierID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverLocationQueryIsNotConstructed)
}

// GetDriverLocationQueryHandler returns the sample or an ObjectNotFoundError
// when the courier never reported one.
type GetDriverLocationQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	staleAfter time.Duration
}

func NewGetDriverLocationQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	clock ports.Clock,
	staleAfter time.Duration,
) GetDriverLocationQueryHandler {
	return GetDriverLocationQueryHandler{uowFactory: uowFactory, clock: clock, staleAfter: staleAfter}
}

func (h GetDriverLocationQueryHandler) Handle(
	ctx context.Context,
	query GetDriverLocationQuery,
) (DriverLocationView, error) {
	if err := query.Validate(); err != nil {
		return DriverLocationView{}, err
	}

	sample, err := h.uowFactory.Create().DriverLocationRepository().Get(ctx, query.courierID)
	if err != nil {
		return DriverLocationView{}, err
	}
	return driverLocationView(sample, h.clock.Now(), h.staleAfter), nil
}
