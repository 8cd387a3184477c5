package queries

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetTrackingQueryIsNotConstructed = errors.New(
	"GetTrackingQuery must be created via NewGetTrackingQuery constructor",
)

// GetTrackingQuery looks a delivery up by its id or by its reference code.
//
// Example:
//
//	query, err := NewGetTrackingQuery("ORD-2025123456")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetTrackingQuery struct {
	id        *kernel.UUID
	reference delivery.ReferenceCode

	guard guard.ConstructorGuard
}

func NewGetTrackingQuery(key string) (GetTrackingQuery, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return GetTrackingQuery{}, errs.NewValueIsRequiredError("delivery")
	}

	if id, err := kernel.UUIDFromString(key); err == nil {
		return GetTrackingQuery{id: &id, guard: guard.NewConstructorGuard()}, nil
	}

	reference, err := delivery.ParseReferenceCode(key)
	if err != nil {
		return GetTrackingQuery{}, err
	}
	return GetTrackingQuery{reference: reference, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingQueryIsNotConstructed)
}

// DriverView names the assigned courier.
type DriverView struct {
	ID   kernel.UUID
	Name string
}

// GetTrackingQueryResponse is the composed tracking snapshot. Nil fields are unknown.
type GetTrackingQueryResponse struct {
	Delivery       DeliveryView
	Driver         *DriverView
	DriverLocation *DriverLocationView
	Pickup         *PointView
	Dropoff        *PointView
	Route          [][2]float64
}
