package services

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
)

// CourierAssigner attaches a courier to a delivery.
//
// Business rules:
//   - Both aggregates must be valid
//   - A PENDING delivery becomes ASSIGNED
//   - An ASSIGNED or IN_TRANSIT delivery keeps its status and is logged as a reassignment
//   - Terminal deliveries are rejected
//
// Example usage:
//
//	tr, err := services.NewCourierAssigner().Assign(d, c, now)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    return err
//	}
//	// append tr.Entries to the timeline
type CourierAssigner struct{}

func NewCourierAssigner() CourierAssigner {
	return CourierAssigner{}
}

// Assign validates both aggregates and returns the transition to log.
func (CourierAssigner) Assign(d *delivery.Delivery, c *courier.Courier, now time.Time) (delivery.Transition, error) {
	if err := errors.Join(d.Validate(), c.Validate()); err != nil {
		return delivery.Transition{}, err
	}

	return d.Assign(c.ID(), now)
}
