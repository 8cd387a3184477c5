package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// AssignCourierCommandHandler assigns or reassigns a courier. The delivery row
// is locked for the whole transaction so a concurrent transition sees the
// result of this one.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, publisher, clock)
//	d, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("unknown delivery or courier")
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    log.Println("delivery is already finished")
//	}
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewAssignCourierCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
	}
}

// Handle loads both aggregates, lets CourierAssigner validate the move and
// writes the ASSIGNED entry.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DeliveryRepository().GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	c, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	tr, err := services.NewCourierAssigner().Assign(d, c, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = commitTransition(ctx, uow, h.clock, h.publisher, d, tr, cmd.Actor()); err != nil {
		return nil, err
	}

	return d, nil
}
