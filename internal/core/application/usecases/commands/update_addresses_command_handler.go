package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// UpdateAddressesCommandHandler replaces address texts. Changed addresses lose
// their coordinates and the delivery is queued for geometry repair.
type UpdateAddressesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewUpdateAddressesCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) UpdateAddressesCommandHandler {
	return UpdateAddressesCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h UpdateAddressesCommandHandler) Handle(ctx context.Context, cmd UpdateAddressesCommand) (*delivery.Delivery, error) {
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

	repo := uow.DeliveryRepository()
	d, err := repo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = d.ChangeAddresses(cmd.Pickup(), cmd.Dropoff(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}
	if _, err = repo.UpdateGeometry(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
