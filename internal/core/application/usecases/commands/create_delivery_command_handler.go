package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/application/eventlog"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const referenceAttempts = 5

var ErrReferenceCodeExhausted = errors.New("could not generate a free reference code")

// CreateDeliveryCommandHandler stores a new delivery and opens its timeline
// with the PENDING entry in the same transaction.
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle creates the delivery and returns it.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (*delivery.Delivery, error) {
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

	deliveryRepo := uow.DeliveryRepository()
	now := h.clock.Now()

	reference, err := h.freeReference(ctx, deliveryRepo)
	if err != nil {
		return nil, err
	}

	d, err := delivery.NewDelivery(kernel.NewUUID(), reference, cmd.Pickup(), cmd.Dropoff(), cmd.Details(), now)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = eventlog.New(uow.EventRepository(), h.clock).EnsurePending(ctx, d.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func (h CreateDeliveryCommandHandler) freeReference(
	ctx context.Context,
	repo ports.DeliveryRepository,
) (delivery.ReferenceCode, error) {
	for range referenceAttempts {
		candidate := delivery.GenerateReferenceCode(h.clock.Now())
		_, err := repo.GetByReference(ctx, candidate)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("%w after %d attempts", ErrReferenceCodeExhausted, referenceAttempts)
}
