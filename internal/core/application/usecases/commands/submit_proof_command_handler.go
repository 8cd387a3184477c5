package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// SubmitProofCommandHandler stores the proof of delivery and completes the delivery.
type SubmitProofCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewSubmitProofCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) SubmitProofCommandHandler {
	return SubmitProofCommandHandler{uowFactory: uowFactory, publisher: publisher, clock: clock}
}

func (h SubmitProofCommandHandler) Handle(ctx context.Context, cmd SubmitProofCommand) (*delivery.Delivery, error) {
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

	now := h.clock.Now()
	pod, err := delivery.NewProofOfDelivery(d.ID(), cmd.RecipientName(), cmd.PhotoRef(), cmd.SignatureRef(), cmd.Note(), now)
	if err != nil {
		return nil, err
	}

	tr, err := d.SubmitProof(pod, now)
	if err != nil {
		return nil, err
	}

	if err = repo.SaveProof(ctx, pod); err != nil {
		return nil, err
	}

	if err = commitTransition(ctx, uow, h.clock, h.publisher, d, tr, cmd.Actor()); err != nil {
		return nil, err
	}

	return d, nil
}
