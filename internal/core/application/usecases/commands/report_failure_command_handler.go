package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// ReportFailureCommandHandler stores the failure record and fails the delivery.
type ReportFailureCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	clock      ports.Clock
}

func NewReportFailureCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	clock ports.Clock,
) ReportFailureCommandHandler {
	return ReportFailureCommandHandler{uowFactory: uowFactory, publisher: publisher, clock: clock}
}

func (h ReportFailureCommandHandler) Handle(ctx context.Context, cmd ReportFailureCommand) (*delivery.Delivery, error) {
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
	record, err := delivery.NewFailureRecord(d.ID(), cmd.Reason(), cmd.Notes(), cmd.PhotoRef(), now)
	if err != nil {
		return nil, err
	}

	tr, err := d.ReportFailure(record, now)
	if err != nil {
		return nil, err
	}

	if err = repo.SaveFailure(ctx, record); err != nil {
		return nil, err
	}

	if err = commitTransition(ctx, uow, h.clock, h.publisher, d, tr, cmd.Actor()); err != nil {
		return nil, err
	}

	return d, nil
}
