package commands

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
)

// SubmitFeedbackCommandHandler stores or replaces a customer's rating of a
// delivered order.
type SubmitFeedbackCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewSubmitFeedbackCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) SubmitFeedbackCommandHandler {
	return SubmitFeedbackCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h SubmitFeedbackCommandHandler) Handle(ctx context.Context, cmd SubmitFeedbackCommand) (delivery.Feedback, error) {
	if err := cmd.Validate(); err != nil {
		return delivery.Feedback{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return delivery.Feedback{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	d, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return delivery.Feedback{}, err
	}

	if err = d.CanReceiveFeedback(); err != nil {
		return delivery.Feedback{}, err
	}

	feedback, err := delivery.NewFeedback(d.ID(), cmd.CustomerRef(), cmd.Rating(), cmd.Comment(), h.clock.Now())
	if err != nil {
		return delivery.Feedback{}, err
	}

	if err = repo.SaveFeedback(ctx, feedback); err != nil {
		return delivery.Feedback{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return delivery.Feedback{}, err
	}

	return feedback, nil
}
