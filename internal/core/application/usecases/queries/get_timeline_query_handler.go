package queries

import (
	"context"

	"dispatch/internal/core/application/eventlog"
	"dispatch/internal/core/ports"
)

// GetTimelineQueryHandler returns the timeline oldest first. A delivery that
// has no PENDING entry yet gets one before the list is read.
type GetTimelineQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetTimelineQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetTimelineQueryHandler {
	return GetTimelineQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetTimelineQueryHandler) Handle(ctx context.Context, query GetTimelineQuery) ([]GetTimelineQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if _, err := uow.DeliveryRepository().Get(ctx, query.deliveryID); err != nil {
		return nil, err
	}

	events, err := eventlog.New(uow.EventRepository(), h.clock).Timeline(ctx, query.deliveryID)
	if err != nil {
		return nil, err
	}

	timeline := make([]GetTimelineQueryResponse, 0, len(events))
	for _, e := range events {
		timeline = append(timeline, GetTimelineQueryResponse{
			ID:         e.ID(),
			Label:      e.Label().String(),
			Status:     e.Status().String(),
			Note:       e.Note(),
			Actor:      e.Actor(),
			OccurredAt: e.OccurredAt(),
		})
	}
	return timeline, nil
}
