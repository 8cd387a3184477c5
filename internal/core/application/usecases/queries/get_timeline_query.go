package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetTimelineQueryIsNotConstructed = errors.New(
	"GetTimelineQuery must be created via NewGetTimelineQuery constructor",
)

// GetTimelineQuery reads the status history of one delivery.
type GetTimelineQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetTimelineQuery(deliveryID kernel.UUID) (GetTimelineQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetTimelineQuery{}, errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	return GetTimelineQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetTimelineQueryIsNotConstructed)
}

// GetTimelineQueryResponse is one timeline entry. Label is the recorded
// action, Status the stored status it corresponds to.
type GetTimelineQueryResponse struct {
	ID         int64
	Label      string
	Status     string
	Note       string
	Actor      string
	OccurredAt time.Time
}
