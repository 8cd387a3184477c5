package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrGetDeliveryRecordQueryIsNotConstructed = errors.New(
	"GetDeliveryRecordQuery must be created via NewGetDeliveryRecordQuery constructor",
)

// GetDeliveryRecordQuery addresses the proof or the failure record of a delivery.
type GetDeliveryRecordQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryRecordQuery(deliveryID kernel.UUID) (GetDeliveryRecordQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryRecordQuery{}, errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	return GetDeliveryRecordQuery{deliveryID: deliveryID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryRecordQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRecordQueryIsNotConstructed)
}

type GetProofQueryResponse struct {
	DeliveryID    kernel.UUID
	RecipientName string
	PhotoRef      string
	SignatureRef  string
	Note          string
	SubmittedAt   time.Time
}

type GetFailureQueryResponse struct {
	DeliveryID kernel.UUID
	Reason     string
	Notes      string
	PhotoRef   string
	ReportedAt time.Time
}
