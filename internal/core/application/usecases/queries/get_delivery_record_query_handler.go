package queries

import (
	"context"
	"time"

	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetProofQueryHandler returns the proof of delivery or an ObjectNotFoundError.
type GetProofQueryHandler struct {
	db *gorm.DB
}

func NewGetProofQueryHandler(db *gorm.DB) GetProofQueryHandler {
	return GetProofQueryHandler{db: db}
}

func (h GetProofQueryHandler) Handle(ctx context.Context, query GetDeliveryRecordQuery) (GetProofQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProofQueryResponse{}, err
	}

	var row struct {
		RecipientName string
		PhotoRef      string
		SignatureRef  string
		Note          string
		SubmittedAt   time.Time
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT recipient_name, photo_ref, signature_ref, note, submitted_at
		FROM delivery_proofs
		WHERE delivery_id = ?
	`, query.deliveryID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetProofQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetProofQueryResponse{}, errs.NewObjectNotFoundError("proof of delivery", query.deliveryID)
	}

	return GetProofQueryResponse{
		DeliveryID:    query.deliveryID,
		RecipientName: row.RecipientName,
		PhotoRef:      row.PhotoRef,
		SignatureRef:  row.SignatureRef,
		Note:          row.Note,
		SubmittedAt:   row.SubmittedAt.UTC(),
	}, nil
}

// GetFailureQueryHandler returns the failure record or an ObjectNotFoundError.
type GetFailureQueryHandler struct {
	db *gorm.DB
}

func NewGetFailureQueryHandler(db *gorm.DB) GetFailureQueryHandler {
	return GetFailureQueryHandler{db: db}
}

func (h GetFailureQueryHandler) Handle(ctx context.Context, query GetDeliveryRecordQuery) (GetFailureQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFailureQueryResponse{}, err
	}

	var row struct {
		Reason     string
		Notes      string
		PhotoRef   string
		ReportedAt time.Time
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT reason, notes, photo_ref, reported_at
		FROM delivery_failures
		WHERE delivery_id = ?
	`, query.deliveryID.Bytes()).Scan(&row)
	if result.Error != nil {
		return GetFailureQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetFailureQueryResponse{}, errs.NewObjectNotFoundError("failure record", query.deliveryID)
	}

	return GetFailureQueryResponse{
		DeliveryID: query.deliveryID,
		Reason:     row.Reason,
		Notes:      row.Notes,
		PhotoRef:   row.PhotoRef,
		ReportedAt: row.ReportedAt.UTC(),
	}, nil
}
