package queries

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads the dispatcher board, oldest first.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	active := []string{
		delivery.StatusPending.String(),
		delivery.StatusAssigned.String(),
		delivery.StatusInTransit.String(),
	}

	tx := h.db.WithContext(ctx).
		Table("deliveries").
		Select("id, reference, status, priority, customer_name, pickup_address, dropoff_address, courier_id, created_at").
		Where("status IN ?", active)
	if query.courierID != nil {
		tx = tx.Where("courier_id = ?", query.courierID.Bytes())
	}

	rows, err := tx.Order("created_at, reference").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := make([]GetActiveDeliveriesQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id uuid.UUID
		var courierID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Reference,
			&resp.Status,
			&resp.Priority,
			&resp.CustomerName,
			&resp.PickupAddress,
			&resp.DropoffAddress,
			&courierID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if courierID.Valid {
			assigned, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.CourierID = &assigned
		}
		resp.CreatedAt = resp.CreatedAt.UTC()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
