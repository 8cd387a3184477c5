// Package eventrepo persists the delivery timeline.
package eventrepo

import (
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EventDTO is one timeline row. The partial unique index keeps a single
// PENDING entry per delivery even when two backfills race.
type EventDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_events_timeline,priority:1;uniqueIndex:idx_delivery_events_one_pending,where:label = 'PENDING'"`
	Label      string    `gorm:"type:varchar(16);not null"`
	Note       string    `gorm:"type:text;not null;default:''"`
	Actor      string    `gorm:"type:varchar(64);not null;default:''"`
	OccurredAt time.Time `gorm:"not null;index:idx_delivery_events_timeline,priority:2"`
}

func (EventDTO) TableName() string {
	return "delivery_events"
}

func fromDomain(e delivery.Event) EventDTO {
	return EventDTO{
		DeliveryID: e.DeliveryID().Bytes(),
		Label:      e.Label().String(),
		Note:       e.Note(),
		Actor:      e.Actor(),
		OccurredAt: e.OccurredAt(),
	}
}

func toDomain(dto EventDTO) (delivery.Event, error) {
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return delivery.Event{}, err
	}

	label, err := delivery.ParseEventLabel(dto.Label)
	if err != nil {
		return delivery.Event{}, err
	}

	return delivery.RestoreEvent(dto.ID, deliveryID, label, dto.Note, dto.Actor, dto.OccurredAt.UTC()), nil
}
