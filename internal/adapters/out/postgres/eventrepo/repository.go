package eventrepo

import (
	"context"
	"database/sql"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEventRepository implements EventRepository using GORM. Rows are only
// ever inserted.
type GormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Append inserts the entry. A conflicting PENDING entry is skipped.
func (r *GormEventRepository) Append(ctx context.Context, event delivery.Event) error {
	dto := fromDomain(event)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("append delivery event", err)
	}
	return nil
}

func (r *GormEventRepository) HasLabel(
	ctx context.Context,
	deliveryID kernel.UUID,
	label delivery.EventLabel,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Where("delivery_id = ? AND label = ?", deliveryID.Bytes(), label.String()).
		Count(&count).Error
	if err != nil {
		return false, errs.NewPersistenceError("count delivery events", err)
	}
	return count > 0, nil
}

func (r *GormEventRepository) Earliest(ctx context.Context, deliveryID kernel.UUID) (*time.Time, error) {
	var earliest sql.NullTime
	err := r.db.WithContext(ctx).
		Model(&EventDTO{}).
		Select("MIN(occurred_at)").
		Where("delivery_id = ?", deliveryID.Bytes()).
		Row().
		Scan(&earliest)
	if err != nil {
		return nil, errs.NewPersistenceError("read earliest delivery event", err)
	}
	if !earliest.Valid {
		return nil, nil
	}
	at := earliest.Time.UTC()
	return &at, nil
}

// List orders by time and then by insertion so entries written in one
// transition keep their order.
func (r *GormEventRepository) List(ctx context.Context, deliveryID kernel.UUID) ([]delivery.Event, error) {
	var dtos []EventDTO
	err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list delivery events", err)
	}

	events := make([]delivery.Event, 0, len(dtos))
	for _, dto := range dtos {
		e, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		events = append(events, e)
	}
	return events, nil
}
