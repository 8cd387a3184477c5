package deliveryrepo

import (
	"context"
	"errors"

	"dispatch/internal/adapters/out/postgres/eventrepo"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// Add saves a new delivery to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewPersistenceError("add delivery", err)
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add delivery", err)
	}

	return nil
}

// Update writes lifecycle and descriptive columns. Geometry columns are left
// to UpdateGeometry.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return errs.NewPersistenceError("update delivery", err)
	}
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		UpdateColumns(map[string]any{
			"status":           dto.Status,
			"courier_id":       dto.CourierID,
			"customer_name":    dto.CustomerName,
			"customer_contact": dto.CustomerContact,
			"package_type":     dto.PackageType,
			"package_weight":   dto.PackageWeight,
			"package_notes":    dto.PackageNotes,
			"delivery_date":    dto.DeliveryDate,
			"priority":         dto.Priority,
			"pickup_address":   dto.Pickup.Address,
			"dropoff_address":  dto.Dropoff.Address,
			"updated_at":       dto.UpdatedAt,
		})
	if result.Error != nil {
		return errs.NewPersistenceError("update delivery", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	return r.first(r.db.WithContext(ctx), "id = ?", id.Bytes(), id.String())
}

// GetForUpdate retrieves a delivery with SELECT ... FOR UPDATE. Outside a
// transaction the lock is released immediately.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	db := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.first(db, "id = ?", id.Bytes(), id.String())
}

// GetByReference retrieves a delivery by its reference code.
func (r *GormDeliveryRepository) GetByReference(
	ctx context.Context,
	reference delivery.ReferenceCode,
) (*delivery.Delivery, error) {
	return r.first(r.db.WithContext(ctx), "reference = ?", reference.String(), reference.String())
}

func (r *GormDeliveryRepository) first(db *gorm.DB, condition string, value any, key string) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := db.First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", key)
		}
		return nil, errs.NewPersistenceError("get delivery", err)
	}

	return toDomain(dto)
}

// UpdateGeometry stores geocodes, the route cache and the repair flag. The
// write only applies while both address texts are still the ones the geometry
// was resolved for; otherwise the newer edit wins, nothing is written and
// false is returned.
func (r *GormDeliveryRepository) UpdateGeometry(ctx context.Context, aggregate *delivery.Delivery) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return false, errs.NewPersistenceError("update delivery geometry", err)
	}
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND pickup_address = ? AND dropoff_address = ?", dto.ID, dto.Pickup.Address, dto.Dropoff.Address).
		UpdateColumns(map[string]any{
			"pickup_lat":      dto.Pickup.Lat,
			"pickup_lng":      dto.Pickup.Lng,
			"pickup_hash":     dto.Pickup.Hash,
			"dropoff_lat":     dto.Dropoff.Lat,
			"dropoff_lng":     dto.Dropoff.Lng,
			"dropoff_hash":    dto.Dropoff.Hash,
			"route":           dto.Route,
			"route_key":       dto.RouteKey,
			"route_cached_at": dto.RouteCachedAt,
			"geometry_dirty":  dto.GeometryDirty,
		})
	if result.Error != nil {
		return false, errs.NewPersistenceError("update delivery geometry", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetGeometryDirty returns flagged deliveries, least recently changed first.
func (r *GormDeliveryRepository) GetGeometryDirty(ctx context.Context, limit int) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("geometry_dirty = ?", true).
		Order("updated_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list dirty deliveries", err)
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		deliveries = append(deliveries, d)
	}
	return deliveries, nil
}

// Delete removes dependent rows first and then the delivery.
func (r *GormDeliveryRepository) Delete(ctx context.Context, id kernel.UUID) error {
	db := r.db.WithContext(ctx)
	key := id.Bytes()

	for _, dependent := range []any{&eventrepo.EventDTO{}, &ProofDTO{}, &FailureDTO{}, &FeedbackDTO{}} {
		if err := db.Where("delivery_id = ?", key).Delete(dependent).Error; err != nil {
			return errs.NewPersistenceError("delete delivery records", err)
		}
	}

	result := db.Where("id = ?", key).Delete(&DeliveryDTO{})
	if result.Error != nil {
		return errs.NewPersistenceError("delete delivery", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", id.String())
	}
	return nil
}

// SaveProof inserts or replaces the proof of delivery.
func (r *GormDeliveryRepository) SaveProof(ctx context.Context, pod delivery.ProofOfDelivery) error {
	dto := proofFromDomain(pod)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "delivery_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("save proof of delivery", err)
	}
	return nil
}

// SaveFailure inserts or replaces the failure record. An empty photo keeps
// the previously stored one.
func (r *GormDeliveryRepository) SaveFailure(ctx context.Context, record delivery.FailureRecord) error {
	dto := failureFromDomain(record)
	updates := clause.AssignmentColumns([]string{"reason", "notes", "reported_at"})
	updates = append(updates, clause.Assignment{
		Column: clause.Column{Name: "photo_ref"},
		Value:  gorm.Expr("COALESCE(NULLIF(EXCLUDED.photo_ref, ''), delivery_failures.photo_ref)"),
	})

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "delivery_id"}},
			DoUpdates: updates,
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("save failure record", err)
	}
	return nil
}

// SaveFeedback inserts or replaces the feedback of one customer.
func (r *GormDeliveryRepository) SaveFeedback(ctx context.Context, feedback delivery.Feedback) error {
	dto := feedbackFromDomain(feedback)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "delivery_id"}, {Name: "customer_ref"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "comment", "created_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("save feedback", err)
	}
	return nil
}
