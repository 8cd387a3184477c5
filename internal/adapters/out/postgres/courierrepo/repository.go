package courierrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceError("add courier", err)
	}

	return nil
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
	if result.Error != nil {
		return errs.NewPersistenceError("update courier", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, errs.NewPersistenceError("get courier", err)
	}

	return toDomain(dto)
}

// GormDriverLocationRepository implements DriverLocationRepository using GORM.
type GormDriverLocationRepository struct {
	db *gorm.DB
}

func NewGormDriverLocationRepository(db *gorm.DB) *GormDriverLocationRepository {
	return &GormDriverLocationRepository{db: db}
}

// Push upserts the courier's row; no history is kept.
func (r *GormDriverLocationRepository) Push(ctx context.Context, location courier.Location) error {
	dto := locationFromDomain(location)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "courier_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return errs.NewPersistenceError("push driver location", err)
	}
	return nil
}

// Get returns the current sample of the courier.
func (r *GormDriverLocationRepository) Get(ctx context.Context, courierID kernel.UUID) (courier.Location, error) {
	var dto DriverLocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return courier.Location{}, errs.NewObjectNotFoundError("driver location", courierID.String())
		}
		return courier.Location{}, errs.NewPersistenceError("get driver location", err)
	}

	return locationToDomain(dto)
}
