// Package courierrepo provides data transfer objects and mapping functions for
// courier profiles and their live location.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming convention to use "couriers"
// instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// DriverLocationDTO is the single current sample of a courier.
type DriverLocationDTO struct {
	CourierID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Lat        float64   `gorm:"type:double precision;not null"`
	Lng        float64   `gorm:"type:double precision;not null"`
	Accuracy   *float64  `gorm:"type:double precision"`
	Heading    *float64  `gorm:"type:double precision"`
	Speed      *float64  `gorm:"type:double precision"`
	RecordedAt time.Time `gorm:"not null;index"`
}

func (DriverLocationDTO) TableName() string {
	return "driver_locations"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:   c.ID().Bytes(),
		Name: c.Name(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(id, dto.Name)
}

func locationFromDomain(l courier.Location) DriverLocationDTO {
	return DriverLocationDTO{
		CourierID:  l.CourierID().Bytes(),
		Lat:        l.Point().Lat(),
		Lng:        l.Point().Lng(),
		Accuracy:   l.Accuracy(),
		Heading:    l.Heading(),
		Speed:      l.Speed(),
		RecordedAt: l.RecordedAt(),
	}
}

func locationToDomain(dto DriverLocationDTO) (courier.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return courier.Location{}, err
	}

	point, err := kernel.NewLocation(dto.Lat, dto.Lng)
	if err != nil {
		return courier.Location{}, err
	}

	reading := courier.Reading{Accuracy: dto.Accuracy, Heading: dto.Heading, Speed: dto.Speed}
	return courier.NewLocation(id, point, reading, dto.RecordedAt.UTC())
}
