// Package deliveryrepo maps the delivery aggregate and its attached records
// (proof of delivery, failure record, feedback) to postgres tables.
package deliveryrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DeliveryDTO is the deliveries row. Geocodes and the route cache live next
// to the lifecycle columns; each address carries the digest of the text it
// was geocoded from.
type DeliveryDTO struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Reference       string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status          string         `gorm:"type:varchar(16);not null;index"`
	CustomerName    string         `gorm:"type:varchar(255);not null"`
	CustomerContact string         `gorm:"type:varchar(255);not null;default:''"`
	PackageType     string         `gorm:"type:varchar(64);not null;default:''"`
	PackageWeight   *float64       `gorm:"type:double precision"`
	PackageNotes    string         `gorm:"type:text;not null;default:''"`
	DeliveryDate    *time.Time     `gorm:"type:date"`
	Priority        string         `gorm:"type:varchar(16);not null"`
	Pickup          AddressDTO     `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff         AddressDTO     `gorm:"embedded;embeddedPrefix:dropoff_"`
	Route           datatypes.JSON `gorm:"type:jsonb"`
	RouteKey        string         `gorm:"type:varchar(16);not null;default:''"`
	RouteCachedAt   *time.Time
	CourierID       *uuid.UUID `gorm:"type:uuid;index"`
	GeometryDirty   bool       `gorm:"not null;default:false;index"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	UpdatedAt       time.Time  `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO is an address with its cached geocode.
type AddressDTO struct {
	Address string   `gorm:"type:text;not null"`
	Lat     *float64 `gorm:"type:double precision"`
	Lng     *float64 `gorm:"type:double precision"`
	Hash    string   `gorm:"type:varchar(16);not null;default:''"`
}

// ProofDTO holds at most one proof per delivery.
type ProofDTO struct {
	DeliveryID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientName string    `gorm:"type:varchar(255);not null"`
	PhotoRef      string    `gorm:"type:text;not null"`
	SignatureRef  string    `gorm:"type:text;not null;default:''"`
	Note          string    `gorm:"type:text;not null;default:''"`
	SubmittedAt   time.Time `gorm:"not null"`
}

func (ProofDTO) TableName() string {
	return "delivery_proofs"
}

// FailureDTO holds at most one failure record per delivery.
type FailureDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reason     string    `gorm:"type:varchar(32);not null"`
	Notes      string    `gorm:"type:text;not null;default:''"`
	PhotoRef   string    `gorm:"type:text;not null;default:''"`
	ReportedAt time.Time `gorm:"not null"`
}

func (FailureDTO) TableName() string {
	return "delivery_failures"
}

// FeedbackDTO holds one rating per delivery and customer.
type FeedbackDTO struct {
	DeliveryID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerRef string    `gorm:"type:varchar(255);primaryKey"`
	Rating      int       `gorm:"type:smallint;not null"`
	Comment     string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (FeedbackDTO) TableName() string {
	return "delivery_feedback"
}

func fromDomain(d *delivery.Delivery) (DeliveryDTO, error) {
	details := d.Details()
	dto := DeliveryDTO{
		ID:              d.ID().Bytes(),
		Reference:       d.Reference().String(),
		Status:          d.Status().String(),
		CustomerName:    details.Customer.Name,
		CustomerContact: details.Customer.Contact,
		PackageType:     details.Package.Type,
		PackageWeight:   details.Package.Weight,
		PackageNotes:    details.Package.Notes,
		DeliveryDate:    details.DeliveryDate,
		Priority:        details.Priority.String(),
		Pickup:          addressFromDomain(d.Pickup()),
		Dropoff:         addressFromDomain(d.Dropoff()),
		GeometryDirty:   d.IsGeometryDirty(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}

	if courierID := d.Courier(); courierID != nil {
		raw := courierID.Bytes()
		dto.CourierID = &raw
	}

	if route, ok := d.Route(); ok {
		raw, err := json.Marshal(route.Points().Pairs())
		if err != nil {
			return DeliveryDTO{}, fmt.Errorf("encode route: %w", err)
		}
		dto.Route = raw
		dto.RouteKey = route.Key().String()
		cachedAt := route.CachedAt()
		dto.RouteCachedAt = &cachedAt
	}

	return dto, nil
}

func addressFromDomain(a delivery.Address) AddressDTO {
	dto := AddressDTO{Address: a.Text(), Hash: a.Digest().String()}
	if loc, ok := a.Location(); ok {
		lat, lng := loc.Lat(), loc.Lng()
		dto.Lat, dto.Lng = &lat, &lng
	}
	return dto
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reference, err := delivery.ParseReferenceCode(dto.Reference)
	if err != nil {
		return nil, err
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := delivery.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := addressToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		restored, idErr := kernel.UUIDFromBytes(dto.CourierID[:])
		if idErr != nil {
			return nil, idErr
		}
		courierID = &restored
	}

	var deliveryDate *time.Time
	if dto.DeliveryDate != nil {
		date := dto.DeliveryDate.UTC()
		deliveryDate = &date
	}

	return delivery.RestoreDelivery(delivery.Snapshot{
		ID:        id,
		Reference: reference,
		Status:    status,
		Details: delivery.Details{
			Customer: delivery.Customer{Name: dto.CustomerName, Contact: dto.CustomerContact},
			Package: delivery.Package{
				Type:   dto.PackageType,
				Weight: dto.PackageWeight,
				Notes:  dto.PackageNotes,
			},
			DeliveryDate: deliveryDate,
			Priority:     priority,
		},
		Pickup:        pickup,
		Dropoff:       dropoff,
		Route:         routeToDomain(dto),
		CourierID:     courierID,
		GeometryDirty: dto.GeometryDirty,
		CreatedAt:     dto.CreatedAt.UTC(),
		UpdatedAt:     dto.UpdatedAt.UTC(),
	})
}

func addressToDomain(dto AddressDTO) (delivery.Address, error) {
	var loc *kernel.Location
	if dto.Lat != nil && dto.Lng != nil {
		restored, err := kernel.NewLocation(*dto.Lat, *dto.Lng)
		if err != nil {
			return delivery.Address{}, err
		}
		loc = &restored
	}
	return delivery.RestoreAddress(dto.Address, loc, kernel.Digest(dto.Hash)), nil
}

// routeToDomain drops a stored route that cannot be read back. The next
// tracking read computes a new one.
func routeToDomain(dto DeliveryDTO) *delivery.Route {
	if len(dto.Route) == 0 || dto.RouteKey == "" {
		return nil
	}

	var pairs [][2]float64
	if err := json.Unmarshal(dto.Route, &pairs); err != nil {
		return nil
	}

	points, err := kernel.NewPolyline(pairs)
	if err != nil {
		return nil
	}

	var cachedAt time.Time
	if dto.RouteCachedAt != nil {
		cachedAt = dto.RouteCachedAt.UTC()
	}

	route, err := delivery.NewRoute(points, kernel.Digest(dto.RouteKey), cachedAt)
	if err != nil {
		return nil
	}
	return &route
}

func proofFromDomain(p delivery.ProofOfDelivery) ProofDTO {
	return ProofDTO{
		DeliveryID:    p.DeliveryID().Bytes(),
		RecipientName: p.RecipientName(),
		PhotoRef:      p.PhotoRef(),
		SignatureRef:  p.SignatureRef(),
		Note:          p.Note(),
		SubmittedAt:   p.SubmittedAt(),
	}
}

func failureFromDomain(f delivery.FailureRecord) FailureDTO {
	return FailureDTO{
		DeliveryID: f.DeliveryID().Bytes(),
		Reason:     f.Reason().String(),
		Notes:      f.Notes(),
		PhotoRef:   f.PhotoRef(),
		ReportedAt: f.ReportedAt(),
	}
}

func feedbackFromDomain(f delivery.Feedback) FeedbackDTO {
	return FeedbackDTO{
		DeliveryID:  f.DeliveryID().Bytes(),
		CustomerRef: f.CustomerRef(),
		Rating:      f.Rating(),
		Comment:     f.Comment(),
		CreatedAt:   f.CreatedAt(),
	}
}
