// Package queries contains read operations. Plain lists read the database
// directly with SQL; the tracking and timeline reads go through the domain
// because they repair data as they read it.
package queries

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
)

// PointView is a coordinate pair as shown to clients.
type PointView struct {
	Lat float64
	Lng float64
}

func pointView(loc *kernel.Location) *PointView {
	if loc == nil {
		return nil
	}
	return &PointView{Lat: loc.Lat(), Lng: loc.Lng()}
}

// DeliveryView is the read model of a delivery.
type DeliveryView struct {
	ID              kernel.UUID
	Reference       string
	Status          string
	CustomerName    string
	CustomerContact string
	PackageType     string
	PackageWeight   *float64
	PackageNotes    string
	DeliveryDate    *time.Time
	Priority        string
	PickupAddress   string
	DropoffAddress  string
	CourierID       *kernel.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func deliveryView(d *delivery.Delivery) DeliveryView {
	details := d.Details()
	return DeliveryView{
		ID:              d.ID(),
		Reference:       d.Reference().String(),
		Status:          d.Status().String(),
		CustomerName:    details.Customer.Name,
		CustomerContact: details.Customer.Contact,
		PackageType:     details.Package.Type,
		PackageWeight:   details.Package.Weight,
		PackageNotes:    details.Package.Notes,
		DeliveryDate:    details.DeliveryDate,
		Priority:        details.Priority.String(),
		PickupAddress:   d.Pickup().Text(),
		DropoffAddress:  d.Dropoff().Text(),
		CourierID:       d.Courier(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}
}

// DriverLocationView is the last sample of a courier with its staleness
// evaluated at read time.
type DriverLocationView struct {
	CourierID kernel.UUID
	Lat       float64
	Lng       float64
	Accuracy  *float64
	Heading   *float64
	Speed     *float64
	UpdatedAt time.Time
	Stale     bool
}

func driverLocationView(l courier.Location, now time.Time, staleAfter time.Duration) DriverLocationView {
	return DriverLocationView{
		CourierID: l.CourierID(),
		Lat:       l.Point().Lat(),
		Lng:       l.Point().Lng(),
		Accuracy:  l.Accuracy(),
		Heading:   l.Heading(),
		Speed:     l.Speed(),
		UpdatedAt: l.RecordedAt(),
		Stale:     l.IsStale(now, staleAfter),
	}
}
