package http

import (
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// kernelID converts a bound path, query or body id. The nil UUID is
// rejected as a validation error.
func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func apiIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := id.Bytes()
	return &out
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps an empty string to an omitted field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func toDelivery(v queries.DeliveryView) servers.Delivery {
	out := servers.Delivery{
		Id:              v.ID.Bytes(),
		Reference:       v.Reference,
		Status:          v.Status,
		CustomerName:    v.CustomerName,
		CustomerContact: optional(v.CustomerContact),
		PackageType:     optional(v.PackageType),
		PackageWeight:   v.PackageWeight,
		PackageNotes:    optional(v.PackageNotes),
		Priority:        v.Priority,
		PickupAddress:   v.PickupAddress,
		DropoffAddress:  v.DropoffAddress,
		CourierId:       apiIDPtr(v.CourierID),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.DeliveryDate != nil {
		out.DeliveryDate = &openapi_types.Date{Time: *v.DeliveryDate}
	}
	return out
}

func fromAggregate(d *delivery.Delivery) servers.Delivery {
	details := d.Details()
	return toDelivery(queries.DeliveryView{
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
	})
}

func toDriverLocation(v queries.DriverLocationView) servers.DriverLocation {
	return servers.DriverLocation{
		CourierId: v.CourierID.Bytes(),
		Lat:       v.Lat,
		Lng:       v.Lng,
		Accuracy:  v.Accuracy,
		Heading:   v.Heading,
		Speed:     v.Speed,
		UpdatedAt: v.UpdatedAt,
		Stale:     v.Stale,
	}
}

func fromLocation(l courier.Location) servers.DriverLocation {
	return servers.DriverLocation{
		CourierId: l.CourierID().Bytes(),
		Lat:       l.Point().Lat(),
		Lng:       l.Point().Lng(),
		Accuracy:  l.Accuracy(),
		Heading:   l.Heading(),
		Speed:     l.Speed(),
		UpdatedAt: l.RecordedAt(),
	}
}

func toPoint(p *queries.PointView) *servers.Point {
	if p == nil {
		return nil
	}
	return &servers.Point{Lat: p.Lat, Lng: p.Lng}
}

func toTracking(v queries.GetTrackingQueryResponse) servers.Tracking {
	out := servers.Tracking{
		Delivery: toDelivery(v.Delivery),
		Pickup:   toPoint(v.Pickup),
		Dropoff:  toPoint(v.Dropoff),
	}
	if v.Route != nil {
		route := make([][]float64, len(v.Route))
		for i, pair := range v.Route {
			route[i] = []float64{pair[0], pair[1]}
		}
		out.Route = &route
	}
	if v.Driver != nil {
		out.Driver = &servers.Driver{Id: v.Driver.ID.Bytes(), Name: v.Driver.Name}
	}
	if v.DriverLocation != nil {
		location := toDriverLocation(*v.DriverLocation)
		out.DriverLocation = &location
	}
	return out
}
