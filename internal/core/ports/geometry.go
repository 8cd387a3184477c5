package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Geocoder resolves free text to coordinates. A nil location with a nil error
// means the provider found nothing.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*kernel.Location, error)
}

// Router computes a driving path between two points. The returned polyline is
// in (lat, lng) order; providers that speak (lng, lat) convert in the adapter.
type Router interface {
	Route(ctx context.Context, from, to kernel.Location) (kernel.Polyline, error)
}
