package geometry

import (
	"context"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"golang.org/x/sync/singleflight"
)

// Geometry is what the tracking view shows for a delivery. Nil fields are unknown.
type Geometry struct {
	Pickup  *kernel.Location
	Dropoff *kernel.Location
	Route   kernel.Polyline
}

type geocodeResult struct {
	address delivery.Address
	changed bool
}

type routeResult struct {
	path  kernel.Polyline
	route *delivery.Route
}

// Resolver repairs the geometry of a delivery. Concurrent repairs for the same
// delivery, field and content share one provider call.
type Resolver struct {
	geocodes *GeocodeCache
	routes   *RouteCache
	group    singleflight.Group
}

func NewResolver(geocodes *GeocodeCache, routes *RouteCache) *Resolver {
	return &Resolver{geocodes: geocodes, routes: routes}
}

// Repair resolves both addresses and the route, applies the results to d and
// reports whether anything worth storing changed.
func (r *Resolver) Repair(ctx context.Context, d *delivery.Delivery) (Geometry, bool) {
	pickup, pickupChanged := r.geocode(ctx, d.ID(), "pickup", d.Pickup())
	dropoff, dropoffChanged := r.geocode(ctx, d.ID(), "dropoff", d.Dropoff())

	var geometry Geometry
	if loc, ok := pickup.Location(); ok {
		geometry.Pickup = &loc
	}
	if loc, ok := dropoff.Location(); ok {
		geometry.Dropoff = &loc
	}

	var fresh *delivery.Route
	if geometry.Pickup != nil && geometry.Dropoff != nil {
		var cached *delivery.Route
		if stored, ok := d.Route(); ok {
			cached = &stored
		}
		geometry.Route, fresh = r.route(ctx, d.ID(), *geometry.Pickup, *geometry.Dropoff, cached)
	}

	d.ApplyGeometry(pickup, dropoff, fresh)
	return geometry, pickupChanged || dropoffChanged || fresh != nil
}

func (r *Resolver) geocode(
	ctx context.Context,
	id kernel.UUID,
	field string,
	address delivery.Address,
) (delivery.Address, bool) {
	if !address.NeedsGeocode() {
		return r.geocodes.Resolve(ctx, address)
	}

	key := id.String() + ":" + field + ":" + kernel.AddressDigest(address.Text()).String()
	v, _, _ := r.group.Do(key, func() (any, error) {
		resolved, changed := r.geocodes.Resolve(ctx, address)
		return geocodeResult{address: resolved, changed: changed}, nil
	})
	res := v.(geocodeResult)
	return res.address, res.changed
}

func (r *Resolver) route(
	ctx context.Context,
	id kernel.UUID,
	pickup, dropoff kernel.Location,
	cached *delivery.Route,
) (kernel.Polyline, *delivery.Route) {
	if cached != nil && cached.IsValidFor(pickup, dropoff) {
		return r.routes.Resolve(ctx, pickup, dropoff, cached)
	}

	key := id.String() + ":route:" + kernel.RouteDigest(pickup, dropoff).String()
	v, _, _ := r.group.Do(key, func() (any, error) {
		path, route := r.routes.Resolve(ctx, pickup, dropoff, cached)
		return routeResult{path: path, route: route}, nil
	})
	res := v.(routeResult)
	return res.path, res.route
}
