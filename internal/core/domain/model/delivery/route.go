package delivery

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Route is a cached driving polyline with the key of the coordinate pair it
// was computed for.
type Route struct {
	points   kernel.Polyline
	key      kernel.Digest
	cachedAt time.Time
}

func NewRoute(points kernel.Polyline, key kernel.Digest, cachedAt time.Time) (Route, error) {
	if !points.IsDrawable() {
		return Route{}, errs.NewValueIsInvalidError("route needs at least two points")
	}
	if key.IsEmpty() {
		return Route{}, errs.NewValueIsRequiredError("route key")
	}
	return Route{points: points, key: key, cachedAt: cachedAt}, nil
}

func (r Route) Points() kernel.Polyline {
	return r.points
}

func (r Route) Key() kernel.Digest {
	return r.key
}

func (r Route) CachedAt() time.Time {
	return r.cachedAt
}

// IsValidFor reports a cache hit for the given resolved endpoints.
func (r Route) IsValidFor(pickup, dropoff kernel.Location) bool {
	return r.points.IsDrawable() && r.key == kernel.RouteDigest(pickup, dropoff)
}
