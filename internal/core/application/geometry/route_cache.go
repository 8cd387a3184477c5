package geometry

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var errUndrawableRoute = errors.New("route has fewer than two points")

// RouteCache resolves the driving path between two resolved endpoints.
type RouteCache struct {
	router   ports.Router
	clock    ports.Clock
	observer Observer
	logger   *slog.Logger
}

func NewRouteCache(router ports.Router, clock ports.Clock, observer Observer, logger *slog.Logger) *RouteCache {
	return &RouteCache{
		router:   router,
		clock:    clock,
		observer: observerOrNoop(observer),
		logger:   logger.With("component", "route-cache"),
	}
}

// Resolve returns the path to display and, when a new route was computed, the
// route to store. A valid cached route is returned as is. When the provider
// fails the straight line between the endpoints is returned with a nil route
// so the next read tries again.
func (c *RouteCache) Resolve(
	ctx context.Context,
	pickup, dropoff kernel.Location,
	cached *delivery.Route,
) (kernel.Polyline, *delivery.Route) {
	if cached != nil && cached.IsValidFor(pickup, dropoff) {
		c.observer.CacheLookup(CacheRoute, true)
		return cached.Points(), nil
	}
	c.observer.CacheLookup(CacheRoute, false)

	path, err := c.router.Route(ctx, pickup, dropoff)
	if err == nil && !path.IsDrawable() {
		err = errUndrawableRoute
	}
	if err == nil {
		var route delivery.Route
		route, err = delivery.NewRoute(path, kernel.RouteDigest(pickup, dropoff), c.clock.Now())
		if err == nil {
			return route.Points(), &route
		}
	}

	c.observer.ProviderFailure(ProviderRouter)
	c.logger.WarnContext(ctx, "routing degraded, using straight line",
		"pickup", pickup.String(),
		"dropoff", dropoff.String(),
		"error", errs.NewExternalServiceError(ProviderRouter, err))
	return kernel.StraightLine(pickup, dropoff), nil
}
