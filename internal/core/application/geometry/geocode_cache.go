package geometry

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

var errNoCandidates = errors.New("no candidates")

// GeocodeCache resolves an address against its stored geocode.
type GeocodeCache struct {
	geocoder ports.Geocoder
	observer Observer
	logger   *slog.Logger
}

func NewGeocodeCache(geocoder ports.Geocoder, observer Observer, logger *slog.Logger) *GeocodeCache {
	return &GeocodeCache{
		geocoder: geocoder,
		observer: observerOrNoop(observer),
		logger:   logger.With("component", "geocode-cache"),
	}
}

// Resolve returns the address with a current geocode and whether it changed.
// On a hit the provider is not called. On a provider failure the address is
// returned untouched.
func (c *GeocodeCache) Resolve(ctx context.Context, address delivery.Address) (delivery.Address, bool) {
	if !address.NeedsGeocode() {
		c.observer.CacheLookup(CacheGeocode, true)
		return address, false
	}
	c.observer.CacheLookup(CacheGeocode, false)

	loc, err := c.geocoder.Geocode(ctx, address.Text())
	if err == nil && loc == nil {
		err = errNoCandidates
	}
	if err != nil {
		c.observer.ProviderFailure(ProviderGeocoder)
		c.logger.WarnContext(ctx, "geocoding degraded",
			"address", address.Text(),
			"error", errs.NewExternalServiceError(ProviderGeocoder, err))
		return address, false
	}

	return address.WithGeocode(*loc), true
}
