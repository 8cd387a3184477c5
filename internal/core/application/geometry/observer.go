package geometry

const (
	CacheGeocode = "geocode"
	CacheRoute   = "route"

	ProviderGeocoder = "geocoder"
	ProviderRouter   = "router"
)

// Observer receives cache and provider outcomes, typically for metrics.
type Observer interface {
	CacheLookup(cache string, hit bool)
	ProviderFailure(provider string)
}

type noopObserver struct{}

func (noopObserver) CacheLookup(string, bool) {}
func (noopObserver) ProviderFailure(string)   {}

func observerOrNoop(o Observer) Observer {
	if o == nil {
		return noopObserver{}
	}
	return o
}
