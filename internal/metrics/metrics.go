// Package metrics exposes prometheus counters for the geometry caches, the
// external providers and delivery transitions.
package metrics

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
)

// Metrics holds the service counters.
type Metrics struct {
	cacheLookups     *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	transitions      *prometheus.CounterVec
	locationPushes   prometheus.Counter
}

// New registers the counters on registerer, or on the default registry when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		cacheLookups: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dispatch_geometry_cache_lookups_total",
			Help: "Geometry cache lookups by cache and result",
		}, []string{"cache", "result"}),
		providerFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dispatch_provider_failures_total",
			Help: "Failed or unusable responses from external geometry providers",
		}, []string{"provider"}),
		transitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dispatch_delivery_transitions_total",
			Help: "Timeline entries written by accepted transitions, by label",
		}, []string{"label"}),
		locationPushes: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dispatch_driver_location_pushes_total",
			Help: "Driver location samples stored",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

// CacheLookup counts a geocode or route cache lookup.
func (m *Metrics) CacheLookup(cache string, hit bool) {
	result := resultMiss
	if hit {
		result = resultHit
	}
	m.cacheLookups.WithLabelValues(cache, result).Inc()
}

// ProviderFailure counts a degraded provider response.
func (m *Metrics) ProviderFailure(provider string) {
	m.providerFailures.WithLabelValues(provider).Inc()
}

// LocationPushed counts a stored driver location sample.
func (m *Metrics) LocationPushed() {
	m.locationPushes.Inc()
}

// CountingPublisher counts status changes before handing them to next.
type CountingPublisher struct {
	next    ports.EventPublisher
	metrics *Metrics
}

func NewCountingPublisher(next ports.EventPublisher, m *Metrics) *CountingPublisher {
	return &CountingPublisher{next: next, metrics: m}
}

func (p *CountingPublisher) Publish(ctx context.Context, changes ...delivery.StatusChanged) {
	for _, c := range changes {
		p.metrics.transitions.WithLabelValues(c.Label.String()).Inc()
	}
	p.next.Publish(ctx, changes...)
}
