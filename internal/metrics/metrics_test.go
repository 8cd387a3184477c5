package metrics

import (
	"context"
	"testing"

	"dispatch/internal/core/domain/model/delivery"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Collector) float64 {
	t.Helper()

	ch := make(chan prometheus.Metric, 1)
	c.Collect(ch)
	close(ch)
	var total float64
	for m := range ch {
		var out dto.Metric
		require.NoError(t, m.Write(&out))
		total += out.GetCounter().GetValue()
	}
	return total
}

type recordingPublisher struct {
	got []delivery.StatusChanged
}

func (r *recordingPublisher) Publish(_ context.Context, changes ...delivery.StatusChanged) {
	r.got = append(r.got, changes...)
}

func TestMetrics_CacheLookup(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.CacheLookup("geocode", true)
	m.CacheLookup("geocode", false)
	m.CacheLookup("geocode", false)

	assert.InDelta(t, 1, counterValue(t, m.cacheLookups.WithLabelValues("geocode", resultHit)), 0)
	assert.InDelta(t, 2, counterValue(t, m.cacheLookups.WithLabelValues("geocode", resultMiss)), 0)
}

func TestMetrics_ProviderFailureAndPushes(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ProviderFailure("router")
	m.LocationPushed()
	m.LocationPushed()

	assert.InDelta(t, 1, counterValue(t, m.providerFailures.WithLabelValues("router")), 0)
	assert.InDelta(t, 2, counterValue(t, m.locationPushes), 0)
}

func TestNew_ReusesRegisteredCollectors(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := New(registry)
	second := New(registry)

	first.ProviderFailure("geocoder")

	assert.InDelta(t, 1, counterValue(t, second.providerFailures.WithLabelValues("geocoder")), 0)
}

func TestCountingPublisher(t *testing.T) {
	m := New(prometheus.NewRegistry())
	next := &recordingPublisher{}
	p := NewCountingPublisher(next, m)

	p.Publish(t.Context(),
		delivery.StatusChanged{Label: delivery.LabelPickedUp},
		delivery.StatusChanged{Label: delivery.LabelInTransit},
	)

	assert.Len(t, next.got, 2)
	assert.InDelta(t, 1, counterValue(t, m.transitions.WithLabelValues("PICKED_UP")), 0)
	assert.InDelta(t, 1, counterValue(t, m.transitions.WithLabelValues("IN_TRANSIT")), 0)
}
