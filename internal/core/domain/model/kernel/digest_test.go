package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressDigest(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, kernel.AddressDigest("221B Baker Street"), kernel.AddressDigest("  221B Baker Street\n"))
	})

	t.Run("changes when text changes", func(t *testing.T) {
		assert.NotEqual(t, kernel.AddressDigest("221B Baker Street"), kernel.AddressDigest("221C Baker Street"))
	})

	t.Run("is never empty", func(t *testing.T) {
		assert.False(t, kernel.AddressDigest("").IsEmpty())
	})
}

func TestRouteDigest(t *testing.T) {
	pickup, err := kernel.NewLocation(52.52, 13.405)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(52.5, 13.45)
	require.NoError(t, err)
	moved, err := kernel.NewLocation(52.5, 13.46)
	require.NoError(t, err)

	key := kernel.RouteDigest(pickup, dropoff)

	assert.Equal(t, key, kernel.RouteDigest(pickup, dropoff))
	assert.NotEqual(t, key, kernel.RouteDigest(pickup, moved))
	assert.NotEqual(t, key, kernel.RouteDigest(dropoff, pickup))
}
