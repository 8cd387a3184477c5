package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid location", lat: 40.7128, lng: -74.0060},
		{name: "valid at min bounds", lat: kernel.LatitudeMin, lng: kernel.LongitudeMin},
		{name: "valid at max bounds", lat: kernel.LatitudeMax, lng: kernel.LongitudeMax},
		{name: "latitude too small", lat: -90.5, lng: 0, wantErr: true},
		{name: "latitude too large", lat: 90.5, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.1, wantErr: true},
		{name: "longitude too large", lat: 0, lng: 180.1, wantErr: true},
		{name: "latitude NaN", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.lat, tt.lng)

			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Equal(t, kernel.Location{}, loc)
				return
			}

			require.NoError(t, err)
			require.NoError(t, loc.Validate())
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-9)
		})
	}

	t.Run("both coordinates invalid reports both", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
		assert.Contains(t, err.Error(), "lng")
	})
}

func TestLocation_Validate(t *testing.T) {
	var zero kernel.Location

	require.ErrorIs(t, zero.Validate(), kernel.ErrLocationIsNotConstructed)
}

func TestLocation_Pair(t *testing.T) {
	loc, err := kernel.NewLocation(51.5, -0.12)
	require.NoError(t, err)

	assert.Equal(t, [2]float64{51.5, -0.12}, loc.Pair())
	assert.Equal(t, "Location(51.5,-0.12)", loc.String())
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(1.5, 2.5)
	b, _ := kernel.NewLocation(1.5, 2.5)
	c, _ := kernel.NewLocation(1.5, 2.6)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestLocation_DistanceMeters(t *testing.T) {
	t.Run("zero for same point", func(t *testing.T) {
		a, _ := kernel.NewLocation(10, 10)

		d, err := a.DistanceMeters(a)

		require.NoError(t, err)
		assert.InDelta(t, 0, d, 1e-6)
	})

	t.Run("one degree of latitude is about 111 km", func(t *testing.T) {
		a, _ := kernel.NewLocation(0, 0)
		b, _ := kernel.NewLocation(1, 0)

		d, err := a.DistanceMeters(b)

		require.NoError(t, err)
		assert.InDelta(t, 111195, d, 50)
	})
}
