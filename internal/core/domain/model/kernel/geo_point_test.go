package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("valid_coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(-73.9857, 40.7484)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, -73.9857, point.Longitude(), 1e-9)
		assert.InDelta(t, 40.7484, point.Latitude(), 1e-9)
	})

	t.Run("boundary_coordinates", func(t *testing.T) {
		tests := []struct {
			name      string
			longitude float64
			latitude  float64
		}{
			{"min_bounds", kernel.LongitudeMin, kernel.LatitudeMin},
			{"max_bounds", kernel.LongitudeMax, kernel.LatitudeMax},
			{"null_island", 0, 0},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				point, err := kernel.NewGeoPoint(tc.longitude, tc.latitude)
				require.NoError(t, err)
				require.NoError(t, point.Validate())
			})
		}
	})

	t.Run("longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(181, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -90.5)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var point kernel.GeoPoint

		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	first, err := kernel.NewGeoPoint(10.5, 20.5)
	require.NoError(t, err)
	second, err := kernel.NewGeoPoint(10.5, 20.5)
	require.NoError(t, err)
	third, err := kernel.NewGeoPoint(10.5, 21)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
}
