package queries_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestQueryConstructorsRequireValidIDs(t *testing.T) {
	var unconstructed kernel.UUID

	_, err := queries.NewGetCustomerOrdersQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetDriverOrdersQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetRestaurantOrdersQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetOrderQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetRestaurantQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetRestaurantMenuQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetMenuItemQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetMenuItemReviewsQuery(unconstructed)
	require.Error(t, err)
	_, err = queries.NewGetProfileQuery(unconstructed)
	require.Error(t, err)
}

func TestZeroValueQueriesFailValidate(t *testing.T) {
	require.ErrorIs(t,
		queries.GetAllRestaurantsQuery{}.Validate(),
		queries.ErrGetAllRestaurantsQueryIsNotConstructed,
	)
	require.ErrorIs(t,
		queries.GetPopularMenuItemsQuery{}.Validate(),
		queries.ErrGetPopularMenuItemsQueryIsNotConstructed,
	)
	require.ErrorIs(t,
		queries.GetOrderQuery{}.Validate(),
		queries.ErrGetOrderQueryIsNotConstructed,
	)
}

func TestNewGetNearbyRestaurantsQuery(t *testing.T) {
	t.Run("default_radius_on_non_positive", func(t *testing.T) {
		for _, radius := range []float64{0, -1, -5000} {
			q, err := queries.NewGetNearbyRestaurantsQuery(-73.98, 40.74, radius)
			require.NoError(t, err)
			require.InDelta(t, queries.DefaultMaxDistanceMeters, q.MaxDistanceMeters(), 0.001)
		}
	})

	t.Run("explicit_radius_kept", func(t *testing.T) {
		q, err := queries.NewGetNearbyRestaurantsQuery(-73.98, 40.74, 1200)
		require.NoError(t, err)
		require.InDelta(t, 1200.0, q.MaxDistanceMeters(), 0.001)
	})

	t.Run("out_of_bounds_coordinates_rejected", func(t *testing.T) {
		_, err := queries.NewGetNearbyRestaurantsQuery(-181, 40.74, 0)
		require.Error(t, err)
		_, err = queries.NewGetNearbyRestaurantsQuery(-73.98, 91, 0)
		require.Error(t, err)
	})
}
