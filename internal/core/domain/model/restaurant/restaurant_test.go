package restaurant_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRestaurant(t *testing.T, ownerID kernel.UUID) *restaurant.Restaurant {
	t.Helper()
	location, err := kernel.NewGeoPoint(13.405, 52.52)
	require.NoError(t, err)
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), ownerID, "Trattoria Roma", "1 Alexanderplatz", "+49301234567",
		[]string{"italian", "pizza"}, "10:00-22:00", location,
	)
	require.NoError(t, err)
	return r
}

func TestNewRestaurant(t *testing.T) {
	t.Run("valid_restaurant", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		r := newTestRestaurant(t, ownerID)

		require.NoError(t, r.Validate())
		assert.True(t, r.IsOwnedBy(ownerID))
		assert.Empty(t, r.ManagerIDs())
		assert.Zero(t, r.Rating())
		assert.Equal(t, []string{"italian", "pizza"}, r.Cuisine())
	})

	t.Run("required_fields", func(t *testing.T) {
		location, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)

		_, err = restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "", "addr", "phone", nil, "", location)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "name", "", "phone", nil, "", location)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "name", "addr", "", nil, "", location)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_location_rejected", func(t *testing.T) {
		var location kernel.GeoPoint
		_, err := restaurant.NewRestaurant(
			kernel.NewUUID(), kernel.NewUUID(), "name", "addr", "phone", nil, "", location)
		require.Error(t, err)
	})
}

func TestRestaurant_Managers(t *testing.T) {
	ownerID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	r := newTestRestaurant(t, ownerID)

	t.Run("add_manager_is_idempotent", func(t *testing.T) {
		require.NoError(t, r.AddManager(managerID))
		require.NoError(t, r.AddManager(managerID))

		assert.Len(t, r.ManagerIDs(), 1)
		assert.True(t, r.IsManagedBy(managerID))
	})

	t.Run("owner_is_not_added_as_manager", func(t *testing.T) {
		require.NoError(t, r.AddManager(ownerID))
		assert.Len(t, r.ManagerIDs(), 1)
	})

	t.Run("remove_manager", func(t *testing.T) {
		r.RemoveManager(managerID)
		assert.False(t, r.IsManagedBy(managerID))

		// removing an absent manager is a no-op
		r.RemoveManager(managerID)
		assert.Empty(t, r.ManagerIDs())
	})
}

func TestRestaurant_Permissions(t *testing.T) {
	ownerID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	strangerID := kernel.NewUUID()

	r := newTestRestaurant(t, ownerID)
	require.NoError(t, r.AddManager(managerID))

	assert.True(t, r.CanBeEditedBy(ownerID))
	assert.True(t, r.CanBeEditedBy(managerID))
	assert.False(t, r.CanBeEditedBy(strangerID))

	assert.True(t, r.CanBeDeletedBy(ownerID))
	assert.False(t, r.CanBeDeletedBy(managerID))
	assert.False(t, r.CanBeDeletedBy(strangerID))
}

func TestRestoreRestaurant(t *testing.T) {
	ownerID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(2.3522, 48.8566)
	require.NoError(t, err)

	r, err := restaurant.RestoreRestaurant(
		kernel.NewUUID(), ownerID, []kernel.UUID{managerID},
		"Chez Paul", "5 Rue de Rivoli", "+33123456789",
		[]string{"french"}, "12:00-23:00", 4.6, location,
	)

	require.NoError(t, err)
	assert.True(t, r.IsManagedBy(managerID))
	assert.InDelta(t, 4.6, r.Rating(), 1e-9)
}
