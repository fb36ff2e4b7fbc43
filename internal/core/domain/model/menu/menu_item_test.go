package menu_test

import (
	"math/rand/v2"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMenuItem(t *testing.T) *menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", 12.5, "pizza", "")
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("valid_item", func(t *testing.T) {
		item := newTestMenuItem(t)

		require.NoError(t, item.Validate())
		assert.True(t, item.IsAvailable())
		assert.Zero(t, item.AverageRating())
		assert.Zero(t, item.NumberOfRatings())
	})

	t.Run("requires_name", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "", 12.5, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("requires_positive_price", func(t *testing.T) {
		_, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Margherita", 0, "", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item *menu.MenuItem
		require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
		require.ErrorIs(t, (&menu.MenuItem{}).Validate(), menu.ErrMenuItemIsNotConstructed)
	})
}

func TestMenuItem_Setters(t *testing.T) {
	item := newTestMenuItem(t)

	require.NoError(t, item.SetName("Quattro Formaggi"))
	require.NoError(t, item.SetPrice(14))
	item.SetCategory("pizza")
	item.SetAvailability(false)

	assert.Equal(t, "Quattro Formaggi", item.Name())
	assert.InDelta(t, 14.0, item.Price(), 1e-9)
	assert.False(t, item.IsAvailable())

	require.Error(t, item.SetName(""))
	require.Error(t, item.SetPrice(-1))
}

func TestMenuItem_RecordRating(t *testing.T) {
	t.Run("single_rating_becomes_the_mean", func(t *testing.T) {
		item := newTestMenuItem(t)

		require.NoError(t, item.RecordRating(4))

		assert.InDelta(t, 4.0, item.AverageRating(), 1e-9)
		assert.Equal(t, 1, item.NumberOfRatings())
	})

	t.Run("incremental_mean_matches_batch_mean", func(t *testing.T) {
		item := newTestMenuItem(t)
		ratings := []int{5, 3, 4, 1, 2, 5, 5, 4}

		sum := 0
		for _, r := range ratings {
			require.NoError(t, item.RecordRating(r))
			sum += r
		}

		assert.Equal(t, len(ratings), item.NumberOfRatings())
		assert.InDelta(t, float64(sum)/float64(len(ratings)), item.AverageRating(), 1e-9)
	})

	t.Run("random_sequences_match_batch_mean", func(t *testing.T) {
		for range 20 {
			item := newTestMenuItem(t)
			n := rand.IntN(100) + 1

			sum := 0
			for range n {
				r := rand.IntN(menu.RatingMax-menu.RatingMin+1) + menu.RatingMin
				require.NoError(t, item.RecordRating(r))
				sum += r
			}

			assert.Equal(t, n, item.NumberOfRatings())
			assert.InDelta(t, float64(sum)/float64(n), item.AverageRating(), 1e-9)
		}
	})

	t.Run("rejects_out_of_range_ratings", func(t *testing.T) {
		item := newTestMenuItem(t)

		require.ErrorIs(t, item.RecordRating(0), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, item.RecordRating(6), errs.ErrValueIsOutOfRange)
		assert.Zero(t, item.NumberOfRatings())
	})
}

func TestRestoreMenuItem(t *testing.T) {
	t.Run("restores_rating_state", func(t *testing.T) {
		id := kernel.NewUUID()
		restaurantID := kernel.NewUUID()

		item, err := menu.RestoreMenuItem(id, restaurantID, "Carbonara", 11, "pasta", "classic", false, 4.25, 8)

		require.NoError(t, err)
		assert.False(t, item.IsAvailable())
		assert.InDelta(t, 4.25, item.AverageRating(), 1e-9)
		assert.Equal(t, 8, item.NumberOfRatings())
	})

	t.Run("rejects_negative_rating_count", func(t *testing.T) {
		_, err := menu.RestoreMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Carbonara", 11, "", "", true, 4, -1)
		require.Error(t, err)
	})
}
