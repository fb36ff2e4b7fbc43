package services_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrincipal(t *testing.T, role user.Role) services.Principal {
	t.Helper()
	principal, err := services.NewPrincipal(kernel.NewUUID(), role)
	require.NoError(t, err)
	return principal
}

func TestNewPrincipal(t *testing.T) {
	t.Run("valid_principal", func(t *testing.T) {
		principal := newPrincipal(t, user.RoleCustomer)
		require.NoError(t, principal.Validate())
		assert.Equal(t, user.RoleCustomer, principal.Role())
	})

	t.Run("rejects_zero_value_id", func(t *testing.T) {
		_, err := services.NewPrincipal(kernel.UUID{}, user.RoleCustomer)
		require.Error(t, err)
	})

	t.Run("rejects_invalid_role", func(t *testing.T) {
		_, err := services.NewPrincipal(kernel.NewUUID(), user.RoleUnknown)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var principal services.Principal
		require.ErrorIs(t, principal.Validate(), services.ErrPrincipalIsNotConstructed)
	})
}

func TestAccessPolicy_Allows(t *testing.T) {
	policy := services.NewAccessPolicy()

	tests := []struct {
		name    string
		role    user.Role
		action  services.Action
		allowed bool
	}{
		{"owner_creates_restaurant", user.RoleRestaurantOwner, services.ActionRestaurantCreate, true},
		{"admin_creates_restaurant", user.RoleAdmin, services.ActionRestaurantCreate, true},
		{"customer_creates_restaurant", user.RoleCustomer, services.ActionRestaurantCreate, false},
		{"driver_creates_restaurant", user.RoleDeliveryDriver, services.ActionRestaurantCreate, false},

		{"manager_updates_restaurant", user.RoleRestaurantManager, services.ActionRestaurantUpdate, true},
		{"manager_deletes_restaurant", user.RoleRestaurantManager, services.ActionRestaurantDelete, false},

		{"manager_creates_menu_item", user.RoleRestaurantManager, services.ActionMenuCreate, true},
		{"admin_creates_menu_item", user.RoleAdmin, services.ActionMenuCreate, false},

		{"customer_creates_order", user.RoleCustomer, services.ActionOrderCreate, true},
		{"owner_creates_order", user.RoleRestaurantOwner, services.ActionOrderCreate, false},

		{"customer_transitions_order", user.RoleCustomer, services.ActionOrderTransition, false},
		{"driver_transitions_order", user.RoleDeliveryDriver, services.ActionOrderTransition, true},
		{"owner_transitions_order", user.RoleRestaurantOwner, services.ActionOrderTransition, true},
		{"manager_transitions_order", user.RoleRestaurantManager, services.ActionOrderTransition, true},
		{"admin_transitions_order", user.RoleAdmin, services.ActionOrderTransition, false},

		{"driver_lists_driver_orders", user.RoleDeliveryDriver, services.ActionOrderListDriver, true},
		{"customer_lists_driver_orders", user.RoleCustomer, services.ActionOrderListDriver, false},

		{"customer_creates_review", user.RoleCustomer, services.ActionReviewCreate, true},
		{"driver_creates_review", user.RoleDeliveryDriver, services.ActionReviewCreate, false},

		{"customer_manages_favorites", user.RoleCustomer, services.ActionFavoritesManage, true},
		{"admin_manages_favorites", user.RoleAdmin, services.ActionFavoritesManage, false},

		{"any_role_reads_order", user.RoleDeliveryDriver, services.ActionOrderRead, true},
		{"any_role_reads_profile", user.RoleAdmin, services.ActionProfileRead, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, policy.Allows(tc.role, tc.action))
		})
	}

	t.Run("unknown_action_is_denied", func(t *testing.T) {
		assert.False(t, policy.Allows(user.RoleAdmin, services.Action("order.delete")))
	})
}

func TestAccessPolicy_Authorize(t *testing.T) {
	policy := services.NewAccessPolicy()

	t.Run("allowed_action_passes", func(t *testing.T) {
		principal := newPrincipal(t, user.RoleCustomer)
		require.NoError(t, policy.Authorize(principal, services.ActionOrderCreate))
	})

	t.Run("denied_action_returns_not_authorized", func(t *testing.T) {
		principal := newPrincipal(t, user.RoleCustomer)

		err := policy.Authorize(principal, services.ActionOrderTransition)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("unconstructed_principal_fails", func(t *testing.T) {
		var principal services.Principal
		require.Error(t, policy.Authorize(principal, services.ActionProfileRead))
	})
}
