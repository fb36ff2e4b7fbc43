package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Preparing, kernel.NewUUID(), user.RoleRestaurantOwner,
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Equal(t, order.Preparing, cmd.Next())
		require.Equal(t, user.RoleRestaurantOwner, cmd.ActorRole())
	})

	t.Run("unknown_status_rejected", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Unknown, kernel.NewUUID(), user.RoleRestaurantOwner,
		)
		require.Error(t, err)
	})

	t.Run("unknown_role_rejected", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(
			kernel.NewUUID(), order.Preparing, kernel.NewUUID(), user.RoleUnknown,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	})
}
