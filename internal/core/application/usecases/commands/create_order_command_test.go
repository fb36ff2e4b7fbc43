package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validItems := []commands.OrderItemRequest{{MenuItemID: kernel.NewUUID(), Quantity: 1}}

	t.Run("valid_command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validItems, "12 Baker St",
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		require.Len(t, cmd.Items(), 1)
		require.Equal(t, "12 Baker St", cmd.DeliveryAddress())
	})

	t.Run("empty_items_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, "12 Baker St",
		)
		require.ErrorIs(t, err, commands.ErrOrderItemsAreRequired)
	})

	t.Run("zero_quantity_rejected", func(t *testing.T) {
		items := []commands.OrderItemRequest{{MenuItemID: kernel.NewUUID(), Quantity: 0}}
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, "12 Baker St",
		)
		require.ErrorIs(t, err, commands.ErrOrderQuantityIsInvalid)
	})

	t.Run("unconstructed_item_id_rejected", func(t *testing.T) {
		items := []commands.OrderItemRequest{{Quantity: 1}}
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, "12 Baker St",
		)
		require.ErrorIs(t, err, commands.ErrOrderMenuItemIDIsInvalid)
	})

	t.Run("empty_address_rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validItems, "",
		)
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsEmpty)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})

	t.Run("items_accessor_copies", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), validItems, "12 Baker St",
		)
		require.NoError(t, err)
		cmd.Items()[0].Quantity = 99
		require.Equal(t, 1, cmd.Items()[0].Quantity)
	})
}
