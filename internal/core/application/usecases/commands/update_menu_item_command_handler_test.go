package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateMenuItemCommandHandler_Handle_ManagerCanEdit(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	managerID := kernel.NewUUID()
	owning := testRestaurant(ownerID)
	require.NoError(t, owning.AddManager(managerID))
	itemID := kernel.NewUUID()
	item := testMenuItem(itemID, owning.ID(), 10, true)

	newPrice := 11.50
	unavailable := false
	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, managerID, user.RoleRestaurantManager,
		"", &newPrice, "", "", &unavailable,
	)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, itemID).Return(item, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, owning.ID()).Return(owning, nil).Once(),
		menuRepo.On("Update", mock.Anything, mock.MatchedBy(func(m *menu.MenuItem) bool {
			return m.Price() == 11.50 && !m.IsAvailable()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	menuRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_StrangerDenied(t *testing.T) {
	ctx := t.Context()
	owning := testRestaurant(kernel.NewUUID())
	itemID := kernel.NewUUID()
	item := testMenuItem(itemID, owning.ID(), 10, true)

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, kernel.NewUUID(), user.RoleRestaurantManager,
		"Fried Rice", nil, "", "", nil,
	)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, itemID).Return(item, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, owning.ID()).Return(owning, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_OwnerCreates(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owning := testRestaurant(ownerID)

	cmd, err := commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), owning.ID(), ownerID, user.RoleRestaurantOwner,
		"Green Curry", 13.00, "mains", "spicy",
	)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Get", mock.Anything, owning.ID()).Return(owning, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", mock.Anything, mock.MatchedBy(func(m *menu.MenuItem) bool {
			return m.Name() == "Green Curry" && m.IsAvailable() && m.NumberOfRatings() == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
