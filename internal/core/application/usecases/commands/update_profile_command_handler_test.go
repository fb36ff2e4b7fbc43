package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/restaurant"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewUpdateProfileCommand(userID, "Alice B", "+1-555-0199", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, userID).Return(testCustomer(userID), nil).Once(),
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *user.User) bool {
			// The empty address keeps the stored value.
			return u.Name() == "Alice B" && u.Phone() == "+1-555-0199" && u.Address() == ""
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateProfileCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewUpdateProfileCommand(userID, "Alice B", "", "")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("user", userID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateProfileCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateRestaurantCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	location, err := kernel.NewGeoPoint(-73.9857, 40.7484)
	require.NoError(t, err)

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(), ownerID,
		"Thai Corner", "12 Baker St", "+1-555-0100",
		[]string{"thai"}, "10:00-22:00", location,
	)
	require.NoError(t, err)

	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *restaurant.Restaurant) bool {
			return r.Name() == "Thai Corner" && r.OwnerID().IsEqual(ownerID) && len(r.ManagerIDs()) == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRestaurantUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRestaurantCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	restaurantRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
