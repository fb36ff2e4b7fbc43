package commands_test

import (
	"errors"
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	stored := testOrder(orderID, userID, order.Delivered)

	cmd, err := commands.NewRecordReviewCommand(
		kernel.NewUUID(), userID, menuItemID, orderID, 5, "great pad thai",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("ApplyRating", mock.Anything, menuItemID, 5).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", mock.Anything, mock.MatchedBy(func(r *review.Review) bool {
			return r.Rating() == 5 && r.OrderID().IsEqual(orderID)
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	popular := new(MockPopularItemsInvalidator)
	popular.On("Invalidate", ctx).Return(nil).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordReviewCommandHandler(factory, popular)
	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	popular.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRecordReviewCommandHandler_Handle_MenuItemNotFound(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	stored := testOrder(orderID, userID, order.Delivered)

	cmd, err := commands.NewRecordReviewCommand(
		kernel.NewUUID(), userID, menuItemID, orderID, 3, "",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("ApplyRating", mock.Anything, menuItemID, 3).
			Return(errs.NewObjectNotFoundError("menuItemID", menuItemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordReviewCommandHandler(factory, new(MockPopularItemsInvalidator))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRecordReviewCommandHandler_Handle_InvalidateFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	stored := testOrder(orderID, userID, order.Delivered)

	cmd, err := commands.NewRecordReviewCommand(
		kernel.NewUUID(), userID, kernel.NewUUID(), orderID, 4, "",
	)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	menuRepo := new(MockMenuItemRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(stored, nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("ApplyRating", mock.Anything, mock.Anything, 4).Return(nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	popular := new(MockPopularItemsInvalidator)
	popular.On("Invalidate", ctx).Return(errors.New("redis down")).Once()

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordReviewCommandHandler(factory, popular)
	require.NoError(t, h.Handle(ctx, cmd))
	popular.AssertExpectations(t)
	uow.AssertExpectations(t)
}
