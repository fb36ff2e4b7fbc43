package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Verifies the restaurant and every requested menu item, captures unit prices
// from the menu at order time, and persists the order in "placed" status with
// payment pending.
type CreateOrderCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a CheckoutUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
//
// Fails with *errs.ObjectNotFoundError if the restaurant does not exist, and
// with *errs.ValueIsInvalidError if a requested item is unknown, unavailable
// or belongs to a different restaurant. The total amount is derived inside the
// order aggregate from the captured prices.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	menuRepo := uow.MenuItemRepository()
	lineItems := make([]order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		menuItem, err := menuRepo.Get(ctx, requested.MenuItemID)
		if err != nil {
			// An unknown item makes the request invalid, not the order missing.
			if errors.Is(err, errs.ErrObjectNotFound) {
				return errs.NewValueIsInvalidErrorWithCause("items", err)
			}
			return err
		}

		if !menuItem.IsAvailable() {
			return errs.NewValueIsInvalidError("items: menu item " + menuItem.ID().String() + " is unavailable")
		}
		if !menuItem.RestaurantID().IsEqual(cmd.RestaurantID()) {
			return errs.NewValueIsInvalidError(
				"items: menu item " + menuItem.ID().String() + " does not belong to the restaurant",
			)
		}

		lineItem, err := order.NewLineItem(menuItem.ID(), requested.Quantity, menuItem.Price())
		if err != nil {
			return err
		}
		lineItems = append(lineItems, lineItem)
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		lineItems,
		cmd.DeliveryAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
