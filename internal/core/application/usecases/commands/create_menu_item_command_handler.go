package commands

import (
	"context"

	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// CreateMenuItemCommandHandler handles adding items to a restaurant's menu.
// The restaurant must exist and the acting user must be its owner or a
// manager; admins bypass the ownership check.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
// Requires a MenuUoWFactory for transactional persistence.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// Fails with *errs.ObjectNotFoundError if the restaurant is absent and with
// *errs.NotAuthorizedError if the acting user may not edit it.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
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

	owningRestaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() != user.RoleAdmin && !owningRestaurant.CanBeEditedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError(cmd.ActorRole().String(), "menu.create")
	}

	newItem, err := menu.NewMenuItem(
		cmd.MenuItemID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Price(),
		cmd.Category(),
		cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
