package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler handles menu item removal.
// The acting user must be able to edit the owning restaurant; admins bypass
// the ownership check.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
// Requires a MenuUoWFactory for transactional persistence.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item deletion command.
// Fails with *errs.ObjectNotFoundError if the item or its restaurant is
// absent and with *errs.NotAuthorizedError if the acting user may not edit it.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	menuRepo := uow.MenuItemRepository()
	item, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	owningRestaurant, err := uow.RestaurantRepository().Get(ctx, item.RestaurantID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() != user.RoleAdmin && !owningRestaurant.CanBeEditedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError(cmd.ActorRole().String(), "menu.delete")
	}

	if err = menuRepo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
