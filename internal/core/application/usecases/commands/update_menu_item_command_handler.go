package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// UpdateMenuItemCommandHandler handles menu item attribute updates.
// The acting user must be able to edit the owning restaurant; admins bypass
// the ownership check. Only attribute fields are written; the rating
// aggregate is untouched so staff edits cannot race with review recording.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
// Requires a MenuUoWFactory for transactional persistence.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command.
// Fails with *errs.ObjectNotFoundError if the item or its restaurant is
// absent and with *errs.NotAuthorizedError if the acting user may not edit it.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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
		return errs.NewNotAuthorizedError(cmd.ActorRole().String(), "menu.update")
	}

	if cmd.Name() != "" {
		if err = item.SetName(cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Price() != nil {
		if err = item.SetPrice(*cmd.Price()); err != nil {
			return err
		}
	}
	if cmd.Category() != "" {
		item.SetCategory(cmd.Category())
	}
	if cmd.Description() != "" {
		item.SetDescription(cmd.Description())
	}
	if cmd.IsAvailable() != nil {
		item.SetAvailability(*cmd.IsAvailable())
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
