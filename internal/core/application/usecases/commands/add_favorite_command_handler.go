package commands

import (
	"context"
)

// AddFavoriteCommandHandler handles adding a menu item to a user's favorites.
//
// The membership change is a conflict-ignoring insert at the store level, so
// concurrent adds of the same item cannot duplicate entries and there is no
// read-modify-write of the whole favorites set.
type AddFavoriteCommandHandler struct {
	uowFactory FavoritesUoWFactory
}

// NewAddFavoriteCommandHandler creates a handler for favorite additions.
// Requires a FavoritesUoWFactory for transactional persistence.
func NewAddFavoriteCommandHandler(uowFactory FavoritesUoWFactory) AddFavoriteCommandHandler {
	return AddFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-favorite command.
// Fails with *errs.ObjectNotFoundError if the user or menu item is absent.
// Adding an existing favorite succeeds without effect.
func (h *AddFavoriteCommandHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) error {
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

	if _, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := userRepo.AddFavorite(ctx, cmd.UserID(), cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
