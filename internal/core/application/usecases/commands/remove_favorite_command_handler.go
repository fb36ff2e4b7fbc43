package commands

import (
	"context"
)

// RemoveFavoriteCommandHandler handles removing a menu item from a user's
// favorites. The removal is an atomic delete of the membership row; removing
// an item that is not a favorite succeeds without effect.
type RemoveFavoriteCommandHandler struct {
	uowFactory FavoritesUoWFactory
}

// NewRemoveFavoriteCommandHandler creates a handler for favorite removals.
// Requires a FavoritesUoWFactory for transactional persistence.
func NewRemoveFavoriteCommandHandler(uowFactory FavoritesUoWFactory) RemoveFavoriteCommandHandler {
	return RemoveFavoriteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-favorite command.
// Fails with *errs.ObjectNotFoundError if the user is absent. The menu item
// is not required to still exist; a stale favorite can always be removed.
func (h *RemoveFavoriteCommandHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) error {
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

	userRepo := uow.UserRepository()
	if _, err := userRepo.Get(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err := userRepo.RemoveFavorite(ctx, cmd.UserID(), cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
