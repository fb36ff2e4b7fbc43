package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// DeleteRestaurantCommandHandler handles restaurant removal.
// Only the owner may delete a restaurant; admins bypass the ownership check.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant deletion.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant deletion command.
// Fails with *errs.ObjectNotFoundError if the restaurant is absent and with
// *errs.NotAuthorizedError if the acting user is not the owner.
func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if cmd.ActorRole() != user.RoleAdmin && !aggregate.CanBeDeletedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError(cmd.ActorRole().String(), "restaurant.delete")
	}

	if err = restaurantRepo.Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
