package commands

import (
	"context"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/errs"
)

// UpdateRestaurantCommandHandler handles restaurant attribute updates.
// The acting user must own or manage the restaurant; admins bypass the
// ownership check.
type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateRestaurantCommandHandler creates a handler for restaurant updates.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant update command.
// Fails with *errs.ObjectNotFoundError if the restaurant is absent and with
// *errs.NotAuthorizedError if the acting user may not edit it.
func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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

	if cmd.ActorRole() != user.RoleAdmin && !aggregate.CanBeEditedBy(cmd.ActorID()) {
		return errs.NewNotAuthorizedError(cmd.ActorRole().String(), "restaurant.update")
	}

	if cmd.Name() != "" {
		if err = aggregate.SetName(cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Address() != "" {
		if err = aggregate.SetAddress(cmd.Address()); err != nil {
			return err
		}
	}
	if cmd.Phone() != "" {
		if err = aggregate.SetPhone(cmd.Phone()); err != nil {
			return err
		}
	}
	if cmd.Cuisine() != nil {
		aggregate.SetCuisine(cmd.Cuisine())
	}
	if cmd.OpeningHours() != "" {
		aggregate.SetOpeningHours(cmd.OpeningHours())
	}
	if cmd.Location() != nil {
		if err = aggregate.SetLocation(*cmd.Location()); err != nil {
			return err
		}
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
