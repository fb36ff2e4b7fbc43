package commands

import (
	"context"

	"marketplace/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles restaurant registration.
// The aggregate validates required fields; the acting user is persisted as owner.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
// Requires a RestaurantUoWFactory for transactional persistence.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant creation command.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newRestaurant, err := restaurant.NewRestaurant(
		cmd.RestaurantID(),
		cmd.OwnerID(),
		cmd.Name(),
		cmd.Address(),
		cmd.Phone(),
		cmd.Cuisine(),
		cmd.OpeningHours(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, newRestaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
