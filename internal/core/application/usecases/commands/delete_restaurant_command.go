package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents a request to remove a restaurant.
// Only the owner (or an admin) may delete; managers may not.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	actorID      kernel.UUID
	actorRole    user.Role

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to delete a restaurant.
// Validates the restaurant ID and acting principal.
func NewDeleteRestaurantCommand(
	restaurantID kernel.UUID,
	actorID kernel.UUID,
	actorRole user.Role,
) (DeleteRestaurantCommand, error) {
	cmd := DeleteRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteRestaurantCommandIsNotConstructed if validation fails.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being deleted.
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ActorID returns the identifier of the acting user.
func (c DeleteRestaurantCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c DeleteRestaurantCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *DeleteRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *DeleteRestaurantCommand) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
