package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

// UpdateRestaurantCommand represents a request to change a restaurant's
// attributes. Empty text fields and nil cuisine/location keep the current
// values, so callers send only what they want changed.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	actorID      kernel.UUID
	actorRole    user.Role
	name         string
	address      string
	phone        string
	cuisine      []string
	openingHours string
	location     *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand creates a command to update a restaurant.
// Validates the restaurant ID and the acting principal; attribute values are
// validated by the aggregate when applied.
func NewUpdateRestaurantCommand(
	restaurantID kernel.UUID,
	actorID kernel.UUID,
	actorRole user.Role,
	name string,
	address string,
	phone string,
	cuisine []string,
	openingHours string,
	location *kernel.GeoPoint,
) (UpdateRestaurantCommand, error) {
	cmd := UpdateRestaurantCommand{
		name:         name,
		address:      address,
		phone:        phone,
		openingHours: openingHours,
		location:     location,
		guard:        guard.NewConstructorGuard(),
	}
	if cuisine != nil {
		cmd.cuisine = make([]string, len(cuisine))
		copy(cmd.cuisine, cuisine)
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return UpdateRestaurantCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateRestaurantCommandIsNotConstructed if validation fails.
func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant being updated.
func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ActorID returns the identifier of the acting user.
func (c UpdateRestaurantCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c UpdateRestaurantCommand) ActorRole() user.Role {
	return c.actorRole
}

// Name returns the new name, or empty to keep the current one.
func (c UpdateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the new address, or empty to keep the current one.
func (c UpdateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the new phone, or empty to keep the current one.
func (c UpdateRestaurantCommand) Phone() string {
	return c.phone
}

// Cuisine returns the new cuisine tags, or nil to keep the current ones.
func (c UpdateRestaurantCommand) Cuisine() []string {
	if c.cuisine == nil {
		return nil
	}
	cuisine := make([]string, len(c.cuisine))
	copy(cuisine, c.cuisine)
	return cuisine
}

// OpeningHours returns the new opening hours, or empty to keep the current ones.
func (c UpdateRestaurantCommand) OpeningHours() string {
	return c.openingHours
}

// Location returns the new location, or nil to keep the current one.
func (c UpdateRestaurantCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *UpdateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *UpdateRestaurantCommand) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
