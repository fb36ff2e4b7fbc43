package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new restaurant.
// The acting user becomes the restaurant's owner.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	ownerID      kernel.UUID
	name         string
	address      string
	phone        string
	cuisine      []string
	openingHours string
	location     kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
// Name, address and phone are required; cuisine tags and opening hours are
// optional. Field-level validation beyond presence happens in the aggregate.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	address string,
	phone string,
	cuisine []string,
	openingHours string,
	location kernel.GeoPoint,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		name:         name,
		address:      address,
		phone:        phone,
		openingHours: openingHours,
		guard:        guard.NewConstructorGuard(),
	}
	cmd.cuisine = make([]string, len(cuisine))
	copy(cmd.cuisine, cuisine)

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setOwnerID(ownerID),
		cmd.setLocation(location),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestaurantCommandIsNotConstructed if validation fails.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// OwnerID returns the identifier of the owning user.
func (c CreateRestaurantCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Address returns the restaurant address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// Phone returns the restaurant contact phone.
func (c CreateRestaurantCommand) Phone() string {
	return c.phone
}

// Cuisine returns the cuisine tags.
func (c CreateRestaurantCommand) Cuisine() []string {
	cuisine := make([]string, len(c.cuisine))
	copy(cuisine, c.cuisine)
	return cuisine
}

// OpeningHours returns the opening hours description.
func (c CreateRestaurantCommand) OpeningHours() string {
	return c.openingHours
}

// Location returns the restaurant's geographic point.
func (c CreateRestaurantCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateRestaurantCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
