package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add an item to a restaurant's
// menu. The acting user must be able to edit the restaurant.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID   kernel.UUID
	restaurantID kernel.UUID
	actorID      kernel.UUID
	actorRole    user.Role
	name         string
	price        float64
	category     string
	description  string

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates identifiers and the acting principal; name and price rules are
// enforced by the aggregate.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID,
	restaurantID kernel.UUID,
	actorID kernel.UUID,
	actorRole user.Role,
	name string,
	price float64,
	category string,
	description string,
) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		name:        name,
		price:       price,
		category:    category,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMenuItemID(menuItemID),
		cmd.setRestaurantID(restaurantID),
		cmd.setActor(actorID, actorRole),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateMenuItemCommandIsNotConstructed if validation fails.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the unique identifier for the new menu item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// RestaurantID returns the identifier of the owning restaurant.
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// ActorID returns the identifier of the acting user.
func (c CreateMenuItemCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role of the acting user.
func (c CreateMenuItemCommand) ActorRole() user.Role {
	return c.actorRole
}

// Name returns the menu item name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Price returns the menu item price.
func (c CreateMenuItemCommand) Price() float64 {
	return c.price
}

// Category returns the menu item category.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// Description returns the menu item description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateMenuItemCommand) setActor(actorID kernel.UUID, actorRole user.Role) error {
	if err := errors.Join(actorID.Validate(), actorRole.Validate()); err != nil {
		return err
	}

	c.actorID = actorID
	c.actorRole = actorRole
	return nil
}
