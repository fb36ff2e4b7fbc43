package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a user's request to change their own
// profile. Empty fields keep the current values, so callers send only what
// they want changed.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	userID  kernel.UUID
	name    string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a user profile.
// Validates the user ID; the aggregate enforces the name rule when applied.
func NewUpdateProfileCommand(
	userID kernel.UUID,
	name string,
	phone string,
	address string,
) (UpdateProfileCommand, error) {
	cmd := UpdateProfileCommand{
		name:    name,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return UpdateProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateProfileCommandIsNotConstructed if validation fails.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// UserID returns the identifier of the user being updated.
func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the new name, or empty to keep the current one.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Phone returns the new phone, or empty to keep the current one.
func (c UpdateProfileCommand) Phone() string {
	return c.phone
}

// Address returns the new address, or empty to keep the current one.
func (c UpdateProfileCommand) Address() string {
	return c.address
}

func (c *UpdateProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
