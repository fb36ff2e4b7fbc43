// Package user contains the User aggregate, its Role enumeration and the
// favorites set semantics.
package user

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the aggregate root for an account profile. Favorites form a unique,
// unordered set of menu item references; add and remove are idempotent.
type User struct {
	id          kernel.UUID
	name        string
	phone       string
	address     string
	role        Role
	favoriteIDs []kernel.UUID

	isConstructed bool
}

// NewUser creates a user with an empty favorites set.
// Name is required; phone and address are optional profile fields.
func NewUser(id kernel.UUID, name string, phone string, address string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	u.role = role
	u.phone = phone
	u.address = address
	return u, nil
}

// RestoreUser reconstructs a user from persistence with their favorites set.
func RestoreUser(
	id kernel.UUID,
	name string,
	phone string,
	address string,
	role Role,
	favoriteIDs []kernel.UUID,
) (*User, error) {
	u, err := NewUser(id, name, phone, address, role)
	if err != nil {
		return nil, err
	}

	for _, favoriteID := range favoriteIDs {
		if err := u.AddFavorite(favoriteID); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// Validate ensures the User was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Address returns the default delivery address.
func (u *User) Address() string {
	return u.address
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// Favorites returns a copy of the favorite menu item identifiers.
func (u *User) Favorites() []kernel.UUID {
	favorites := make([]kernel.UUID, len(u.favoriteIDs))
	copy(favorites, u.favoriteIDs)
	return favorites
}

// IsFavorite reports whether the menu item is in the favorites set.
func (u *User) IsFavorite(menuItemID kernel.UUID) bool {
	for _, id := range u.favoriteIDs {
		if id.IsEqual(menuItemID) {
			return true
		}
	}
	return false
}

// AddFavorite inserts a menu item into the favorites set.
// Idempotent: adding an item that is already present is a no-op.
func (u *User) AddFavorite(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	if u.IsFavorite(menuItemID) {
		return nil
	}

	u.favoriteIDs = append(u.favoriteIDs, menuItemID)
	return nil
}

// RemoveFavorite removes a menu item from the favorites set.
// Idempotent: removing an absent item is a no-op.
func (u *User) RemoveFavorite(menuItemID kernel.UUID) {
	for i, id := range u.favoriteIDs {
		if id.IsEqual(menuItemID) {
			u.favoriteIDs = append(u.favoriteIDs[:i], u.favoriteIDs[i+1:]...)
			return
		}
	}
}

// UpdateProfile applies a partial profile update: empty fields keep their
// current values, matching the contract of the profile endpoint.
func (u *User) UpdateProfile(name string, phone string, address string) error {
	if name != "" {
		if err := u.setName(name); err != nil {
			return err
		}
	}
	if phone != "" {
		u.phone = phone
	}
	if address != "" {
		u.address = address
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}
