// Package restaurant contains the Restaurant aggregate.
//
// A restaurant is owned by a single user and may list additional managers.
// Owner and managers are the only principals allowed to mutate it, and only
// the owner may delete it; admins override both checks at the application layer.
package restaurant

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was
	// not created through NewRestaurant or RestoreRestaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant is the aggregate root for a listed restaurant, including its
// staffing (owner and managers), contact details and geographic location used
// for nearby lookups. The aggregate rating is a derived value refreshed in the
// background from menu item ratings; it is never mutated through this type.
type Restaurant struct {
	id           kernel.UUID
	ownerID      kernel.UUID
	managerIDs   []kernel.UUID
	name         string
	address      string
	phone        string
	cuisine      []string
	openingHours string
	rating       float64
	location     kernel.GeoPoint

	isConstructed bool
}

// NewRestaurant creates a restaurant with no managers and a zero rating.
// Name, address and phone are required; the location must be a constructed
// geo point.
func NewRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	address string,
	phone string,
	cuisine []string,
	openingHours string,
	location kernel.GeoPoint,
) (*Restaurant, error) {
	r := &Restaurant{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setOwnerID(ownerID),
		r.SetName(name),
		r.SetAddress(address),
		r.SetPhone(phone),
		r.SetLocation(location),
	); err != nil {
		return nil, err
	}

	r.SetCuisine(cuisine)
	r.openingHours = openingHours
	return r, nil
}

// RestoreRestaurant reconstructs a restaurant from persistence, including its
// manager set and derived rating.
func RestoreRestaurant(
	id kernel.UUID,
	ownerID kernel.UUID,
	managerIDs []kernel.UUID,
	name string,
	address string,
	phone string,
	cuisine []string,
	openingHours string,
	rating float64,
	location kernel.GeoPoint,
) (*Restaurant, error) {
	r, err := NewRestaurant(id, ownerID, name, address, phone, cuisine, openingHours, location)
	if err != nil {
		return nil, err
	}

	for _, managerID := range managerIDs {
		if err := r.AddManager(managerID); err != nil {
			return nil, err
		}
	}

	r.rating = rating
	return r, nil
}

// Validate ensures the Restaurant was properly constructed.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// OwnerID returns the owning user's identifier.
func (r *Restaurant) OwnerID() kernel.UUID {
	return r.ownerID
}

// ManagerIDs returns a copy of the manager identifier set.
func (r *Restaurant) ManagerIDs() []kernel.UUID {
	managers := make([]kernel.UUID, len(r.managerIDs))
	copy(managers, r.managerIDs)
	return managers
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// Phone returns the contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// Cuisine returns a copy of the cuisine tags.
func (r *Restaurant) Cuisine() []string {
	cuisine := make([]string, len(r.cuisine))
	copy(cuisine, r.cuisine)
	return cuisine
}

// OpeningHours returns the human-readable opening hours.
func (r *Restaurant) OpeningHours() string {
	return r.openingHours
}

// Rating returns the derived aggregate rating (0 when unrated).
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// Location returns the restaurant's geographic point.
func (r *Restaurant) Location() kernel.GeoPoint {
	return r.location
}

// IsOwnedBy reports whether the given user owns the restaurant.
func (r *Restaurant) IsOwnedBy(userID kernel.UUID) bool {
	return r.ownerID.IsEqual(userID)
}

// IsManagedBy reports whether the given user is in the manager set.
func (r *Restaurant) IsManagedBy(userID kernel.UUID) bool {
	for _, managerID := range r.managerIDs {
		if managerID.IsEqual(userID) {
			return true
		}
	}
	return false
}

// CanBeEditedBy reports whether the given user may mutate the restaurant.
// Only the owner and managers qualify; role-level overrides (admin) are the
// application layer's concern.
func (r *Restaurant) CanBeEditedBy(userID kernel.UUID) bool {
	return r.IsOwnedBy(userID) || r.IsManagedBy(userID)
}

// CanBeDeletedBy reports whether the given user may delete the restaurant.
// Only the owner qualifies.
func (r *Restaurant) CanBeDeletedBy(userID kernel.UUID) bool {
	return r.IsOwnedBy(userID)
}

// AddManager adds a user to the manager set. Idempotent: adding an existing
// manager is a no-op. The owner cannot be added as a manager.
func (r *Restaurant) AddManager(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return err
	}
	if r.IsOwnedBy(managerID) || r.IsManagedBy(managerID) {
		return nil
	}

	r.managerIDs = append(r.managerIDs, managerID)
	return nil
}

// RemoveManager removes a user from the manager set. No-op if absent.
func (r *Restaurant) RemoveManager(managerID kernel.UUID) {
	for i, id := range r.managerIDs {
		if id.IsEqual(managerID) {
			r.managerIDs = append(r.managerIDs[:i], r.managerIDs[i+1:]...)
			return
		}
	}
}

// SetName changes the restaurant name. Name must not be empty.
func (r *Restaurant) SetName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

// SetAddress changes the street address. Address must not be empty.
func (r *Restaurant) SetAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

// SetPhone changes the contact phone. Phone must not be empty.
func (r *Restaurant) SetPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	r.phone = phone
	return nil
}

// SetCuisine replaces the cuisine tags.
func (r *Restaurant) SetCuisine(cuisine []string) {
	r.cuisine = make([]string, len(cuisine))
	copy(r.cuisine, cuisine)
}

// SetOpeningHours changes the opening hours text.
func (r *Restaurant) SetOpeningHours(openingHours string) {
	r.openingHours = openingHours
}

// SetLocation changes the geographic point. The point must be constructed.
func (r *Restaurant) SetLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	r.ownerID = ownerID
	return nil
}
