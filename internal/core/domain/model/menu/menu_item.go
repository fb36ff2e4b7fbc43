package menu

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through NewMenuItem or RestoreMenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

const (
	// RatingMin is the lowest rating a review may carry.
	RatingMin = 1
	// RatingMax is the highest rating a review may carry.
	RatingMax = 5
)

// MenuItem is the aggregate root for a dish offered by a restaurant.
//
// It carries two groups of state with disjoint writers:
//   - attributes (name, price, category, description, availability) mutated by
//     restaurant staff
//   - rating fields (averageRating, numberOfRatings) mutated only by the
//     rating aggregator as reviews are recorded
//
// Invariant: averageRating is always the arithmetic mean of exactly
// numberOfRatings submitted ratings, each within [RatingMin, RatingMax].
type MenuItem struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        float64
	category     string
	isAvailable  bool

	averageRating   float64
	numberOfRatings int

	isConstructed bool
}

// NewMenuItem creates a menu item that is available by default and has no
// ratings yet. Name is required and price must be positive; category and
// description are optional.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price float64,
	category string,
	description string,
) (*MenuItem, error) {
	item := &MenuItem{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.SetName(name),
		item.SetPrice(price),
	); err != nil {
		return nil, err
	}

	item.category = category
	item.description = description
	return item, nil
}

// RestoreMenuItem reconstructs a menu item from persistence, including its
// rating aggregate state.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	price float64,
	category string,
	description string,
	isAvailable bool,
	averageRating float64,
	numberOfRatings int,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, restaurantID, name, price, category, description)
	if err != nil {
		return nil, err
	}

	if numberOfRatings < 0 {
		return nil, errs.NewValueIsInvalidError("numberOfRatings")
	}

	item.isAvailable = isAvailable
	item.averageRating = averageRating
	item.numberOfRatings = numberOfRatings
	return item, nil
}

// Validate ensures the MenuItem was properly constructed.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the optional dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current price.
func (m *MenuItem) Price() float64 {
	return m.price
}

// Category returns the optional category tag.
func (m *MenuItem) Category() string {
	return m.category
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// AverageRating returns the running mean of all recorded ratings (0 when unrated).
func (m *MenuItem) AverageRating() float64 {
	return m.averageRating
}

// NumberOfRatings returns how many ratings have been recorded.
func (m *MenuItem) NumberOfRatings() int {
	return m.numberOfRatings
}

// SetName changes the dish name. Name must not be empty.
func (m *MenuItem) SetName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

// SetPrice changes the price. Price must be positive.
func (m *MenuItem) SetPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	m.price = price
	return nil
}

// SetCategory changes the category tag.
func (m *MenuItem) SetCategory(category string) {
	m.category = category
}

// SetDescription changes the dish description.
func (m *MenuItem) SetDescription(description string) {
	m.description = description
}

// SetAvailability toggles whether the item can be ordered.
func (m *MenuItem) SetAvailability(available bool) {
	m.isAvailable = available
}

// RecordRating folds one rating into the running mean without re-scanning
// historical reviews: given current (avg, n), the new state is
// avg' = (avg*n + rating) / (n+1) and n' = n+1.
//
// This reproduces the batch mean for any sequence of ratings, up to
// floating-point rounding across orderings. Rating must be an integer within
// [RatingMin, RatingMax].
//
// Persistence note: the repository applies this same arithmetic as a single
// atomic UPDATE so concurrent reviews cannot lose updates; this method is the
// in-memory counterpart used by domain logic and tests.
func (m *MenuItem) RecordRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}

	n := float64(m.numberOfRatings)
	m.averageRating = (m.averageRating*n + float64(rating)) / (n + 1)
	m.numberOfRatings++
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}
