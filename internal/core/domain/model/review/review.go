// Package review contains the immutable Review entity.
//
// A review ties a rating to a menu item and to the order it was purchased
// through. Reviews have no update or delete path: once created they are
// append-only history, and their effect on the menu item's rating aggregate
// is applied exactly once when they are recorded.
package review

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not
	// created through the NewReview constructor.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
)

// Review is an immutable record of a customer rating a menu item.
// Rating is an integer within [menu.RatingMin, menu.RatingMax]; the comment is
// optional; the order reference is required and ties the review to a purchase.
type Review struct {
	id         kernel.UUID
	userID     kernel.UUID
	menuItemID kernel.UUID
	orderID    kernel.UUID
	rating     int
	comment    string
	createdAt  time.Time

	isConstructed bool
}

// NewReview creates a review with the current time as its creation timestamp.
func NewReview(
	id kernel.UUID,
	userID kernel.UUID,
	menuItemID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
) (*Review, error) {
	return RestoreReview(id, userID, menuItemID, orderID, rating, comment, time.Now().UTC())
}

// RestoreReview reconstructs a review from persistence with its stored timestamp.
func RestoreReview(
	id kernel.UUID,
	userID kernel.UUID,
	menuItemID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	r := &Review{
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setUserID(userID),
		r.setMenuItemID(menuItemID),
		r.setOrderID(orderID),
		r.setRating(rating),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Review was properly constructed.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// UserID returns the reviewing user's identifier.
func (r *Review) UserID() kernel.UUID {
	return r.userID
}

// MenuItemID returns the reviewed menu item's identifier.
func (r *Review) MenuItemID() kernel.UUID {
	return r.menuItemID
}

// OrderID returns the originating order's identifier.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// Rating returns the submitted rating.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional comment text.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns when the review was recorded.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	r.userID = userID
	return nil
}

func (r *Review) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	r.menuItemID = menuItemID
	return nil
}

func (r *Review) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < menu.RatingMin || rating > menu.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, menu.RatingMin, menu.RatingMax)
	}
	r.rating = rating
	return nil
}
