package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/menu"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordReviewCommandIsNotConstructed = errors.New(
	"RecordReviewCommand must be created via NewRecordReviewCommand constructor",
)

// RecordReviewCommand represents a customer's request to review a menu item
// they ordered. The originating order ties the review to a purchase.
//
// Example:
//
//	cmd, err := NewRecordReviewCommand(reviewID, userID, menuItemID, orderID, 5, "great pad thai")
//	if err != nil {
//	    return err
//	}
//
//	handler := NewRecordReviewCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to record review: %w", err)
//	}
type RecordReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	userID     kernel.UUID
	menuItemID kernel.UUID
	orderID    kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewRecordReviewCommand creates a command to record a review.
// Validates all identifiers and that the rating is an integer in [1, 5].
// The comment is optional.
func NewRecordReviewCommand(
	reviewID kernel.UUID,
	userID kernel.UUID,
	menuItemID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
) (RecordReviewCommand, error) {
	cmd := RecordReviewCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setReviewID(reviewID),
		cmd.setUserID(userID),
		cmd.setMenuItemID(menuItemID),
		cmd.setOrderID(orderID),
		cmd.setRating(rating),
	); err != nil {
		return RecordReviewCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordReviewCommandIsNotConstructed if validation fails.
func (c RecordReviewCommand) Validate() error {
	return c.guard.Validate(ErrRecordReviewCommandIsNotConstructed)
}

// ReviewID returns the unique identifier for the new review.
func (c RecordReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// UserID returns the identifier of the reviewing user.
func (c RecordReviewCommand) UserID() kernel.UUID {
	return c.userID
}

// MenuItemID returns the identifier of the reviewed menu item.
func (c RecordReviewCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// OrderID returns the identifier of the originating order.
func (c RecordReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Rating returns the submitted rating.
func (c RecordReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional comment text.
func (c RecordReviewCommand) Comment() string {
	return c.comment
}

func (c *RecordReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *RecordReviewCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RecordReviewCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *RecordReviewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordReviewCommand) setRating(rating int) error {
	if rating < menu.RatingMin || rating > menu.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, menu.RatingMin, menu.RatingMax)
	}

	c.rating = rating
	return nil
}
