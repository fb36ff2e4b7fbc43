package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is an ordered menu item with its quantity and the unit price
// captured at order time. The captured price shields the order total from
// later menu price changes.
//
// LineItem is an immutable value object; quantity must be at least 1 and the
// unit price must be positive.
type LineItem struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	quantity   int
	unitPrice  float64

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item referencing a menu item.
// Validates that the menu item ID is constructed, quantity >= 1 and unitPrice > 0.
func NewLineItem(menuItemID kernel.UUID, quantity int, unitPrice float64) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// MenuItemID returns the referenced menu item's identifier.
func (li LineItem) MenuItemID() kernel.UUID {
	return li.menuItemID
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// UnitPrice returns the price per unit captured at order time.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.unitPrice
}

func (li *LineItem) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	li.menuItemID = menuItemID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidError("quantity")
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	li.unitPrice = unitPrice
	return nil
}
