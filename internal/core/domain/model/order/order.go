package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// PaymentStatus tracks whether the order has been paid for.
type PaymentStatus string

const (
	// PaymentPending is the initial payment state of every order.
	PaymentPending PaymentStatus = "pending"
	// PaymentCompleted indicates the payment settled.
	PaymentCompleted PaymentStatus = "completed"
)

// Validate checks the payment status is one of the enumerated values.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentCompleted {
		return errs.NewValueIsInvalidError("paymentStatus")
	}
	return nil
}

// Order is the aggregate root for a customer's purchase. It manages the order
// lifecycle from placement through preparation and delivery to a terminal state.
//
// Order follows these invariants:
//   - Must have valid customer and restaurant references
//   - Must contain at least one line item
//   - Total amount equals the sum of line-item subtotals at creation time
//     and is immutable thereafter
//   - Delivery address is required and non-empty
//   - Status transitions follow the graph defined on Status
//   - Orders are never removed; cancellation is a terminal status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []LineItem

	// totalAmount is derived from items at construction and never recomputed
	totalAmount float64

	status        Status
	paymentStatus PaymentStatus

	// driverID is the assigned delivery driver (nil until one takes the order)
	driverID *kernel.UUID

	deliveryAddress string

	isConstructed bool
}

// NewOrder creates an Order in placed status with pending payment.
// The total amount is computed from the supplied line items, whose unit prices
// must already be captured from the menu.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the ordering customer
//   - restaurantID: the restaurant the order targets
//   - items: at least one validated line item
//   - deliveryAddress: non-empty destination address
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []LineItem,
	deliveryAddress string,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-deriving the
// total: the stored total amount is authoritative for historical orders.
// All stored values are still validated before the aggregate is returned.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []LineItem,
	totalAmount float64,
	status Status,
	paymentStatus PaymentStatus,
	driverID *kernel.UUID,
	deliveryAddress string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryAddress(deliveryAddress),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	o.totalAmount = totalAmount
	o.status = status
	o.paymentStatus = paymentStatus
	o.driverID = driverID
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Called when persisting
// aggregates to prevent bypassing validation via direct struct initialization.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the target restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the ordered line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the order total captured at creation time.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Driver returns the assigned delivery driver's ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// TransitionTo moves the order to the requested status.
//
// The transition must be permitted by the status graph: one forward step along
// placed -> preparing -> ready_for_pickup -> out_for_delivery -> delivered,
// or cancellation from any non-terminal status. Transitions out of delivered
// or cancelled always fail.
//
// Returns *errs.InvalidStatusTransitionError if the move is not allowed.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver records the delivery driver taking the order out for delivery.
// The driver ID must be valid; reassignment overwrites the previous driver.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	o.driverID = &driverID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := 0.0
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	o.totalAmount = total
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = address
	return nil
}
