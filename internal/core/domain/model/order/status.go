package order

import (
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with an explicit transition graph to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	placed ──> preparing ──> ready_for_pickup ──> out_for_delivery ──> delivered
//	   │            │                │                    │
//	   └────────────┴────────────────┴────────────────────┴──> cancelled
//
// delivered and cancelled are terminal: no transition is defined out of them.
// Transitions that skip or reverse the chain are rejected.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned when a customer creates an order.
	Placed

	// Preparing indicates the restaurant has accepted the order and is cooking.
	Preparing

	// ReadyForPickup indicates the order is cooked and waiting for a driver.
	ReadyForPickup

	// OutForDelivery indicates a driver has picked up the order.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned before delivery. Terminal.
	// Cancellation is a status, not a removal: cancelled orders stay in storage.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Placed:         "placed",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "placed",
		Preparing:      "preparing",
		ReadyForPickup: "ready_for_pickup",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getTransitionGraph returns the directed graph of allowed transitions.
// The forward chain moves one step at a time; cancelled is reachable from
// every non-terminal state.
func getTransitionGraph() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Preparing, Cancelled},
		Preparing:      {ReadyForPickup, Cancelled},
		ReadyForPickup: {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// StatusFromString parses a wire representation ("placed", "preparing", ...)
// into a Status. Returns an error for unknown or empty strings.
//
// This function is used when reconstructing orders from persistence and when
// parsing requested statuses from transition requests.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-enum values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire representation of the status.
// Returns "unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the only terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the transition graph permits moving from
// the current status to next, without performing the transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitionGraph()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a transition to next.
//
// Valid transitions follow the graph documented on Status: one forward step
// along the fulfillment chain, or cancellation from any non-terminal state.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, *errs.InvalidStatusTransitionError) if the transition is not allowed,
//     including any transition out of a terminal state
//
// Example:
//
//	newStatus, err := currentStatus.TransitionTo(order.Delivered)
//	if err != nil {
//	    // the order was not out_for_delivery
//	}
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), next.String())
	}
	return next, nil
}
