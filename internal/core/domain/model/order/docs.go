// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves through placed, preparing, ready_for_pickup, out_for_delivery
// and delivered, with cancelled reachable from every non-terminal status.
// The transition graph is explicit and enforced centrally by Status; the
// aggregate exposes TransitionTo and AssignDriver as the only mutation paths
// besides construction. Orders are never deleted: cancellation is a terminal
// status, not a removal.
package order
