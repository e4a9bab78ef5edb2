package order

import (
	"fmt"

	"haulix/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order.
//
// The recommended transition graph is:
//
//	pending ──> confirmed ──> paid ──> in_transit ──> delivered
//	   │            │          │           │
//	   └────────────┴──────────┴───────────┴──> cancelled
//
// delivered and cancelled are terminal. The graph is a policy, not a hard
// data-layer invariant: administrators may set any valid status at any time,
// and callers opt into the graph through ValidateTransition.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status assigned at order creation.
	StatusPending

	// StatusConfirmed indicates the order has been reviewed and accepted.
	StatusConfirmed

	// StatusPaid indicates payment has been recorded for the order.
	StatusPaid

	// StatusInTransit indicates the package is moving through the network.
	StatusInTransit

	// StatusDelivered indicates the package reached the recipient. Terminal.
	StatusDelivered

	// StatusCancelled is an absorbing terminal state reachable from any
	// non-terminal status. Orders are cancelled, never deleted.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPaid:      "paid",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusConfirmed: "confirmed",
		StatusPaid:      "paid",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for any string outside the enum.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status value is a member of the enum.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are recommended from s.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateTransition checks next against the recommended transition graph.
// Forward steps follow pending -> confirmed -> paid -> in_transit ->
// delivered; cancelled is reachable from every non-terminal status.
//
// This is an opt-in policy check: the aggregate itself accepts any valid
// enum member so that administrative overrides remain possible.
func (s Status) ValidateTransition(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next))
	}

	if next == StatusCancelled {
		return nil
	}

	allowed := map[Status]Status{
		StatusPending:   StatusConfirmed,
		StatusConfirmed: StatusPaid,
		StatusPaid:      StatusInTransit,
		StatusInTransit: StatusDelivered,
	}
	if allowed[s] != next {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s cannot transition to %s", s, next))
	}
	return nil
}
