package delivery

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status represents the fulfillment state of a delivery record.
//
// State transitions:
//
//	pending ──> preparing ──┬──> ready_for_pickup ──┐
//	                        │                       ├──> completed
//	                        └──> out_for_delivery ──┘
//
// The middle fork is fixed by the fulfillment method: in_store_pickup may only
// go through ready_for_pickup, home_delivery only through out_for_delivery.
// Reaching completed is the sole trigger that also completes the parent order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state, set when the order is placed.
	StatusPending

	// StatusPreparing means payment is confirmed and the warehouse is
	// assembling the order.
	StatusPreparing

	// StatusReadyForPickup means an in-store pickup awaits the customer.
	StatusReadyForPickup

	// StatusOutForDelivery means a home delivery has left the branch.
	StatusOutForDelivery

	// StatusCompleted means the order was handed over. Final state.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusPreparing:      "preparing",
		StatusReadyForPickup: "ready_for_pickup",
		StatusOutForDelivery: "out_for_delivery",
		StatusCompleted:      "completed",
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether moving to target is a valid edge of the
// delivery graph for the given fulfillment method.
func (s Status) CanTransitionTo(target Status, method Method) error {
	valid := false
	switch s {
	case StatusPending:
		valid = target == StatusPreparing
	case StatusPreparing:
		switch method {
		case InStorePickup:
			valid = target == StatusReadyForPickup
		case HomeDelivery:
			valid = target == StatusOutForDelivery
		}
	case StatusReadyForPickup, StatusOutForDelivery:
		valid = target == StatusCompleted
	}

	if !valid {
		return errs.NewConflictErrorWithCause(
			"status",
			s.String(),
			fmt.Errorf("transition from %s to %s is not allowed for %s", s, target, method),
		)
	}
	return nil
}
