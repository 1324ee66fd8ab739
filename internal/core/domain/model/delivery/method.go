package delivery

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Method is the fulfillment method chosen at order placement. It fixes which
// branch of the delivery state fork the record will take: in-store pickups go
// through ready_for_pickup, home deliveries through out_for_delivery.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// HomeDelivery routes the order to a courier; an address is required.
	HomeDelivery

	// InStorePickup holds the order at the branch for the customer.
	InStorePickup
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		HomeDelivery:  "home_delivery",
		InStorePickup: "in_store_pickup",
	}
}

// MethodFromString parses the persisted representation of a method.
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if method != MethodUnknown && str == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method",
		fmt.Errorf("%q is not a valid fulfillment method", s),
	)
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m != HomeDelivery && m != InStorePickup {
		return errs.NewValueIsInvalidErrorWithCause(
			"method",
			fmt.Errorf("%d is not a valid method", m),
		)
	}
	return nil
}

// String returns the persisted name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
