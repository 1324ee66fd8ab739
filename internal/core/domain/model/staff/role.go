package staff

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Role identifies which stage of the fulfillment workflow a principal may
// drive. Customers place and pay for orders; each staff role performs exactly
// one stage.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer places orders, uploads prescriptions, initiates payment.
	RoleCustomer

	// RolePharmacist decides prescription validations.
	RolePharmacist

	// RoleCashier confirms payments.
	RoleCashier

	// RoleWarehouse prepares and hands over deliveries, receives shipments.
	RoleWarehouse

	// RoleManager oversees a branch: work queues, inventory, shipments.
	RoleManager
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleCustomer:   "customer",
		RolePharmacist: "pharmacist",
		RoleCashier:    "cashier",
		RoleWarehouse:  "warehouse",
		RoleManager:    "manager",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a valid role", s),
	)
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String returns the wire name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
