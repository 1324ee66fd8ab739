package services

import (
	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/pkg/errs"
)

// Operation names a boundary operation of the fulfillment workflow.
// The values double as stable identifiers in authorization errors and logs.
type Operation string

const (
	OpPlaceOrder           Operation = "order.place"
	OpCancelOrder          Operation = "order.cancel"
	OpViewOrder            Operation = "order.view"
	OpSubmitPrescription   Operation = "prescription.submit"
	OpDecidePrescription   Operation = "prescription.decide"
	OpViewValidationQueue  Operation = "prescription.queue"
	OpInitiatePayment      Operation = "payment.initiate"
	OpConfirmPayment       Operation = "payment.confirm"
	OpViewPaymentQueue     Operation = "payment.queue"
	OpUpdateDeliveryStatus Operation = "delivery.update"
	OpViewFulfillmentQueue Operation = "delivery.queue"
	OpReceiveShipment      Operation = "inventory.receive"
	OpViewInventory        Operation = "inventory.view"
)

// AccessPolicy is a domain service answering a single question: may this role
// perform this operation? The mapping is a static table checked once at the
// operation boundary; business logic below the boundary never inspects roles.
//
// Example usage:
//
//	policy := services.NewAccessPolicy()
//	if err := policy.Authorize(principal, services.OpConfirmPayment); err != nil {
//	    return err // *errs.AuthorizationError
//	}
type AccessPolicy struct {
	allowed map[staff.Role]map[Operation]bool
}

// NewAccessPolicy creates the policy table for the fulfillment workflow.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{
		allowed: map[staff.Role]map[Operation]bool{
			staff.RoleCustomer: {
				OpPlaceOrder:         true,
				OpCancelOrder:        true,
				OpViewOrder:          true,
				OpSubmitPrescription: true,
				OpInitiatePayment:    true,
			},
			staff.RolePharmacist: {
				OpDecidePrescription:  true,
				OpViewValidationQueue: true,
				OpViewOrder:           true,
			},
			staff.RoleCashier: {
				OpConfirmPayment:   true,
				OpViewPaymentQueue: true,
				OpViewOrder:        true,
			},
			staff.RoleWarehouse: {
				OpUpdateDeliveryStatus: true,
				OpViewFulfillmentQueue: true,
				OpReceiveShipment:      true,
				OpViewInventory:        true,
				OpViewOrder:            true,
			},
			staff.RoleManager: {
				OpViewValidationQueue:  true,
				OpViewPaymentQueue:     true,
				OpViewFulfillmentQueue: true,
				OpReceiveShipment:      true,
				OpViewInventory:        true,
				OpViewOrder:            true,
			},
		},
	}
}

// Allows reports whether the role may perform the operation.
func (p AccessPolicy) Allows(role staff.Role, op Operation) bool {
	return p.allowed[role][op]
}

// Authorize returns an AuthorizationError when the principal's role may not
// perform the operation, nil otherwise.
func (p AccessPolicy) Authorize(principal staff.Principal, op Operation) error {
	if err := principal.Validate(); err != nil {
		return err
	}
	if !p.Allows(principal.Role(), op) {
		return errs.NewAuthorizationError(principal.Role().String(), string(op))
	}
	return nil
}
