// Package delivery models the physical fulfillment of an order, from
// warehouse preparation to customer handover. Each order has exactly one
// delivery record whose state fork is fixed by the fulfillment method.
package delivery

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery")

	// ErrAddressIsRequired is returned when a home delivery has no address.
	ErrAddressIsRequired = errors.New("address is required for home delivery")
)

// Delivery tracks how an order physically reaches the customer.
// There is exactly one delivery per order, created at placement time in the
// pending state and advanced by warehouse staff after payment confirmation.
type Delivery struct {
	id      kernel.UUID
	orderID kernel.UUID
	method  Method
	address string
	status  Status

	isConstructed bool
}

// NewDelivery creates a pending delivery record for a freshly placed order.
// Home deliveries require a non-empty address; pickups ignore it.
func NewDelivery(id, orderID kernel.UUID, method Method, address string) (*Delivery, error) {
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if method == HomeDelivery && address == "" {
		return nil, ErrAddressIsRequired
	}

	d := &Delivery{
		method:        method,
		address:       address,
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence.
func RestoreDelivery(id, orderID kernel.UUID, method Method, address string, status Status) (*Delivery, error) {
	d := &Delivery{
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	d.method = method
	d.status = status

	return d, nil
}

// Validate ensures the Delivery was created through a factory method.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this delivery fulfills.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Method returns the fulfillment method fixed at order placement.
func (d *Delivery) Method() Method {
	return d.method
}

// Address returns the delivery address, empty for in-store pickups.
func (d *Delivery) Address() string {
	return d.address
}

// Status returns the current fulfillment state.
func (d *Delivery) Status() Status {
	return d.status
}

// Advance moves the delivery to target after validating the edge against the
// current state and the fulfillment method.
func (d *Delivery) Advance(target Status) error {
	if err := d.status.CanTransitionTo(target, d.method); err != nil {
		return err
	}
	d.status = target
	return nil
}

// IsCompleted reports whether the delivery reached its terminal state.
func (d *Delivery) IsCompleted() bool {
	return d.status == StatusCompleted
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	d.orderID = id
	return nil
}
