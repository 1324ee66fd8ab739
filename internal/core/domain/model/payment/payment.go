// Package payment models the cashier-confirmed payment for an order and its
// receipt. A payment's amount is always taken from the stored order total,
// never recomputed from current prices, preserving historical price integrity.
package payment

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ErrPaymentIsNotConstructed is returned when a Payment was not created
// through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// StatusCompleted is the only payment status this core records: payments are
// created at the moment a cashier confirms them. Failed or pending payment
// attempts never reach the store.
const StatusCompleted = "completed"

// Payment records a confirmed payment against an order.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	method    string
	amount    kernel.Money
	status    string
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a completed payment for an order. The amount must come
// from the order's stored total.
func NewPayment(id, orderID kernel.UUID, method string, amount kernel.Money) (*Payment, error) {
	if method == "" {
		return nil, errs.NewValueIsRequiredError("paymentMethod")
	}

	p := &Payment{
		method:        method,
		amount:        amount,
		status:        StatusCompleted,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	method string,
	amount kernel.Money,
	status string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, method, amount)
	if err != nil {
		return nil, err
	}
	p.status = status
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment was created through a factory method.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this payment settles.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// Method returns the payment method chosen by the customer.
func (p *Payment) Method() string {
	return p.method
}

// Amount returns the paid amount, equal to the order total at confirmation.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Status returns the payment status.
func (p *Payment) Status() string {
	return p.status
}

// CreatedAt returns when the cashier confirmed the payment.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	p.orderID = id
	return nil
}
