package payment

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ErrReceiptIsNotConstructed is returned when a Receipt was not created
// through NewReceipt.
var ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt")

// Receipt is the customer-facing proof of a payment, 1:1 with Payment.
// The payload is opaque to this core; callers decide its format.
type Receipt struct {
	id        kernel.UUID
	paymentID kernel.UUID
	payload   string

	isConstructed bool
}

// NewReceipt creates a receipt for a payment with an opaque payload.
func NewReceipt(id, paymentID kernel.UUID, payload string) (*Receipt, error) {
	if payload == "" {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	r := &Receipt{
		payload:       payload,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setPaymentID(paymentID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Receipt was created through its constructor.
func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() kernel.UUID {
	return r.id
}

// PaymentID returns the payment this receipt documents.
func (r *Receipt) PaymentID() kernel.UUID {
	return r.paymentID
}

// Payload returns the opaque receipt content.
func (r *Receipt) Payload() string {
	return r.payload
}

func (r *Receipt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Receipt) setPaymentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("paymentID", err)
	}
	r.paymentID = id
	return nil
}
