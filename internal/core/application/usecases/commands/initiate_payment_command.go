package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrInitiatePaymentCommandIsNotConstructed = errors.New(
		"InitiatePaymentCommand must be created via NewInitiatePaymentCommand constructor",
	)
	ErrPaymentMethodIsRequired = errors.New("payment method is required")
)

// InitiatePaymentCommand represents a customer choosing how to pay.
// Moves the order into the cashier's verification queue; money only changes
// hands when a cashier confirms.
type InitiatePaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	method     string

	guard guard.ConstructorGuard
}

// NewInitiatePaymentCommand creates a command to start paying for an order.
func NewInitiatePaymentCommand(orderID, customerID kernel.UUID, method string) (InitiatePaymentCommand, error) {
	cmd := InitiatePaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setMethod(method),
	); err != nil {
		return InitiatePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InitiatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrInitiatePaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid for.
func (c InitiatePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the paying customer.
func (c InitiatePaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Method returns the chosen payment method.
func (c InitiatePaymentCommand) Method() string {
	return c.method
}

func (c *InitiatePaymentCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *InitiatePaymentCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = id
	return nil
}

func (c *InitiatePaymentCommand) setMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}

	c.method = method
	return nil
}
