package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one order line is required")
)

// OrderLine is one requested product within a placement request.
// Prices are not part of the request: the catalog is the only price source.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// PlaceOrderCommand represents a customer's request to place an order at a
// branch. Carries the requested lines and the chosen fulfillment method.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    kernel.NewUUID(), customerID, branchID,
//	    []OrderLine{{ProductID: productID, Quantity: 2}},
//	    delivery.HomeDelivery, "123 Main Street",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	branchID   kernel.UUID
	lines      []OrderLine
	method     delivery.Method
	address    string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, requires at least one line with a positive quantity,
// and requires an address for home deliveries.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	branchID kernel.UUID,
	lines []OrderLine,
	method delivery.Method,
	address string,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		method:  method,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setBranchID(branchID),
		cmd.setLines(lines),
		method.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the placing customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// BranchID returns the branch whose stock fulfills the order.
func (c PlaceOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Lines returns the requested products and quantities.
func (c PlaceOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Method returns the chosen fulfillment method.
func (c PlaceOrderCommand) Method() delivery.Method {
	return c.method
}

// Address returns the delivery address, empty for in-store pickup.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	c.branchID = branchID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("productID", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
