package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrReceiveShipmentCommandIsNotConstructed = errors.New(
		"ReceiveShipmentCommand must be created via NewReceiveShipmentCommand constructor",
	)
	ErrShipmentLinesAreRequired = errors.New("at least one shipment line is required")
)

// ShipmentLine is one product quantity within an incoming shipment.
type ShipmentLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// ReceiveShipmentCommand represents warehouse staff booking an incoming
// shipment into a branch's stock. A single non-positive quantity rejects the
// whole shipment; corrections go through a separate process, not a negative
// line.
type ReceiveShipmentCommand struct { //nolint:recvcheck //using for validation
	branchID kernel.UUID
	lines    []ShipmentLine

	guard guard.ConstructorGuard
}

// NewReceiveShipmentCommand creates a command to add stock.
func NewReceiveShipmentCommand(branchID kernel.UUID, lines []ShipmentLine) (ReceiveShipmentCommand, error) {
	cmd := ReceiveShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBranchID(branchID),
		cmd.setLines(lines),
	); err != nil {
		return ReceiveShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReceiveShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReceiveShipmentCommandIsNotConstructed)
}

// BranchID returns the receiving branch.
func (c ReceiveShipmentCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Lines returns the received products and quantities.
func (c ReceiveShipmentCommand) Lines() []ShipmentLine {
	lines := make([]ShipmentLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *ReceiveShipmentCommand) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	c.branchID = id
	return nil
}

func (c *ReceiveShipmentCommand) setLines(lines []ShipmentLine) error {
	if len(lines) == 0 {
		return ErrShipmentLinesAreRequired
	}

	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("productID", err)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.lines = make([]ShipmentLine, len(lines))
	copy(c.lines, lines)
	return nil
}
