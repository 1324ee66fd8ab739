package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrDecidePrescriptionCommandIsNotConstructed = errors.New(
	"DecidePrescriptionCommand must be created via NewDecidePrescriptionCommand constructor",
)

// DecidePrescriptionCommand represents a pharmacist's verdict on a submitted
// prescription. A rejection must carry notes explaining the reason; the
// entity enforces that rule.
type DecidePrescriptionCommand struct { //nolint:recvcheck //using for validation
	prescriptionID kernel.UUID
	pharmacistID   kernel.UUID
	approved       bool
	notes          string

	guard guard.ConstructorGuard
}

// NewDecidePrescriptionCommand creates a command recording a pharmacist's
// approve or reject decision.
func NewDecidePrescriptionCommand(
	prescriptionID kernel.UUID,
	pharmacistID kernel.UUID,
	approved bool,
	notes string,
) (DecidePrescriptionCommand, error) {
	cmd := DecidePrescriptionCommand{
		approved: approved,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrescriptionID(prescriptionID),
		cmd.setPharmacistID(pharmacistID),
	); err != nil {
		return DecidePrescriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DecidePrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrDecidePrescriptionCommandIsNotConstructed)
}

// PrescriptionID returns the prescription being decided.
func (c DecidePrescriptionCommand) PrescriptionID() kernel.UUID {
	return c.prescriptionID
}

// PharmacistID returns the deciding pharmacist.
func (c DecidePrescriptionCommand) PharmacistID() kernel.UUID {
	return c.pharmacistID
}

// Approved reports whether the verdict is an approval.
func (c DecidePrescriptionCommand) Approved() bool {
	return c.approved
}

// Notes returns the pharmacist's notes, mandatory for rejections.
func (c DecidePrescriptionCommand) Notes() string {
	return c.notes
}

func (c *DecidePrescriptionCommand) setPrescriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.prescriptionID = id
	return nil
}

func (c *DecidePrescriptionCommand) setPharmacistID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pharmacistID", err)
	}

	c.pharmacistID = id
	return nil
}
