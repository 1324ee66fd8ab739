package commands

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var (
	ErrSubmitPrescriptionCommandIsNotConstructed = errors.New(
		"SubmitPrescriptionCommand must be created via NewSubmitPrescriptionCommand constructor",
	)
	ErrImageRefIsRequired = errors.New("prescription image reference is required")
)

// SubmitPrescriptionCommand represents a customer uploading a prescription
// image for an order that requires one. Also used to re-upload after a
// rejection.
type SubmitPrescriptionCommand struct { //nolint:recvcheck //using for validation
	prescriptionID kernel.UUID
	orderID        kernel.UUID
	customerID     kernel.UUID
	imageRef       string

	guard guard.ConstructorGuard
}

// NewSubmitPrescriptionCommand creates a command to attach a prescription to
// an order. The image reference points at already-uploaded object storage;
// this command never carries image bytes.
func NewSubmitPrescriptionCommand(
	prescriptionID kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	imageRef string,
) (SubmitPrescriptionCommand, error) {
	cmd := SubmitPrescriptionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrescriptionID(prescriptionID),
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setImageRef(imageRef),
	); err != nil {
		return SubmitPrescriptionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitPrescriptionCommand) Validate() error {
	return c.guard.Validate(ErrSubmitPrescriptionCommandIsNotConstructed)
}

// PrescriptionID returns the identifier for the new prescription record.
func (c SubmitPrescriptionCommand) PrescriptionID() kernel.UUID {
	return c.prescriptionID
}

// OrderID returns the order the prescription belongs to.
func (c SubmitPrescriptionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the uploading customer.
func (c SubmitPrescriptionCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ImageRef returns the storage reference of the uploaded image.
func (c SubmitPrescriptionCommand) ImageRef() string {
	return c.imageRef
}

func (c *SubmitPrescriptionCommand) setPrescriptionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.prescriptionID = id
	return nil
}

func (c *SubmitPrescriptionCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	c.orderID = id
	return nil
}

func (c *SubmitPrescriptionCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}

	c.customerID = id
	return nil
}

func (c *SubmitPrescriptionCommand) setImageRef(imageRef string) error {
	if imageRef == "" {
		return ErrImageRefIsRequired
	}

	c.imageRef = imageRef
	return nil
}
