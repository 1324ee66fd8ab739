// Package prescription models the prescription submissions tied to an order
// and the pharmacist decision that unblocks or blocks it.
//
// Key business rules:
//   - At most one prescription may be pending per order at a time
//   - A decision is binary and final; re-deciding an already decided
//     prescription is a conflict, never a silent overwrite
//   - Rejection requires a non-empty note for the customer
package prescription

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrPrescriptionIsNotConstructed is returned when a Prescription was not
	// created through NewPrescription or RestorePrescription.
	ErrPrescriptionIsNotConstructed = errors.New(
		"Prescription must be created via NewPrescription or RestorePrescription")

	// ErrAlreadyDecided is returned when a decision is applied to a
	// prescription that is no longer pending.
	ErrAlreadyDecided = errors.New("prescription has already been decided")

	// ErrRejectionNotesRequired is returned when a rejection carries no note.
	ErrRejectionNotesRequired = errors.New("rejection requires a non-empty note")
)

// Prescription is the record of a customer-uploaded prescription image
// attached to an order, tracking the pharmacist decision on it.
type Prescription struct {
	id           kernel.UUID
	customerID   kernel.UUID
	orderID      kernel.UUID
	imageRef     string
	status       Status
	pharmacistID *kernel.UUID
	notes        string
	uploadedAt   time.Time
	validatedAt  *time.Time

	isConstructed bool
}

// NewPrescription creates a pending prescription for an order.
// The imageRef is an opaque reference to the stored image; file storage
// mechanics live outside this core.
func NewPrescription(id, customerID, orderID kernel.UUID, imageRef string) (*Prescription, error) {
	if imageRef == "" {
		return nil, errs.NewValueIsRequiredError("imageRef")
	}

	p := &Prescription{
		imageRef:      imageRef,
		status:        Pending,
		uploadedAt:    time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePrescription reconstructs a prescription from persistence.
func RestorePrescription(
	id, customerID, orderID kernel.UUID,
	imageRef string,
	status Status,
	pharmacistID *kernel.UUID,
	notes string,
	uploadedAt time.Time,
	validatedAt *time.Time,
) (*Prescription, error) {
	p := &Prescription{
		imageRef:      imageRef,
		notes:         notes,
		uploadedAt:    uploadedAt,
		validatedAt:   validatedAt,
		pharmacistID:  pharmacistID,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setCustomerID(customerID),
		p.setOrderID(orderID),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	p.status = status

	return p, nil
}

// Validate ensures the Prescription was created through a factory method.
func (p *Prescription) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPrescriptionIsNotConstructed
	}
	return nil
}

// ID returns the prescription's unique identifier.
func (p *Prescription) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the uploading customer's id.
func (p *Prescription) CustomerID() kernel.UUID {
	return p.customerID
}

// OrderID returns the order this prescription is attached to.
func (p *Prescription) OrderID() kernel.UUID {
	return p.orderID
}

// ImageRef returns the opaque reference to the uploaded image.
func (p *Prescription) ImageRef() string {
	return p.imageRef
}

// Status returns the current validation status.
func (p *Prescription) Status() Status {
	return p.status
}

// PharmacistID returns the deciding pharmacist's id, or nil while pending.
func (p *Prescription) PharmacistID() *kernel.UUID {
	return p.pharmacistID
}

// Notes returns the pharmacist's note, empty while pending.
func (p *Prescription) Notes() string {
	return p.notes
}

// UploadedAt returns when the prescription was submitted.
func (p *Prescription) UploadedAt() time.Time {
	return p.uploadedAt
}

// ValidatedAt returns when the decision was made, or nil while pending.
func (p *Prescription) ValidatedAt() *time.Time {
	return p.validatedAt
}

// Approve records a pharmacist approval. The prescription must still be
// pending; deciding twice is a conflict surfaced as ErrAlreadyDecided.
func (p *Prescription) Approve(pharmacistID kernel.UUID, notes string) error {
	return p.decide(Approved, pharmacistID, notes)
}

// Reject records a pharmacist rejection. A non-empty note explaining the
// rejection is mandatory so the customer can act on it.
func (p *Prescription) Reject(pharmacistID kernel.UUID, notes string) error {
	if notes == "" {
		return ErrRejectionNotesRequired
	}
	return p.decide(Rejected, pharmacistID, notes)
}

func (p *Prescription) decide(decision Status, pharmacistID kernel.UUID, notes string) error {
	if err := pharmacistID.Validate(); err != nil {
		return err
	}
	if p.status.IsDecided() {
		return ErrAlreadyDecided
	}

	now := time.Now().UTC()
	p.status = decision
	p.pharmacistID = &pharmacistID
	p.notes = notes
	p.validatedAt = &now
	return nil
}

func (p *Prescription) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Prescription) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	p.customerID = id
	return nil
}

func (p *Prescription) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	p.orderID = id
	return nil
}
