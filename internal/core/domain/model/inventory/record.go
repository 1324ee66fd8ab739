// Package inventory models the per-(product, branch) stock ledger.
// The quantity invariant (never negative) is enforced both here and by the
// repository, which locks rows before any decrement.
package inventory

import (
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is the stock counter for one product at one branch.
// The pair (productID, branchID) is its identity; quantity never goes
// negative. Records are created on first stock receipt and never deleted
// while referenced.
type Record struct {
	productID kernel.UUID
	branchID  kernel.UUID
	quantity  int

	isConstructed bool
}

// NewRecord creates a stock record with an initial non-negative quantity.
func NewRecord(productID, branchID kernel.UUID, quantity int) (*Record, error) {
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	r := &Record{
		quantity:      quantity,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setProductID(productID),
		r.setBranchID(branchID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRecord reconstructs a stock record from persistence.
func RestoreRecord(productID, branchID kernel.UUID, quantity int) (*Record, error) {
	return NewRecord(productID, branchID, quantity)
}

// Validate ensures the Record was created through a factory method.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

// ProductID returns the product this record counts.
func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// BranchID returns the branch holding the stock.
func (r *Record) BranchID() kernel.UUID {
	return r.branchID
}

// Quantity returns the units currently on hand.
func (r *Record) Quantity() int {
	return r.quantity
}

// CanCover reports whether the record holds at least qty units.
func (r *Record) CanCover(qty int) bool {
	return r.quantity >= qty
}

// Deduct removes qty units from stock. Returns an InsufficientStockError
// naming the product when the quantity cannot cover the deduction; the
// record is left unchanged in that case.
func (r *Record) Deduct(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	if !r.CanCover(qty) {
		return errs.NewInsufficientStockError(r.productID.String(), r.quantity, qty)
	}

	r.quantity -= qty
	return nil
}

// Replenish adds qty units to stock. The operation is commutative, which is
// what makes shipment receipts safe to retry.
func (r *Record) Replenish(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}

	r.quantity += qty
	return nil
}

func (r *Record) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productID", err)
	}
	r.productID = id
	return nil
}

func (r *Record) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}
	r.branchID = id
	return nil
}
