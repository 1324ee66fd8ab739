package order

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without any line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")

	// ErrTotalAmountMismatch is returned when a restored order's stored total does
	// not equal the sum of its line totals.
	ErrTotalAmountMismatch = errors.New("total amount does not equal the sum of line totals")
)

// Order is the aggregate root of the fulfillment workflow. It owns the
// canonical status field, the immutable line items with their price snapshots,
// and the total computed from them.
//
// Order invariants:
//   - Valid, non-nil identifiers for the order, the customer, and the branch
//   - At least one line item
//   - totalAmount equals the sum of quantity * unitPriceAtOrderTime over all items
//   - Status is always a node of the defined transition graph
//
// Orders are never physically deleted; terminal states (completed, cancelled)
// keep the row for history. All status mutation happens through guarded
// transitions executed as compare-and-swap updates by the repository; the
// aggregate itself never changes status in memory outside placement.
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	branchID    kernel.UUID
	items       []Item
	status      Status
	totalAmount kernel.Money
	createdAt   time.Time

	isConstructed bool
}

// NewOrder creates a freshly placed order. The initial status is derived from
// whether any item requires a prescription, and the total is computed from the
// line items' price snapshots.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	branchID kernel.UUID,
	items []Item,
	requiresPrescription bool,
) (*Order, error) {
	o := &Order{
		status:        InitialStatus(requiresPrescription),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setBranchID(branchID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumLineTotals(o.items)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored status, total, and creation time, and verifies the total
// invariant against the restored items.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	branchID kernel.UUID,
	items []Item,
	status Status,
	totalAmount kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setBranchID(branchID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	if !sumLineTotals(o.items).IsEqual(totalAmount) {
		return nil, ErrTotalAmountMismatch
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Prevents bypassing validation by direct struct instantiation.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// BranchID returns the id of the branch fulfilling the order.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the order total computed at placement time.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the given customer placed this order.
func (o *Order) IsOwnedBy(customerID kernel.UUID) bool {
	return o.customerID.IsEqual(customerID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}
	o.branchID = id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if !item.isConstructed {
			return errs.NewValueIsInvalidError("items")
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func sumLineTotals(items []Item) kernel.Money {
	var total kernel.Money
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
