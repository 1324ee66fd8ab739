package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and delivery state.
//
// Customers may only see their own orders: when a customerID is set, the
// query matches nothing unless that customer placed the order. Staff queries
// pass nil and see any order.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// customerID restricts the result to that customer's orders; nil disables
// the restriction for staff callers.
func NewGetOrderQuery(orderID kernel.UUID, customerID *kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("customerID", err)
		}
	}

	return GetOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the ownership restriction, or nil for staff callers.
func (q GetOrderQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// GetOrderQueryResponseItem is one line of the order.
type GetOrderQueryResponseItem struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice int64
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	OrderID        kernel.UUID
	CustomerID     kernel.UUID
	BranchID       kernel.UUID
	Status         string
	TotalAmount    int64
	CreatedAt      time.Time
	Items          []GetOrderQueryResponseItem
	DeliveryMethod string
	DeliveryStatus string
	Address        string
}
