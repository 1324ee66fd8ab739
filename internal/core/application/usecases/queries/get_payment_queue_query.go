package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrGetPaymentQueueQueryIsNotConstructed = errors.New(
	"GetPaymentQueueQuery must be created via NewGetPaymentQueueQuery constructor",
)

// GetPaymentQueueQuery retrieves the cashier work queue of a branch: every
// order awaiting payment verification, oldest first.
type GetPaymentQueueQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPaymentQueueQuery creates a query for a branch's payment queue.
func NewGetPaymentQueueQuery(branchID kernel.UUID) (GetPaymentQueueQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetPaymentQueueQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	return GetPaymentQueueQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPaymentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentQueueQueryIsNotConstructed)
}

// BranchID returns the branch whose queue is requested.
func (q GetPaymentQueueQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetPaymentQueueQueryResponse is one entry of the payment queue.
type GetPaymentQueueQueryResponse struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	TotalAmount int64
	CreatedAt   time.Time
}
