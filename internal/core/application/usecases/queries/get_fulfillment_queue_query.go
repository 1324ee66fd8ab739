package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrGetFulfillmentQueueQueryIsNotConstructed = errors.New(
	"GetFulfillmentQueueQuery must be created via NewGetFulfillmentQueueQuery constructor",
)

// GetFulfillmentQueueQuery retrieves the warehouse work queue of a branch:
// every paid order whose delivery has not yet completed, oldest first.
type GetFulfillmentQueueQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetFulfillmentQueueQuery creates a query for a branch's fulfillment queue.
func NewGetFulfillmentQueueQuery(branchID kernel.UUID) (GetFulfillmentQueueQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetFulfillmentQueueQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	return GetFulfillmentQueueQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetFulfillmentQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetFulfillmentQueueQueryIsNotConstructed)
}

// BranchID returns the branch whose queue is requested.
func (q GetFulfillmentQueueQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetFulfillmentQueueQueryResponse is one entry of the fulfillment queue.
type GetFulfillmentQueueQueryResponse struct {
	OrderID        kernel.UUID
	DeliveryID     kernel.UUID
	Method         string
	DeliveryStatus string
	Address        string
}
