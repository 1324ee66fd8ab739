// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain model and read the database directly,
// returning flat response structs shaped for the callers.
package queries

import (
	"errors"
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrGetValidationQueueQueryIsNotConstructed = errors.New(
	"GetValidationQueueQuery must be created via NewGetValidationQueueQuery constructor",
)

// GetValidationQueueQuery retrieves the pharmacist work queue of a branch:
// every order awaiting prescription validation, oldest submission first.
//
// Example:
//
//	query, err := NewGetValidationQueueQuery(branchID)
//	if err != nil {
//	    return err
//	}
//	entries, err := NewGetValidationQueueQueryHandler(db).Handle(ctx, query)
type GetValidationQueueQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetValidationQueueQuery creates a query for a branch's validation queue.
func NewGetValidationQueueQuery(branchID kernel.UUID) (GetValidationQueueQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetValidationQueueQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	return GetValidationQueueQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetValidationQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetValidationQueueQueryIsNotConstructed)
}

// BranchID returns the branch whose queue is requested.
func (q GetValidationQueueQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetValidationQueueQueryResponse is one entry of the validation queue.
type GetValidationQueueQueryResponse struct {
	OrderID        kernel.UUID
	PrescriptionID kernel.UUID
	CustomerID     kernel.UUID
	ImageRef       string
	UploadedAt     time.Time
}
