package queries

import (
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"
	"pharmacy/internal/pkg/guard"
)

var ErrGetBranchInventoryQueryIsNotConstructed = errors.New(
	"GetBranchInventoryQuery must be created via NewGetBranchInventoryQuery constructor",
)

// GetBranchInventoryQuery retrieves the current stock levels of one branch.
type GetBranchInventoryQuery struct {
	branchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBranchInventoryQuery creates a query for a branch's stock levels.
func NewGetBranchInventoryQuery(branchID kernel.UUID) (GetBranchInventoryQuery, error) {
	if err := branchID.Validate(); err != nil {
		return GetBranchInventoryQuery{}, errs.NewValueIsInvalidErrorWithCause("branchID", err)
	}

	return GetBranchInventoryQuery{
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBranchInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchInventoryQueryIsNotConstructed)
}

// BranchID returns the branch whose stock is requested.
func (q GetBranchInventoryQuery) BranchID() kernel.UUID {
	return q.branchID
}

// GetBranchInventoryQueryResponse is the stock level of one product.
type GetBranchInventoryQueryResponse struct {
	ProductID kernel.UUID
	Quantity  int
}
