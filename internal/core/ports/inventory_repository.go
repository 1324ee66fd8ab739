package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for per-branch stock
// records. Stock mutations always run inside a transaction that first locks
// the affected rows, so concurrent orders serialize per (product, branch).
type InventoryRepository interface {
	// GetForUpdate retrieves the stock record for a product at a branch and
	// locks its row until the surrounding transaction commits. Returns an
	// ObjectNotFoundError when the product has never been stocked there.
	GetForUpdate(ctx context.Context, productID, branchID kernel.UUID) (*inventory.Record, error)

	// Save persists the current quantity of a previously loaded record.
	Save(ctx context.Context, record *inventory.Record) error

	// Replenish adds quantity to the record, creating it when the product has
	// never been stocked at the branch. Implemented as an atomic upsert so
	// concurrent shipments for the same product never lose an increment.
	Replenish(ctx context.Context, productID, branchID kernel.UUID, quantity int) error

	// GetByBranch retrieves all stock records of one branch.
	GetByBranch(ctx context.Context, branchID kernel.UUID) ([]*inventory.Record, error)
}
