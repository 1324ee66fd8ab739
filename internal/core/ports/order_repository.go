// Package ports defines repository and collaborator interfaces for the
// pharmacy domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetWithLock retrieves an order like Get but holds a row lock on it
	// until the surrounding transaction commits. Used by workflows that read
	// the order and write dependent rows (payments, deliveries) atomically.
	GetWithLock(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// TransitionStatus atomically moves the order from one status to another.
	// The update succeeds only when the stored status still equals from;
	// otherwise a ConflictError is returned and nothing changes. This is the
	// compare-and-swap every status transition in the workflow goes through.
	TransitionStatus(ctx context.Context, id kernel.UUID, from, to order.Status) error
}
