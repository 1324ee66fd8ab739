package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for fulfillment records.
// Every order owns exactly one delivery, created at placement time.
type DeliveryRepository interface {
	// Add persists the delivery record created alongside a new order.
	Add(ctx context.Context, d *delivery.Delivery) error

	// GetByOrderID retrieves the delivery record of an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// TransitionStatus atomically moves the delivery from one status to
	// another. The update succeeds only when the stored status still equals
	// from; otherwise a ConflictError is returned.
	TransitionStatus(ctx context.Context, id kernel.UUID, from, to delivery.Status) error
}
