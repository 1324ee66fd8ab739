package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFulfillmentQueueQueryHandler reads the warehouse fulfillment queue.
// An order appears from the moment its payment is confirmed until its
// delivery completes.
type GetFulfillmentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetFulfillmentQueueQueryHandler creates a handler for fulfillment queue queries.
func NewGetFulfillmentQueueQueryHandler(db *gorm.DB) GetFulfillmentQueueQueryHandler {
	return GetFulfillmentQueueQueryHandler{db: db}
}

// Handle executes the queue query, oldest order first.
func (h GetFulfillmentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetFulfillmentQueueQuery,
) ([]GetFulfillmentQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetFulfillmentQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			d.id,
			d.method,
			d.status,
			d.address
		FROM orders o
		JOIN deliveries d ON d.order_id = o.id
		WHERE o.branch_id = ?
		  AND o.status = ?
		ORDER BY o.created_at
	`, query.BranchID().Bytes(), order.Processing.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetFulfillmentQueueQueryResponse
		var orderID, deliveryID uuid.UUID

		if err = rows.Scan(&orderID, &deliveryID, &entry.Method, &entry.DeliveryStatus, &entry.Address); err != nil {
			return nil, err
		}

		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.DeliveryID, err = kernel.UUIDFromBytes(deliveryID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
