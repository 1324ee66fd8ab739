package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPaymentQueueQueryHandler reads the payment verification queue.
type GetPaymentQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetPaymentQueueQueryHandler creates a handler for payment queue queries.
func NewGetPaymentQueueQueryHandler(db *gorm.DB) GetPaymentQueueQueryHandler {
	return GetPaymentQueueQueryHandler{db: db}
}

// Handle executes the queue query, oldest order first.
func (h GetPaymentQueueQueryHandler) Handle(
	ctx context.Context,
	query GetPaymentQueueQuery,
) ([]GetPaymentQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetPaymentQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			total_amount,
			created_at
		FROM orders
		WHERE branch_id = ?
		  AND status = ?
		ORDER BY created_at
	`, query.BranchID().Bytes(), order.AwaitingVerification.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetPaymentQueueQueryResponse
		var orderID, customerID uuid.UUID

		if err = rows.Scan(&orderID, &customerID, &entry.TotalAmount, &entry.CreatedAt); err != nil {
			return nil, err
		}

		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
