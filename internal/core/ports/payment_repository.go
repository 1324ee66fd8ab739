package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payments and their
// receipts. Both are written inside the payment confirmation transaction.
type PaymentRepository interface {
	// AddPayment persists a confirmed payment.
	AddPayment(ctx context.Context, p *payment.Payment) error

	// AddReceipt persists the receipt issued for a payment.
	AddReceipt(ctx context.Context, r *payment.Receipt) error

	// GetByOrderID retrieves the payment recorded for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)
}
