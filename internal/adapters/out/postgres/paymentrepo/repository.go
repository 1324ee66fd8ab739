package paymentrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/payment"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentRepository implements PaymentRepository using GORM.
// The unique index on order_id backs up the workflow-level guarantee that an
// order is paid at most once.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GORM payment repository.
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// AddPayment saves a confirmed payment.
func (r *GormPaymentRepository) AddPayment(ctx context.Context, p *payment.Payment) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := paymentFromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddReceipt saves the receipt issued for a payment.
func (r *GormPaymentRepository) AddReceipt(ctx context.Context, receipt *payment.Receipt) error {
	if err := receipt.Validate(); err != nil {
		return err
	}

	dto := receiptFromDomain(receipt)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByOrderID retrieves the payment recorded for an order.
func (r *GormPaymentRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment", orderID.String())
		}
		return nil, err
	}

	return paymentToDomain(dto)
}
