// Package paymentrepo persists payments and their receipts. Rows are written
// once during payment confirmation and never updated.
package paymentrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents one confirmed payment.
type PaymentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Method    string    `gorm:"type:varchar(32)"`
	Amount    int64
	Status    string `gorm:"type:varchar(32)"`
	CreatedAt time.Time
}

// TableName specifies the database table name for payments.
func (PaymentDTO) TableName() string {
	return "payments"
}

// ReceiptDTO represents the receipt issued for a payment.
type ReceiptDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Payload   string
}

// TableName specifies the database table name for receipts.
func (ReceiptDTO) TableName() string {
	return "receipts"
}

func paymentFromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:        p.ID().Bytes(),
		OrderID:   p.OrderID().Bytes(),
		Method:    p.Method(),
		Amount:    p.Amount().Amount(),
		Status:    p.Status(),
		CreatedAt: p.CreatedAt(),
	}
}

func receiptFromDomain(r *payment.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ID:        r.ID().Bytes(),
		PaymentID: r.PaymentID().Bytes(),
		Payload:   r.Payload(),
	}
}

func paymentToDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, dto.Method, amount, dto.Status, dto.CreatedAt)
}
