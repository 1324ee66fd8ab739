// Package deliveryrepo persists the fulfillment record each order owns.
package deliveryrepo

import (
	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents one order's fulfillment record.
type DeliveryDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Method  string    `gorm:"type:varchar(32)"`
	Address string
	Status  string `gorm:"type:varchar(32);index"`
}

// TableName specifies the database table name for deliveries.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:      d.ID().Bytes(),
		OrderID: d.OrderID().Bytes(),
		Method:  d.Method().String(),
		Address: d.Address(),
		Status:  d.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	method, err := delivery.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, method, dto.Address, status)
}
