// Package productcatalog provides read access to the product catalog table.
// The fulfillment core only reads products; catalog management happens
// elsewhere.
package productcatalog

import (
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"

	"github.com/google/uuid"
)

// ProductDTO represents one catalog row.
type ProductDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string
	Price                int64
	RequiresPrescription bool
	IsActive             bool
}

// TableName specifies the database table name for catalog rows.
func (ProductDTO) TableName() string {
	return "products"
}

func toPort(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:                   id,
		Name:                 dto.Name,
		Price:                price,
		RequiresPrescription: dto.RequiresPrescription,
		IsActive:             dto.IsActive,
	}, nil
}
