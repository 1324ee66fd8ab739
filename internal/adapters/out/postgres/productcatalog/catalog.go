package productcatalog

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetByIDs retrieves the products with the given identifiers. Any missing ID
// yields an ObjectNotFoundError naming the first absent product.
func (c *GormProductCatalog) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]ports.Product, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("productID", err)
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	products := make([]ports.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, err := toPort(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
		found[dto.ID] = true
	}

	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return products, nil
}
