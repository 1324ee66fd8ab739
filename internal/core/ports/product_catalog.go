package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
)

// Product is the catalog's view of a sellable item: the data order placement
// needs to price a line and decide whether a prescription is required.
type Product struct {
	ID                   kernel.UUID
	Name                 string
	Price                kernel.Money
	RequiresPrescription bool
	IsActive             bool
}

// ProductCatalog provides read access to the product catalog. Catalog
// management is a separate concern; the fulfillment core only resolves
// products during order placement.
type ProductCatalog interface {
	// GetByIDs retrieves the products with the given identifiers. Returns an
	// ObjectNotFoundError when any of the IDs is unknown.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]Product, error)
}
