package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBranchInventoryQueryHandler reads a branch's stock levels.
type GetBranchInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBranchInventoryQueryHandler creates a handler for stock level queries.
func NewGetBranchInventoryQueryHandler(db *gorm.DB) GetBranchInventoryQueryHandler {
	return GetBranchInventoryQueryHandler{db: db}
}

// Handle executes the stock query, sorted by product for stable output.
func (h GetBranchInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetBranchInventoryQuery,
) ([]GetBranchInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetBranchInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity
		FROM inventory
		WHERE branch_id = ?
		ORDER BY product_id
	`, query.BranchID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetBranchInventoryQueryResponse
		var productID uuid.UUID

		if err = rows.Scan(&productID, &entry.Quantity); err != nil {
			return nil, err
		}
		if entry.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
