// Package inventoryrepo persists per-branch stock records. The table is the
// serialization point of the whole ordering workflow: placements lock rows
// FOR UPDATE, shipments apply atomic upserts.
package inventoryrepo

import (
	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents one (product, branch) stock row.
type RecordDTO struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	BranchID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for stock rows.
func (RecordDTO) TableName() string {
	return "inventory"
}

func fromDomain(record *inventory.Record) RecordDTO {
	return RecordDTO{
		ProductID: record.ProductID().Bytes(),
		BranchID:  record.BranchID().Bytes(),
		Quantity:  record.Quantity(),
	}
}

func toDomain(dto RecordDTO) (*inventory.Record, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(productID, branchID, dto.Quantity)
}
