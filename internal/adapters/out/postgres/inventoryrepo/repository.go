package inventoryrepo

import (
	"context"
	"errors"

	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// GetForUpdate retrieves and row-locks one stock record. The lock is held
// until the surrounding transaction commits or rolls back.
func (r *GormInventoryRepository) GetForUpdate(
	ctx context.Context,
	productID, branchID kernel.UUID,
) (*inventory.Record, error) {
	if err := errors.Join(productID.Validate(), branchID.Validate()); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "product_id = ? AND branch_id = ?", productID.Bytes(), branchID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("inventory", productID.String())
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Save persists the quantity of a previously locked record.
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).Model(&RecordDTO{}).
		Where("product_id = ? AND branch_id = ?", dto.ProductID, dto.BranchID).
		Update("quantity", dto.Quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory", record.ProductID().String())
	}

	return nil
}

// Replenish adds quantity as an atomic upsert. Concurrent increments for the
// same row compose: the final quantity is the sum regardless of ordering.
func (r *GormInventoryRepository) Replenish(
	ctx context.Context,
	productID, branchID kernel.UUID,
	quantity int,
) error {
	if err := errors.Join(productID.Validate(), branchID.Validate()); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	dto := RecordDTO{
		ProductID: productID.Bytes(),
		BranchID:  branchID.Bytes(),
		Quantity:  quantity,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "branch_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity": gorm.Expr("inventory.quantity + excluded.quantity"),
		}),
	}).Create(&dto).Error
}

// GetByBranch retrieves all stock rows of one branch.
func (r *GormInventoryRepository) GetByBranch(
	ctx context.Context,
	branchID kernel.UUID,
) ([]*inventory.Record, error) {
	if err := branchID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RecordDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "branch_id = ?", branchID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*inventory.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
