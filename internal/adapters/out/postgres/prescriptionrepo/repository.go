package prescriptionrepo

import (
	"context"
	"errors"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/prescription"
	"pharmacy/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPrescriptionRepository implements PrescriptionRepository using GORM.
type GormPrescriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPrescriptionRepository creates a new GORM prescription repository.
func NewGormPrescriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormPrescriptionRepository {
	return &GormPrescriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly submitted prescription.
func (r *GormPrescriptionRepository) Add(ctx context.Context, p *prescription.Prescription) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

// Get retrieves a prescription by ID.
func (r *GormPrescriptionRepository) Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrescriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prescription", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateDecision writes the pharmacist's verdict with a compare-and-swap on
// the pending status. A second decision on the same prescription affects
// zero rows and yields a ConflictError.
func (r *GormPrescriptionRepository) UpdateDecision(ctx context.Context, p *prescription.Prescription) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PrescriptionDTO{}).
		Where("id = ? AND status = ?", dto.ID, prescription.Pending.String()).
		Updates(map[string]any{
			"status":        dto.Status,
			"pharmacist_id": dto.PharmacistID,
			"notes":         dto.Notes,
			"validated_at":  dto.ValidatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause(
			"prescription",
			p.ID().String(),
			fmt.Errorf("prescription is no longer pending"),
		)
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}
