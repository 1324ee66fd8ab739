// Package prescriptionrepo persists prescription submissions and the
// pharmacist decisions made on them.
package prescriptionrepo

import (
	"time"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/prescription"

	"github.com/google/uuid"
)

// PrescriptionDTO represents one submitted prescription image and its
// validation state.
type PrescriptionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;index"`
	ImageRef     string
	Status       string     `gorm:"type:varchar(32);index"`
	PharmacistID *uuid.UUID `gorm:"type:uuid"`
	Notes        string
	UploadedAt   time.Time
	ValidatedAt  *time.Time
}

// TableName specifies the database table name for prescriptions.
func (PrescriptionDTO) TableName() string {
	return "prescriptions"
}

func fromDomain(p *prescription.Prescription) PrescriptionDTO {
	var pharmacistID *uuid.UUID
	if id := p.PharmacistID(); id != nil {
		raw := id.Bytes()
		pharmacistID = &raw
	}

	return PrescriptionDTO{
		ID:           p.ID().Bytes(),
		OrderID:      p.OrderID().Bytes(),
		CustomerID:   p.CustomerID().Bytes(),
		ImageRef:     p.ImageRef(),
		Status:       p.Status().String(),
		PharmacistID: pharmacistID,
		Notes:        p.Notes(),
		UploadedAt:   p.UploadedAt(),
		ValidatedAt:  p.ValidatedAt(),
	}
}

func toDomain(dto PrescriptionDTO) (*prescription.Prescription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var pharmacistID *kernel.UUID
	if dto.PharmacistID != nil {
		pID, pErr := kernel.UUIDFromBytes((*dto.PharmacistID)[:])
		if pErr != nil {
			return nil, pErr
		}
		pharmacistID = &pID
	}

	status, err := prescription.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return prescription.RestorePrescription(
		id, customerID, orderID, dto.ImageRef,
		status, pharmacistID, dto.Notes, dto.UploadedAt, dto.ValidatedAt,
	)
}
