package ports

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/prescription"
)

// PrescriptionRepository defines the persistence contract for prescription
// submissions.
type PrescriptionRepository interface {
	// Add persists a newly submitted prescription.
	Add(ctx context.Context, p *prescription.Prescription) error

	// Get retrieves a prescription by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*prescription.Prescription, error)

	// UpdateDecision persists the pharmacist's verdict. The update succeeds
	// only when the stored status is still pending; a ConflictError is
	// returned when another pharmacist decided first.
	UpdateDecision(ctx context.Context, p *prescription.Prescription) error
}
