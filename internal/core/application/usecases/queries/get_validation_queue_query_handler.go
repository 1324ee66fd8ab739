package queries

import (
	"context"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/domain/model/prescription"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetValidationQueueQueryHandler reads the validation queue from the database.
// Only pending prescriptions of orders still awaiting validation appear;
// decided prescriptions and re-uploads that superseded them do not.
type GetValidationQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetValidationQueueQueryHandler creates a handler for validation queue queries.
func NewGetValidationQueueQueryHandler(db *gorm.DB) GetValidationQueueQueryHandler {
	return GetValidationQueueQueryHandler{db: db}
}

// Handle executes the queue query, oldest submission first.
func (h GetValidationQueueQueryHandler) Handle(
	ctx context.Context,
	query GetValidationQueueQuery,
) ([]GetValidationQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetValidationQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			p.id,
			p.customer_id,
			p.image_ref,
			p.uploaded_at
		FROM orders o
		JOIN prescriptions p ON p.order_id = o.id
		WHERE o.branch_id = ?
		  AND o.status = ?
		  AND p.status = ?
		ORDER BY p.uploaded_at
	`, query.BranchID().Bytes(), order.AwaitingPrescriptionValidation.String(), prescription.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetValidationQueueQueryResponse
		var orderID, prescriptionID, customerID uuid.UUID

		if err = rows.Scan(&orderID, &prescriptionID, &customerID, &entry.ImageRef, &entry.UploadedAt); err != nil {
			return nil, err
		}

		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.PrescriptionID, err = kernel.UUIDFromBytes(prescriptionID[:]); err != nil {
			return nil, err
		}
		if entry.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
