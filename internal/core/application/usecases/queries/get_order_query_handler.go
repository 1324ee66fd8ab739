package queries

import (
	"context"
	"database/sql"
	"errors"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items and delivery state.
// An order outside the caller's visibility is reported as not found rather
// than forbidden, so customers cannot probe for other customers' order IDs.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.readOrder(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Items, err = h.readItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readOrder(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	sqlQuery := `
		SELECT
			o.id,
			o.customer_id,
			o.branch_id,
			o.status,
			o.total_amount,
			o.created_at,
			d.method,
			d.status,
			d.address
		FROM orders o
		JOIN deliveries d ON d.order_id = o.id
		WHERE o.id = ?
	`
	args := []any{query.OrderID().Bytes()}
	if query.CustomerID() != nil {
		sqlQuery += " AND o.customer_id = ?"
		args = append(args, query.CustomerID().Bytes())
	}

	row := h.db.WithContext(ctx).Raw(sqlQuery, args...).Row()

	var resp GetOrderQueryResponse
	var orderID, customerID, branchID uuid.UUID
	err := row.Scan(
		&orderID, &customerID, &branchID,
		&resp.Status, &resp.TotalAmount, &resp.CreatedAt,
		&resp.DeliveryMethod, &resp.DeliveryStatus, &resp.Address,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BranchID, err = kernel.UUIDFromBytes(branchID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryResponseItem, error) {
	items := make([]GetOrderQueryResponseItem, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY product_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderQueryResponseItem
		var productID uuid.UUID

		if err = rows.Scan(&productID, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
