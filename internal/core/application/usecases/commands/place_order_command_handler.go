package commands

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/inventory"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/order"
	"pharmacy/internal/core/ports"
	"pharmacy/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Resolves products against the catalog, deducts branch stock, and creates
// the order with its delivery record in a single transaction.
//
// Stock rows are locked in ascending product order, so two concurrent
// placements touching the same products always acquire locks in the same
// sequence. All lines are checked before any deduction: an order is either
// fulfilled entirely or rejected entirely.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	catalog    ports.ProductCatalog
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlaceOrderUoWFactory for transactional persistence and a
// ProductCatalog for price and prescription-flag resolution.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	catalog ports.ProductCatalog,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the order placement command. Returns the status the new
// order started in, so the caller can tell a prescription upload is needed
// without a follow-up read.
// Prices are snapshotted from the catalog at this moment; later catalog
// changes never alter an existing order's total.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	lines := cmd.Lines()
	productIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		productIDs = append(productIDs, line.ProductID)
	}

	products, err := h.catalog.GetByIDs(ctx, productIDs)
	if err != nil {
		return order.Unknown, err
	}

	items, requiresPrescription, err := buildItems(lines, products)
	if err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	records, err := lockAndCheckStock(ctx, inventoryRepo, lines, cmd.BranchID())
	if err != nil {
		return order.Unknown, err
	}

	for i, line := range lines {
		if err = records[i].Deduct(line.Quantity); err != nil {
			return order.Unknown, err
		}
		if err = inventoryRepo.Save(ctx, records[i]); err != nil {
			return order.Unknown, err
		}
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.BranchID(), items, requiresPrescription)
	if err != nil {
		return order.Unknown, err
	}
	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return order.Unknown, err
	}

	newDelivery, err := delivery.NewDelivery(kernel.NewUUID(), newOrder.ID(), cmd.Method(), cmd.Address())
	if err != nil {
		return order.Unknown, err
	}
	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return newOrder.Status(), nil
}

// buildItems resolves each requested line against the catalog, snapshotting
// the current price, and reports whether any product requires a prescription.
func buildItems(lines []OrderLine, products []ports.Product) ([]order.Item, bool, error) {
	byID := make(map[kernel.UUID]ports.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]order.Item, 0, len(lines))
	requiresPrescription := false
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, false, errs.NewObjectNotFoundError("productID", line.ProductID)
		}
		if !product.IsActive {
			return nil, false, errs.NewValueIsInvalidErrorWithCause(
				"productID",
				fmt.Errorf("product %s is not available for sale", product.ID),
			)
		}

		item, err := order.NewItem(line.ProductID, line.Quantity, product.Price)
		if err != nil {
			return nil, false, err
		}
		items = append(items, item)
		requiresPrescription = requiresPrescription || product.RequiresPrescription
	}

	return items, requiresPrescription, nil
}

// lockAndCheckStock locks the stock row of every line in ascending product
// order and verifies each can cover its requested quantity. Returns the
// locked records positionally aligned with lines.
func lockAndCheckStock(
	ctx context.Context,
	repo ports.InventoryRepository,
	lines []OrderLine,
	branchID kernel.UUID,
) ([]*inventory.Record, error) {
	indexes := make([]int, len(lines))
	for i := range indexes {
		indexes[i] = i
	}
	sort.Slice(indexes, func(a, b int) bool {
		return lines[indexes[a]].ProductID.String() < lines[indexes[b]].ProductID.String()
	})

	records := make([]*inventory.Record, len(lines))
	for _, i := range indexes {
		line := lines[i]
		record, err := repo.GetForUpdate(ctx, line.ProductID, branchID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewInsufficientStockError(line.ProductID.String(), 0, line.Quantity)
		}
		if err != nil {
			return nil, err
		}
		if !record.CanCover(line.Quantity) {
			return nil, errs.NewInsufficientStockError(line.ProductID.String(), record.Quantity(), line.Quantity)
		}
		records[i] = record
	}

	return records, nil
}
