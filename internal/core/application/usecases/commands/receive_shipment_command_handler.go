package commands

import (
	"context"
)

// ReceiveShipmentCommandHandler handles stock replenishment.
// Each increment is applied as an atomic upsert, so concurrent shipments and
// order placements for the same product interleave without losing updates;
// all lines of one shipment commit together.
type ReceiveShipmentCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewReceiveShipmentCommandHandler creates a handler for stock replenishment.
func NewReceiveShipmentCommandHandler(uowFactory InventoryUoWFactory) ReceiveShipmentCommandHandler {
	return ReceiveShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment command.
func (h ReceiveShipmentCommandHandler) Handle(ctx context.Context, cmd ReceiveShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	for _, line := range cmd.Lines() {
		if err := inventoryRepo.Replenish(ctx, line.ProductID, cmd.BranchID(), line.Quantity); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
