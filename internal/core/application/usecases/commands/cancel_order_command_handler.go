package commands

import (
	"context"

	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/pkg/errs"
)

// CancelOrderCommandHandler handles pre-payment cancellation.
// Moves the order to cancelled and returns the deducted quantities to the
// branch's stock in the same transaction.
//
// A cancellation racing a pharmacist's approval is decided by the order's
// compare-and-swap: exactly one of the two transitions lands.
type CancelOrderCommandHandler struct {
	uowFactory CancelOrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory CancelOrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.IsOwnedBy(cmd.CustomerID()) {
		return errs.NewAuthorizationError(staff.RoleCustomer.String(), "order.cancel")
	}

	next, err := o.Status().Cancel()
	if err != nil {
		return err
	}
	if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, item := range o.Items() {
		if err = inventoryRepo.Replenish(ctx, item.ProductID(), o.BranchID(), item.Quantity()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
