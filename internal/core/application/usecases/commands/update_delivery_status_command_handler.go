package commands

import (
	"context"
	"fmt"

	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
)

// UpdateDeliveryStatusCommandHandler handles delivery progression.
// Validates the requested edge against the delivery's method-specific state
// graph and applies it with a compare-and-swap. Completing a delivery also
// completes the parent order in the same transaction: the two never diverge.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery progression.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery progression command.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = d.Status().CanTransitionTo(cmd.Target(), d.Method()); err != nil {
		return err
	}
	if err = deliveryRepo.TransitionStatus(ctx, d.ID(), d.Status(), cmd.Target()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Target() == delivery.StatusCompleted {
		next, err := o.Status().Complete()
		if err != nil {
			return err
		}
		if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
			return err
		}
	}

	n, err := notification.NewForRecipient(
		kernel.NewUUID(),
		o.CustomerID(),
		o.ID(),
		"Order update",
		fmt.Sprintf("Order %s is now %s", o.ID(), cmd.Target()),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
