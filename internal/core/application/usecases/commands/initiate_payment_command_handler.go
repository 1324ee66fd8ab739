package commands

import (
	"context"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/pkg/errs"
)

// InitiatePaymentCommandHandler handles the start of the payment flow.
// Moves the order into awaiting verification and notifies cashiers. The
// payment row itself is only written by the confirmation command.
type InitiatePaymentCommandHandler struct {
	uowFactory OrderStatusUoWFactory
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(uowFactory OrderStatusUoWFactory) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment initiation command.
func (h InitiatePaymentCommandHandler) Handle(ctx context.Context, cmd InitiatePaymentCommand) error {
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
		return errs.NewAuthorizationError(staff.RoleCustomer.String(), "payment.initiate")
	}

	next, err := o.Status().InitiatePayment()
	if err != nil {
		return err
	}
	if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
		return err
	}

	n, err := notification.NewForRole(
		kernel.NewUUID(),
		staff.RoleCashier,
		o.ID(),
		"Payment awaiting verification",
		fmt.Sprintf("Order %s awaits %s payment of %s", o.ID(), cmd.Method(), o.TotalAmount()),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
