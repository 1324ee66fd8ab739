package commands

import (
	"context"
	"fmt"
	"time"

	"pharmacy/internal/core/domain/model/delivery"
	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/payment"
	"pharmacy/internal/core/domain/model/staff"
)

// ConfirmPaymentCommandHandler handles payment confirmation.
// Inside one transaction it records the payment with its receipt, moves the
// order to processing, moves the delivery to preparing, and notifies the
// warehouse.
//
// The order row is locked for the duration of the transaction, so two
// cashiers confirming the same order serialize: the second one finds the
// order already in processing and receives a ConflictError, never a second
// payment row.
type ConfirmPaymentCommandHandler struct {
	uowFactory ConfirmPaymentUoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment confirmation.
func NewConfirmPaymentCommandHandler(uowFactory ConfirmPaymentUoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment confirmation command.
// The payment amount is always the order's stored total; the cashier cannot
// override it.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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
	o, err := orderRepo.GetWithLock(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	next, err := o.Status().ConfirmPayment()
	if err != nil {
		return err
	}

	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), cmd.Method(), o.TotalAmount())
	if err != nil {
		return err
	}

	paymentRepo := uow.PaymentRepository()
	if err = paymentRepo.AddPayment(ctx, p); err != nil {
		return err
	}

	receipt, err := payment.NewReceipt(kernel.NewUUID(), p.ID(), receiptPayload(o.ID(), p))
	if err != nil {
		return err
	}
	if err = paymentRepo.AddReceipt(ctx, receipt); err != nil {
		return err
	}

	if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	d, err := deliveryRepo.GetByOrderID(ctx, o.ID())
	if err != nil {
		return err
	}
	if err = d.Status().CanTransitionTo(delivery.StatusPreparing, d.Method()); err != nil {
		return err
	}
	if err = deliveryRepo.TransitionStatus(ctx, d.ID(), d.Status(), delivery.StatusPreparing); err != nil {
		return err
	}

	n, err := notification.NewForRole(
		kernel.NewUUID(),
		staff.RoleWarehouse,
		o.ID(),
		"Order ready for preparation",
		fmt.Sprintf("Order %s is paid and awaits preparation", o.ID()),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func receiptPayload(orderID kernel.UUID, p *payment.Payment) string {
	return fmt.Sprintf(
		`{"order_id":%q,"payment_id":%q,"method":%q,"amount":%d,"issued_at":%q}`,
		orderID, p.ID(), p.Method(), p.Amount().Amount(), time.Now().UTC().Format(time.RFC3339),
	)
}
