package commands

import (
	"context"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/order"
)

// DecidePrescriptionCommandHandler handles pharmacist verdicts.
// Records the decision, moves the order forward (approval) or back to the
// customer (rejection), and notifies the customer, all in one transaction.
//
// Two pharmacists deciding the same prescription race on the decision's
// compare-and-swap: the second one receives a ConflictError and the stored
// verdict never flips.
type DecidePrescriptionCommandHandler struct {
	uowFactory PrescriptionUoWFactory
}

// NewDecidePrescriptionCommandHandler creates a handler for prescription decisions.
func NewDecidePrescriptionCommandHandler(uowFactory PrescriptionUoWFactory) DecidePrescriptionCommandHandler {
	return DecidePrescriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pharmacist's verdict.
func (h DecidePrescriptionCommandHandler) Handle(ctx context.Context, cmd DecidePrescriptionCommand) error {
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

	prescriptionRepo := uow.PrescriptionRepository()
	p, err := prescriptionRepo.Get(ctx, cmd.PrescriptionID())
	if err != nil {
		return err
	}

	if cmd.Approved() {
		err = p.Approve(cmd.PharmacistID(), cmd.Notes())
	} else {
		err = p.Reject(cmd.PharmacistID(), cmd.Notes())
	}
	if err != nil {
		return err
	}

	if err = prescriptionRepo.UpdateDecision(ctx, p); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, p.OrderID())
	if err != nil {
		return err
	}

	var next order.Status
	if cmd.Approved() {
		next, err = o.Status().ApprovePrescription()
	} else {
		next, err = o.Status().RejectPrescription()
	}
	if err != nil {
		return err
	}
	if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
		return err
	}

	title := "Prescription approved"
	message := fmt.Sprintf("Order %s can now be paid", o.ID())
	if !cmd.Approved() {
		title = "Prescription rejected"
		message = fmt.Sprintf("Order %s needs a new prescription: %s", o.ID(), cmd.Notes())
	}

	n, err := notification.NewForRecipient(kernel.NewUUID(), o.CustomerID(), o.ID(), title, message)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
