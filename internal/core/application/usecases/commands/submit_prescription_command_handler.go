package commands

import (
	"context"
	"fmt"

	"pharmacy/internal/core/domain/model/kernel"
	"pharmacy/internal/core/domain/model/notification"
	"pharmacy/internal/core/domain/model/prescription"
	"pharmacy/internal/core/domain/model/staff"
	"pharmacy/internal/pkg/errs"
)

// SubmitPrescriptionCommandHandler handles prescription uploads.
// Moves the order into validation, records the prescription, and notifies
// pharmacists, all in one transaction. Works both for the first upload and
// for re-uploads after a rejection.
type SubmitPrescriptionCommandHandler struct {
	uowFactory PrescriptionUoWFactory
}

// NewSubmitPrescriptionCommandHandler creates a handler for prescription uploads.
func NewSubmitPrescriptionCommandHandler(uowFactory PrescriptionUoWFactory) SubmitPrescriptionCommandHandler {
	return SubmitPrescriptionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the prescription upload.
// The order transition is a compare-and-swap against the status the order
// was read at, so a concurrent transition of the same order fails one of the
// two transactions instead of corrupting the workflow.
func (h SubmitPrescriptionCommandHandler) Handle(ctx context.Context, cmd SubmitPrescriptionCommand) error {
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
		return errs.NewAuthorizationError(staff.RoleCustomer.String(), "prescription.submit")
	}

	next, err := o.Status().SubmitPrescription()
	if err != nil {
		return err
	}
	if err = orderRepo.TransitionStatus(ctx, o.ID(), o.Status(), next); err != nil {
		return err
	}

	p, err := prescription.NewPrescription(cmd.PrescriptionID(), cmd.CustomerID(), cmd.OrderID(), cmd.ImageRef())
	if err != nil {
		return err
	}
	if err = uow.PrescriptionRepository().Add(ctx, p); err != nil {
		return err
	}

	n, err := notification.NewForRole(
		kernel.NewUUID(),
		staff.RolePharmacist,
		o.ID(),
		"Prescription awaiting validation",
		fmt.Sprintf("Order %s has a new prescription to validate", o.ID()),
	)
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
