package order

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status represents the lifecycle state of a pharmacy order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	pending_prescription ──> awaiting_prescription_validation ──> pending_payment
//	        ▲                          │                               │
//	        │                          ▼                               ▼
//	        └──────────── prescription_declined          awaiting_verification
//	      (re-upload allowed)                                          │
//	                                                                   ▼
//	                                              processing ──> completed
//
// Orders without prescription-required items start directly at
// pending_payment. cancelled is reachable from every non-terminal state and,
// like completed, is absorbing.
//
// Status is a value object that validates state transitions and provides the
// snake_case string vocabulary used for persistence and over the wire.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPrescription is the initial status of an order containing at
	// least one prescription-required item. The order is blocked until the
	// customer uploads a prescription.
	PendingPrescription

	// AwaitingPrescriptionValidation indicates a prescription has been
	// uploaded and is waiting for a pharmacist decision.
	AwaitingPrescriptionValidation

	// PendingPayment indicates the order is cleared for payment, either
	// because no item requires a prescription or because one was approved.
	PendingPayment

	// AwaitingVerification indicates the customer initiated payment and a
	// cashier must confirm it.
	AwaitingVerification

	// Processing indicates payment is confirmed and the warehouse is
	// fulfilling the order.
	Processing

	// Completed indicates the delivery or pickup finished. Final state.
	Completed

	// PrescriptionDeclined indicates a pharmacist rejected the prescription.
	// The customer may upload a new one, looping back into validation.
	PrescriptionDeclined

	// Cancelled indicates the order was abandoned. Final state.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                        "unknown",
		PendingPrescription:            "pending_prescription",
		AwaitingPrescriptionValidation: "awaiting_prescription_validation",
		PendingPayment:                 "pending_payment",
		AwaitingVerification:           "awaiting_verification",
		Processing:                     "processing",
		Completed:                      "completed",
		PrescriptionDeclined:           "prescription_declined",
		Cancelled:                      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPrescription:            "pending_prescription",
		AwaitingPrescriptionValidation: "awaiting_prescription_validation",
		PendingPayment:                 "pending_payment",
		AwaitingVerification:           "awaiting_verification",
		Processing:                     "processing",
		Completed:                      "completed",
		PrescriptionDeclined:           "prescription_declined",
		Cancelled:                      "cancelled",
	}
}

// StatusFromString parses the persisted snake_case representation of a status.
// Returns an error for any string outside the valid vocabulary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is part of the valid vocabulary.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// InitialStatus returns the status a freshly placed order starts in.
// Orders containing prescription-required items are blocked on validation;
// all others go straight to payment.
func InitialStatus(requiresPrescription bool) Status {
	if requiresPrescription {
		return PendingPrescription
	}
	return PendingPayment
}

// SubmitPrescription transitions the status to AwaitingPrescriptionValidation.
//
// Valid from:
//   - PendingPrescription (first upload)
//   - PrescriptionDeclined (re-upload after rejection)
func (s Status) SubmitPrescription() (Status, error) {
	if s != PendingPrescription && s != PrescriptionDeclined {
		return Unknown, s.invalidTransitionError(AwaitingPrescriptionValidation)
	}
	return AwaitingPrescriptionValidation, nil
}

// ApprovePrescription transitions the status to PendingPayment.
// Valid only from AwaitingPrescriptionValidation.
func (s Status) ApprovePrescription() (Status, error) {
	if s != AwaitingPrescriptionValidation {
		return Unknown, s.invalidTransitionError(PendingPayment)
	}
	return PendingPayment, nil
}

// RejectPrescription transitions the status to PrescriptionDeclined.
// Valid only from AwaitingPrescriptionValidation. The customer may then
// re-upload, looping back via SubmitPrescription.
func (s Status) RejectPrescription() (Status, error) {
	if s != AwaitingPrescriptionValidation {
		return Unknown, s.invalidTransitionError(PrescriptionDeclined)
	}
	return PrescriptionDeclined, nil
}

// InitiatePayment transitions the status to AwaitingVerification.
// Valid only from PendingPayment.
func (s Status) InitiatePayment() (Status, error) {
	if s != PendingPayment {
		return Unknown, s.invalidTransitionError(AwaitingVerification)
	}
	return AwaitingVerification, nil
}

// ConfirmPayment transitions the status to Processing.
// Valid only from AwaitingVerification.
func (s Status) ConfirmPayment() (Status, error) {
	if s != AwaitingVerification {
		return Unknown, s.invalidTransitionError(Processing)
	}
	return Processing, nil
}

// Complete transitions the status to Completed.
// Valid only from Processing; triggered by the delivery reaching its
// terminal state.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return Unknown, s.invalidTransitionError(Completed)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Valid until the customer initiates payment; from AwaitingVerification on,
// a cashier may already be handling money and the order only runs forward.
func (s Status) Cancel() (Status, error) {
	switch s {
	case PendingPrescription, AwaitingPrescriptionValidation, PendingPayment, PrescriptionDeclined:
		return Cancelled, nil
	default:
		return Unknown, s.invalidTransitionError(Cancelled)
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

func (s Status) invalidTransitionError(target Status) error {
	return errs.NewConflictErrorWithCause(
		"status",
		s.String(),
		fmt.Errorf("transition from %s to %s is not allowed", s, target),
	)
}
