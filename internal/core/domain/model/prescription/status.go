package prescription

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Status represents the validation state of an uploaded prescription.
// A prescription starts pending and receives exactly one pharmacist decision:
// approved or rejected. Decisions are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the prescription awaits a pharmacist decision.
	Pending

	// Approved means a pharmacist accepted the prescription.
	Approved

	// Rejected means a pharmacist declined the prescription.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// StatusFromString parses the persisted representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid prescription status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsDecided reports whether a pharmacist has already ruled on the prescription.
func (s Status) IsDecided() bool {
	return s == Approved || s == Rejected
}
