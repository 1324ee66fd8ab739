package kernel

import (
	"fmt"

	"pharmacy/internal/pkg/errs"
)

// Money is a value object representing a monetary amount in minor currency
// units (e.g. cents). Amounts are never negative in this domain: prices,
// order totals, and payment amounts are all zero or positive.
//
// Money is immutable; arithmetic methods return new values. Historical
// integrity of order totals relies on Money being a snapshot: once an order
// item captures its unit price, later catalog price changes never alter it.
//
// Example usage:
//
//	price, err := kernel.NewMoney(1500)
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.MulQuantity(3) // 4500
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", amount),
		)
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// MulQuantity returns the amount multiplied by an item quantity.
func (m Money) MulQuantity(qty int) Money {
	return Money{amount: m.amount * int64(qty)}
}

// IsEqual compares two Money values for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String returns the amount formatted as a plain integer of minor units.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
