package kernel

import (
	"fmt"

	"checkout/internal/pkg/errs"
)

// DefaultCurrency is used when no currency is supplied to NewMoney.
const DefaultCurrency = "USD"

// Money is a value object representing a monetary amount in a single currency.
// Amounts are stored in the smallest currency unit (cents) to avoid floating
// point rounding in pricing math.
//
// The zero value is a valid "zero amount in no currency" and compares equal
// only to itself. Money is immutable and safe for concurrent use.
//
// Example usage:
//
//	total, err := kernel.NewMoney(4200, "USD") // 42.00 USD
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(total.String()) // "42.00 USD"
type Money struct {
	cents    int64
	currency string
}

// NewMoney creates a Money value from an amount in cents and a currency code.
// Negative amounts are rejected; an empty currency falls back to DefaultCurrency.
func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", cents),
		)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	return Money{cents: cents, currency: currency}, nil
}

// Cents returns the amount in the smallest currency unit.
func (m Money) Cents() int64 {
	return m.cents
}

// Currency returns the ISO currency code of the amount.
func (m Money) Currency() string {
	return m.currency
}

// Float64 returns the amount in major currency units.
// Intended for rendering only; arithmetic stays in cents.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
// Returns an error when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("cannot add %s to %s", other.currency, m.currency),
		)
	}

	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

// IsEqual compares two amounts for equality of both value and currency.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String returns the amount formatted in major units with the currency code,
// e.g. "42.00 USD". Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.cents/100, m.cents%100, m.currency)
}
