// Package money provides the exact-decimal value types the checkout
// math is built on. Amounts are normalized to two fractional digits
// with half-up rounding and can never go negative.
package money

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when an operation would produce or
// accept a negative monetary amount.
var ErrNegativeAmount = errors.New("money: amount cannot be negative")

// Money is a non-negative monetary amount with two fractional digits.
// The zero value is usable and equals Zero.
type Money struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{}

// New builds a Money from a raw decimal, rounding half-up to two
// fractional digits. Negative input fails.
func New(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewFromInt builds a Money from whole currency units.
func NewFromInt(amount int64) (Money, error) {
	return New(decimal.NewFromInt(amount))
}

// NewFromFloat builds a Money from a float amount.
func NewFromFloat(amount float64) (Money, error) {
	return New(decimal.NewFromFloat(amount))
}

// Parse builds a Money from its decimal string form.
func Parse(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("money: parse %q: %w", value, err)
	}
	return New(d)
}

// MustParse is Parse for trusted constants; it panics on bad input.
func MustParse(value string) Money {
	m, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount exposes the normalized decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns the sum, re-normalized.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

// Sub returns the difference. A result below zero fails.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: result.Round(2)}, nil
}

// MulInt scales the amount by a non-negative whole quantity.
func (m Money) MulInt(n int) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(2)}, nil
}

// MulDecimal scales the amount by an arbitrary non-negative factor.
func (m Money) MulDecimal(factor decimal.Decimal) (Money, error) {
	if factor.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: m.amount.Mul(factor).Round(2)}, nil
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.Cmp(other.amount) > 0
}

// GreaterThanOrEqual reports m >= other.
func (m Money) GreaterThanOrEqual(other Money) bool {
	return m.amount.Cmp(other.amount) >= 0
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares normalized amounts.
func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON renders the amount as a fixed two-digit decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts either a JSON string or number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		var number float64
		if numErr := json.Unmarshal(data, &number); numErr != nil {
			return fmt.Errorf("money: unmarshal %s: %w", data, err)
		}
		parsed, newErr := NewFromFloat(number)
		if newErr != nil {
			return newErr
		}
		*m = parsed
		return nil
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
