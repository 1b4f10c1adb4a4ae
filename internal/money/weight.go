package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultWeightUnit is assumed when no unit is supplied.
const DefaultWeightUnit = "kg"

var (
	// ErrNegativeWeight is returned when a weight amount is below zero.
	ErrNegativeWeight = errors.New("money: weight cannot be negative")
	// ErrUnitMismatch is returned when combining weights tagged with
	// different units.
	ErrUnitMismatch = errors.New("money: mismatched weight units")
)

// Weight is a non-negative amount tagged with a measurement unit.
// The zero value is a zero weight in the default unit.
type Weight struct {
	amount decimal.Decimal
	unit   string
}

// ZeroWeight is the zero weight in the default unit.
var ZeroWeight = Weight{}

// NewWeight builds a Weight in the given unit. An empty unit falls
// back to the default; a negative amount fails.
func NewWeight(amount decimal.Decimal, unit string) (Weight, error) {
	if amount.IsNegative() {
		return Weight{}, ErrNegativeWeight
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = DefaultWeightUnit
	}
	return Weight{amount: amount, unit: unit}, nil
}

// Kilograms builds a Weight in kilograms from a float amount.
func Kilograms(amount float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(amount), DefaultWeightUnit)
}

// MustKilograms is Kilograms for trusted constants; it panics on bad input.
func MustKilograms(amount float64) Weight {
	w, err := Kilograms(amount)
	if err != nil {
		panic(err)
	}
	return w
}

// Amount exposes the raw decimal amount.
func (w Weight) Amount() decimal.Decimal {
	return w.amount
}

// Unit returns the measurement unit.
func (w Weight) Unit() string {
	if w.unit == "" {
		return DefaultWeightUnit
	}
	return w.unit
}

// Add sums two weights of the same unit.
func (w Weight) Add(other Weight) (Weight, error) {
	if w.Unit() != other.Unit() {
		return Weight{}, ErrUnitMismatch
	}
	return Weight{amount: w.amount.Add(other.amount), unit: w.Unit()}, nil
}

// MulInt scales the weight by a non-negative whole quantity.
func (w Weight) MulInt(n int) (Weight, error) {
	if n < 0 {
		return Weight{}, ErrNegativeWeight
	}
	return Weight{amount: w.amount.Mul(decimal.NewFromInt(int64(n))), unit: w.Unit()}, nil
}

// GreaterThan reports w > other; units must match.
func (w Weight) GreaterThan(other Weight) (bool, error) {
	if w.Unit() != other.Unit() {
		return false, ErrUnitMismatch
	}
	return w.amount.Cmp(other.amount) > 0, nil
}

// IsZero reports whether the amount equals zero.
func (w Weight) IsZero() bool {
	return w.amount.IsZero()
}

// Equal compares amount and unit.
func (w Weight) Equal(other Weight) bool {
	return w.Unit() == other.Unit() && w.amount.Cmp(other.amount) == 0
}

func (w Weight) String() string {
	return w.amount.String() + " " + w.Unit()
}
