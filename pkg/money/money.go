// Package money provides a fixed-point currency value stored as an integer
// number of cents. Arithmetic stays in integers; decimal conversion happens
// only at the parse/render boundary.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor units (cents).
type Money int64

// Zero is the zero amount.
const Zero Money = 0

// Cent is the smallest representable amount.
const Cent Money = 1

// FromFloat converts a decimal amount to cents, rounding half away from zero.
func FromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Parse converts a decimal string like "12.34" to cents.
// It rejects values that are not finite decimal numbers.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount %q: not a finite number", s)
	}
	return FromFloat(amount), nil
}

// Cents returns the raw minor-unit count for storage.
func (m Money) Cents() int64 {
	return int64(m)
}

// Float returns the decimal value. Display use only; arithmetic stays
// in cents.
func (m Money) Float() float64 {
	return float64(m) / 100
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String renders the amount with two decimals, e.g. "12.34" or "-0.05".
func (m Money) String() string {
	sign := ""
	c := int64(m)
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
