package fattura

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a EUR amount.
type Money = decimal.Decimal

// FormatAmount renders m with exactly two fraction digits using round-half-to-even,
// without currency symbol or grouping. 1000 -> "1000.00", 1220.005 -> "1220.00".
func FormatAmount(m Money) string {
	return m.RoundBank(2).StringFixed(2)
}

// ParseAmount parses a decimal string such as "1220.00".
func ParseAmount(s string) (Money, error) {
	m, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return m, nil
}

// MustAmount is ParseAmount for literals known to be valid.
func MustAmount(s string) Money {
	m, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return m
}
