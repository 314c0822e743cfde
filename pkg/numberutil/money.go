package numberutil

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Monetary amounts are carried as integer cents everywhere inside the
// system. Decimal strings exist only at the API boundary.

// ParseAmount converts a decimal currency string to cents. It rejects
// negative amounts and amounts with more than two fraction digits.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	if d.IsNegative() {
		return 0, fmt.Errorf("amount must not be negative, got %s", s)
	}

	cents := d.Mul(decimal.New(1, 2))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than two fraction digits", s)
	}

	return cents.IntPart(), nil
}

// FormatCents renders cents as a decimal string with exactly two fraction
// digits.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
