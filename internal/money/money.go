// Package money holds price values as integer minor units so totals never
// drift through repeated float parsing.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSymbol is the storefront currency.
const DefaultSymbol = "£"

var (
	// ErrInvalidPrice is returned when price text cannot be read as an amount.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrOverflow is returned when a sum no longer fits in minor units.
	ErrOverflow = errors.New("amount overflow")
	// ErrCurrencyMismatch is returned when adding amounts in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// Money is an amount in minor units (pence) for a single currency symbol.
type Money struct {
	Symbol string
	Minor  int64
}

// Zero returns an empty amount in the given currency.
func Zero(symbol string) Money {
	return Money{Symbol: symbol}
}

// Parse reads display text such as "£10.00" or "12.5". The symbol is
// stripped once and the rest is read as a decimal, rounded half away from
// zero to whole minor units.
func Parse(text, symbol string) (Money, error) {
	raw := strings.TrimSpace(text)
	if symbol != "" {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, symbol))
	}
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, text)
	}
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %q is negative", ErrInvalidPrice, text)
	}

	minor := amount.Round(2).Shift(2)
	if minor.GreaterThan(maxMinor) {
		return Money{}, fmt.Errorf("%w: %q is too large", ErrInvalidPrice, text)
	}
	return Money{Symbol: symbol, Minor: minor.IntPart()}, nil
}

// Add returns the sum of m and other. Both must share a symbol and the
// result must fit in minor units.
func (m Money) Add(other Money) (Money, error) {
	if m.Symbol != other.Symbol {
		return m, fmt.Errorf("%w: %q and %q", ErrCurrencyMismatch, m.Symbol, other.Symbol)
	}
	if (other.Minor > 0 && m.Minor > math.MaxInt64-other.Minor) ||
		(other.Minor < 0 && m.Minor < math.MinInt64-other.Minor) {
		return m, fmt.Errorf("%w: %s + %s", ErrOverflow, m, other)
	}
	return Money{Symbol: m.Symbol, Minor: m.Minor + other.Minor}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Minor == 0
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Minor, -2)
}

// String renders the amount with two decimals, e.g. "£15.50".
func (m Money) String() string {
	return m.Symbol + m.Decimal().StringFixed(2)
}
