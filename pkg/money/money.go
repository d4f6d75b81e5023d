// Package money converts between dollar amounts as clients send them and
// the integer cents the ledger stores.
package money

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNotPositive    = errors.New("amount must be greater than zero")
	ErrFractionalCent = errors.New("amount must not have more than two decimal places")
	ErrTooLarge       = errors.New("amount is too large")
)

// maxCents keeps every amount well inside int64 after summation.
const maxCents = int64(1_000_000_000_00)

var hundred = decimal.NewFromInt(100)

// ParseCents validates a positive dollar amount with at most two fractional
// digits and returns it in cents.
func ParseCents(dollars decimal.Decimal) (int64, error) {
	if !dollars.IsPositive() {
		return 0, ErrNotPositive
	}
	if !dollars.Equal(dollars.Truncate(2)) {
		return 0, ErrFractionalCent
	}
	cents := dollars.Mul(hundred)
	if cents.GreaterThan(decimal.NewFromInt(maxCents)) {
		return 0, ErrTooLarge
	}
	return cents.IntPart(), nil
}

// MulCents returns count * rateCents, rejecting negative inputs and results
// above the largest amount ParseCents accepts.
func MulCents(count, rateCents int64) (int64, error) {
	if count < 0 || rateCents < 0 {
		return 0, ErrNotPositive
	}
	if count == 0 || rateCents == 0 {
		return 0, nil
	}
	if count > maxCents/rateCents {
		return 0, ErrTooLarge
	}
	return count * rateCents, nil
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// Dollars renders cents as a JSON number with two decimals, e.g. 50.00.
func Dollars(cents int64) json.Number {
	return json.Number(FromCents(cents).StringFixed(2))
}
