package money

import "github.com/shopspring/decimal"

// Amount is a decimal monetary value in the service's single currency.
type Amount = decimal.Decimal

// Zero is the zero amount.
var Zero = decimal.Zero

// Round rounds an amount to 2 decimal places using banker's rounding
// (half-to-even). All monetary rounding in the service goes through here so
// the behaviour stays uniform.
func Round(a Amount) Amount {
	return a.RoundBank(2)
}

// FromString parses a decimal amount from its string representation.
func FromString(s string) (Amount, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses an amount and panics on failure. Intended for fixture
// data and tests.
func MustFromString(s string) Amount {
	a, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// FromInt converts an integer count of whole currency units.
func FromInt(v int64) Amount {
	return decimal.NewFromInt(v)
}
