// Package money holds the monetary arithmetic helpers for invoice
// reconciliation. Amounts enter the system as JSON numbers and are converted
// to decimals before any derivation or comparison; every equality check is
// exact, with no tolerance.
package money

import "github.com/shopspring/decimal"

var half = decimal.New(5, -1)

// FromFloat converts a wire amount to a decimal using its shortest decimal
// representation, so 0.1 arrives as 0.1 and not 0.1000000000000000055.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// RoundHalfAwayFromZero rounds to two decimal places with ties going away
// from zero: 1.005 → 1.01, -1.005 → -1.01. This is the rounding rule for
// all derived monetary totals (gross, net, taxable, aggregate tax amount).
func RoundHalfAwayFromZero(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundHalfTowardZero rounds to two decimal places, but an exact tie is
// truncated toward zero: 1.005 → 1.00, -1.005 → -1.00. This rule applies
// only to the per-component tax amounts (CGST/SGST/IGST/CESS). The
// divergence from RoundHalfAwayFromZero is part of the ledger contract and
// must not be unified.
func RoundHalfTowardZero(d decimal.Decimal) decimal.Decimal {
	shifted := d.Shift(2)
	if shifted.Sub(shifted.Truncate(0)).Abs().Equal(half) {
		return shifted.Truncate(0).Shift(-2)
	}
	return d.Round(2)
}

// Mul multiplies two wire amounts as decimals.
func Mul(a, b float64) decimal.Decimal {
	return FromFloat(a).Mul(FromFloat(b))
}

// Equal reports exact decimal equality between a wire amount and a derived
// decimal.
func Equal(actual float64, expected decimal.Decimal) bool {
	return FromFloat(actual).Equal(expected)
}
