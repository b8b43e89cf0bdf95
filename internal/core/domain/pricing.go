package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FixedRatePerKg is the milling rate applied to every record. Callers can
// never set a rate; anything they supply is discarded at persistence time.
var FixedRatePerKg = decimal.New(200, -2) // 2.00

// ComputePrice derives the rate and total for a given wheat weight.
// It is invoked at creation and again at every update, so a stored total
// is always a pure function of the stored weight.
func ComputePrice(weight decimal.Decimal) (rate, total decimal.Decimal) {
	return FixedRatePerKg, weight.Mul(FixedRatePerKg)
}

// ParseWeight converts raw form input into a weight in kilograms.
// Empty, non-numeric, and negative input all collapse to zero rather than
// erroring, matching the forgiving behaviour of the intake form.
func ParseWeight(input string) decimal.Decimal {
	weight, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil || weight.IsNegative() {
		return decimal.Zero
	}
	return weight
}
