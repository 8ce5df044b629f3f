package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	decimalZero    = decimal.Zero
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)

	// daysPerMonth converts month counts into calendar-ish day counts.
	daysPerMonth = decimal.NewFromFloat(30.44)
	daysPerYear  = decimal.NewFromInt(365)
)

// moneyPlaces bounds the scale of balances carried through iterated
// compounding.
const moneyPlaces = 8

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func minDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// roundInt rounds half away from zero to an int.
func roundInt(d decimal.Decimal) int {
	return int(d.Round(0).IntPart())
}

// monthsToDays converts a month count to days at 30.44 days per month.
func monthsToDays(months int) int {
	return roundInt(decimal.NewFromInt(int64(months)).Mul(daysPerMonth))
}
