package output

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as grouped currency with cents, e.g.
// "$1,234.50" or "-$20.00".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatWholeCurrency formats a decimal as grouped currency rounded to the
// unit, e.g. "$1,235".
func FormatWholeCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	if rounded.IsNegative() {
		return "-$" + humanize.Comma(rounded.Abs().IntPart())
	}
	return "$" + humanize.Comma(rounded.IntPart())
}

// FormatPercentage formats a value already expressed in percent.
func FormatPercentage(pct decimal.Decimal) string {
	return pct.StringFixed(1) + "%"
}

// FormatRate formats a fractional rate as a percentage, 0.07 -> "7.0%".
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(hundred))
}

// FormatInt groups thousands, 6545 -> "6,545".
func FormatInt(n int) string {
	return humanize.Comma(int64(n))
}

// FormatAge renders an optional age.
func FormatAge(age *int) string {
	if age == nil {
		return "n/a"
	}
	return strconv.Itoa(*age)
}

// FormatYearsMonths renders a duration split into years and months.
func FormatYearsMonths(years, months int) string {
	return fmt.Sprintf("%dy %dm", years, months)
}
