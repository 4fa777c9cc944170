// Package money renders US-dollar currency strings.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount as a US-locale currency string with exactly
// two fraction digits and grouped thousands, e.g. "$1,234.50". Negative
// amounts carry a leading minus before the symbol: "-$5.00". NaN and
// infinities are out of contract.
func Format(amount float64) string {
	sign := ""
	if math.Signbit(amount) && amount != 0 {
		sign = "-"
		amount = -amount
	}
	n := number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	)
	return printer.Sprintf("%s$%v", sign, n)
}
