// Package money holds every monetary arithmetic and display decision in one
// place. All amounts are exact decimals with a fixed scale of two digits,
// binary floating point is never used for arithmetic.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Add returns a + b, exact to the cent.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b, exact to the cent.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Mul returns a * scalar, rounded to two decimal places.
func Mul(a, scalar decimal.Decimal) decimal.Decimal {
	return a.Mul(scalar).Round(2)
}

// Cmp compares two amounts. It returns -1 if a < b, 0 if a == b and 1 if a > b.
func Cmp(a, b decimal.Decimal) int {
	return a.Cmp(b)
}

// Sum adds up all values, exact to the cent.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}

	return sum
}

// Format renders an amount as a currency display string with thousands
// separators and exactly two decimal places:
//
//	Format(1234.5)  returns "$1,234.50"
//	Format(-50)     returns "-$50.00"
//	Format(0)       returns "$0.00"
//
// The minus sign sits before the currency symbol, matching how banks display
// negative balances. The conversion to a float happens only here, at the
// display boundary, and nowhere else.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	value, _ := rounded.Abs().Float64()
	formatted := printer.Sprintf("%v", number.Decimal(value,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	if rounded.IsNegative() {
		return "-$" + formatted
	}

	return "$" + formatted
}
