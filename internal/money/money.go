// Package money renders integer paise amounts for display. All arithmetic
// elsewhere stays in int64 paise; this is formatting only.
package money

import "github.com/shopspring/decimal"

const symbol = "₹"

// Format renders paise as a rupee string with two fixed decimals,
// e.g. 159900 -> "₹1599.00".
func Format(paise int64) string {
	return symbol + decimal.New(paise, -2).StringFixed(2)
}
