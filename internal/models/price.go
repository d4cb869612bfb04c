package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPriceUSD renders a price with en-US grouping and no fractional
// digits, e.g. 1250000 -> "$1,250,000".
func FormatPriceUSD(amount float64) string {
	return pricePrinter.Sprintf("$%.0f", amount)
}
