package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount for display with grouping separators and two
// decimal places. Wire values stay numeric; only view models use this.
func FormatMoney(amount float64) string {
	return moneyPrinter.Sprintf("%.2f", amount)
}
