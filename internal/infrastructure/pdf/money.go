package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// formatMoney redondea a pesos enteros con separador de miles.
// Ej: 25000 → "25.000", 1000000 → "1.000.000"
func formatMoney(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.Round(0).IntPart())
}
