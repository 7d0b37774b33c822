// Package money formatea valores monetarios en reales con las convenciones pt-BR.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devuelve el valor con símbolo y dos decimales, ej: "R$ 1.234,50".
func FormatBRL(v decimal.Decimal) string {
	return "R$ " + printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// FormatBRLWhole devuelve el valor sin decimales, como en las tarjetas del painel: "R$ 1.235".
func FormatBRLWhole(v decimal.Decimal) string {
	return "R$ " + printer.Sprintf("%d", v.Round(0).IntPart())
}
