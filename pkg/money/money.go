// Package money formatea importes en unidades menores (centavos) según moneda y locale.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format devuelve el importe con separadores del locale y el código ISO de la moneda.
// Ej: Format(150000, "USD", "en_US") → "1,500.00 USD"; con "de_DE" → "1.500,00 USD".
// Si la moneda o el locale no se reconocen se usa el formato plano "1500.00 XXX".
func Format(amount int64, currencyCode, localeCode string) string {
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return plain(amount, 2, currencyCode)
	}
	scale, _ := currency.Standard.Rounding(unit)

	tag, err := language.Parse(strings.ReplaceAll(localeCode, "_", "-"))
	if err != nil {
		return plain(amount, scale, unit.String())
	}
	value := decimal.New(amount, -int32(scale)).InexactFloat64()
	p := message.NewPrinter(tag)
	return p.Sprintf("%v %s", number.Decimal(value, number.Scale(scale)), unit.String())
}

// Decimal importe en unidades mayores con la escala de la moneda (2 si no se reconoce).
func Decimal(amount int64, currencyCode string) decimal.Decimal {
	scale := 2
	if unit, err := currency.ParseISO(currencyCode); err == nil {
		scale, _ = currency.Standard.Rounding(unit)
	}
	return decimal.New(amount, -int32(scale))
}

func plain(amount int64, scale int, code string) string {
	return strings.TrimSpace(decimal.New(amount, -int32(scale)).StringFixed(int32(scale)) + " " + code)
}
