// Package textnorm agrupa utilidades de texto compartidas: comparación sin
// distinción de mayúsculas (case folding Unicode) y formato de montos para reportes.
package textnorm

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fold devuelve la forma plegada de s (sin mayúsculas, espacios externos recortados).
// Un Caser no es seguro entre goroutines, por eso se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold compara dos nombres ignorando mayúsculas y espacios externos.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// Title capitaliza la primera letra de cada palabra ("ingredients" → "Ingredients").
func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// Money formatea un monto con separador de miles y el prefijo de moneda: "KES 12,345".
// Solo presentación; se redondea a entero como en el tablero original.
func Money(currency string, d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	n := d.Round(0).IntPart()
	if currency == "" {
		return p.Sprintf("%d", n)
	}
	return p.Sprintf("%s %d", currency, n)
}
