package processor

import (
	"math"
	"strings"

	"golang.org/x/text/currency"
)

const defaultScale = 2

// HumanizeAmount converts an amount in minor units to the major-unit value
// Mercado Pago expects, using the ISO 4217 scale of the currency.
func HumanizeAmount(amount int64, code string) float64 {
	return float64(amount) / math.Pow10(currencyScale(code))
}

func currencyScale(code string) int {
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return defaultScale
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}
