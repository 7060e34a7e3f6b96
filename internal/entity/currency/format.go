package currency

import (
	"math"

	"github.com/Rhymond/go-money"
)

const defaultFraction = 2

// Format renders amount with the symbol and separators of the currency.
func Format(amount float64, code string) string {
	return ToMoney(amount, code).Display()
}

// ToMoney rounds amount to the minor unit of the currency.
func ToMoney(amount float64, code string) *money.Money {
	fraction := defaultFraction
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}
	minor := math.Round(amount * math.Pow10(fraction))
	return money.New(int64(minor), code)
}
