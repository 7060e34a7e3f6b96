package currency

import "strings"

const (
	USD = "USD"
	EUR = "EUR"
	JPY = "JPY"
	GBP = "GBP"
	RUB = "RUB"
	CNY = "CNY"
)

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
}

// Supported is ordered by popularity first, the rest alphabetically.
var Supported = []Currency{
	{Code: USD, Name: "United States Dollar", Locale: "en-US"},
	{Code: EUR, Name: "Euro", Locale: "fr-FR"},
	{Code: JPY, Name: "Japanese Yen", Locale: "ja-JP"},
	{Code: GBP, Name: "British Pound", Locale: "en-GB"},
	{Code: "AUD", Name: "Australian Dollar", Locale: "en-AU"},
	{Code: "CAD", Name: "Canadian Dollar", Locale: "en-CA"},
	{Code: "CHF", Name: "Swiss Franc", Locale: "de-CH"},
	{Code: CNY, Name: "Chinese Yuan", Locale: "zh-CN"},
	{Code: "INR", Name: "Indian Rupee", Locale: "en-IN"},
	{Code: "BGN", Name: "Bulgarian Lev", Locale: "bg-BG"},
	{Code: "HRK", Name: "Croatian Kuna", Locale: "hr-HR"},
	{Code: "CZK", Name: "Czech Koruna", Locale: "cs-CZ"},
	{Code: "DKK", Name: "Danish Krone", Locale: "da-DK"},
	{Code: "HUF", Name: "Hungarian Forint", Locale: "hu-HU"},
	{Code: "ISK", Name: "Icelandic Króna", Locale: "is-IS"},
	{Code: "NOK", Name: "Norwegian Krone", Locale: "nb-NO"},
	{Code: "PLN", Name: "Polish Złoty", Locale: "pl-PL"},
	{Code: "RON", Name: "Romanian Leu", Locale: "ro-RO"},
	{Code: RUB, Name: "Russian Ruble", Locale: "ru-RU"},
	{Code: "SEK", Name: "Swedish Krona", Locale: "sv-SE"},
	{Code: "TRY", Name: "Turkish Lira", Locale: "tr-TR"},
	{Code: "UAH", Name: "Ukrainian Hryvnia", Locale: "uk-UA"},
}

// Codes returns the codes of all supported currencies in order.
func Codes() []string {
	res := make([]string, 0, len(Supported))
	for _, c := range Supported {
		res = append(res, c.Code)
	}
	return res
}

// Find looks a currency up by code, case-insensitively.
func Find(code string) (Currency, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, c := range Supported {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// FindOrDefault falls back to the first supported currency.
func FindOrDefault(code string) Currency {
	if c, ok := Find(code); ok {
		return c
	}
	return Supported[0]
}
