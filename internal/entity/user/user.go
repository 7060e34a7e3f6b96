package user

// Record holds the per-user settings that may outlive the process.
type Record struct {
	Playground        bool
	preferredCurrency string
	cryptoCurrency    string
}

func (r *Record) PreferredCurrency(def string) string {
	if r.preferredCurrency != "" {
		return r.preferredCurrency
	}
	return def
}

// SetPreferredCurrency also resets the crypto display currency, which then
// follows the preferred one again.
func (r *Record) SetPreferredCurrency(curr string) {
	r.preferredCurrency = curr
	r.cryptoCurrency = ""
}

// CryptoCurrency is the currency holdings are valued in. It defaults to the
// preferred currency.
func (r *Record) CryptoCurrency(def string) string {
	if r.cryptoCurrency != "" {
		return r.cryptoCurrency
	}
	return r.PreferredCurrency(def)
}

// CryptoCurrencyOverride is the explicitly chosen crypto currency, or empty.
func (r *Record) CryptoCurrencyOverride() string {
	return r.cryptoCurrency
}

func (r *Record) SetCryptoCurrency(curr string) {
	r.cryptoCurrency = curr
}
