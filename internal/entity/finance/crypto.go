package finance

import "strings"

type CryptoHolding struct {
	ID     string  `json:"id"`
	CoinID string  `json:"coinId"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Coin struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Prices maps coin id to lowercase currency code to price.
type Prices map[string]map[string]float64

func (p Prices) Price(coinID, currencyCode string) float64 {
	byCurrency, ok := p[coinID]
	if !ok {
		return 0
	}
	return byCurrency[strings.ToLower(currencyCode)]
}

func (p Prices) Set(coinID, currencyCode string, price float64) {
	byCurrency, ok := p[coinID]
	if !ok {
		byCurrency = make(map[string]float64)
		p[coinID] = byCurrency
	}
	byCurrency[strings.ToLower(currencyCode)] = price
}

func (h CryptoHolding) Value(prices Prices, currencyCode string) float64 {
	return h.Amount * prices.Price(h.CoinID, currencyCode)
}

func (p Prices) Clone() Prices {
	res := make(Prices, len(p))
	p.MergeInto(res)
	return res
}

// MergeInto copies every price of p into dst, overwriting existing ones.
func (p Prices) MergeInto(dst Prices) {
	for coin, byCurrency := range p {
		for code, price := range byCurrency {
			dst.Set(coin, code, price)
		}
	}
}
