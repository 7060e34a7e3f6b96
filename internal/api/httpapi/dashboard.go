package httpapi

import (
	"sort"
	"time"

	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/palette"
)

type categoryView struct {
	Name       string  `json:"name"`
	Limit      float64 `json:"limit"`
	Spent      float64 `json:"spent"`
	Color      string  `json:"color"`
	OverBudget bool    `json:"overBudget"`
}

type goalView struct {
	finance.Goal
	Percent float64 `json:"percent"`
}

type holdingView struct {
	finance.CryptoHolding
	Price float64 `json:"price"`
	Value float64 `json:"value"`
}

type dashboardResponse struct {
	Period       string                `json:"period"`
	From         time.Time             `json:"from"`
	To           time.Time             `json:"to"`
	Settings     settingsResponse      `json:"settings"`
	Categories   []categoryView        `json:"categories"`
	Expenses     []finance.Expense     `json:"expenses"`
	Income       []finance.Income      `json:"income"`
	Goals        []goalView            `json:"goals"`
	Holdings     []holdingView         `json:"holdings"`
	Achievements []finance.Achievement `json:"achievements"`
	TotalSpent   float64               `json:"totalSpent"`
	TotalIncome  float64               `json:"totalIncome"`
	TotalLimit   float64               `json:"totalLimit"`
	Net          float64               `json:"net"`
	CryptoValue  float64               `json:"cryptoValue"`

	// CryptoCurrency is the code holding prices and values are given in.
	CryptoCurrency string `json:"cryptoCurrency"`
	Version      uint64                `json:"version"`
}

// buildDashboard shapes a ledger view for charts. Categories are sorted by
// spent amount, largest first.
func buildDashboard(view ledger.View, prices finance.Prices, settings settingsResponse) dashboardResponse {
	cryptoCode := settings.CryptoCurrency.Code
	res := dashboardResponse{
		Period:       view.Window.String(),
		From:         view.From,
		To:           view.To,
		Settings:     settings,
		Categories:   make([]categoryView, 0, len(view.Budget)),
		Expenses:     nonNil(view.Expenses),
		Income:       nonNil(view.Income),
		Goals:        make([]goalView, 0, len(view.Goals)),
		Holdings:     make([]holdingView, 0, len(view.Holdings)),
		Achievements: nonNil(view.Achievements),
		TotalSpent:   view.TotalSpent,
		TotalIncome:  view.TotalIncome,
		TotalLimit:   view.TotalLimit,
		Net:          view.TotalIncome - view.TotalSpent,
		Version:      view.Version,

		CryptoCurrency: cryptoCode,
	}

	for name, cat := range view.Budget {
		res.Categories = append(res.Categories, categoryView{
			Name:       name,
			Limit:      cat.Limit,
			Spent:      cat.Spent,
			Color:      palette.CategoryColor(name),
			OverBudget: cat.OverBudget(),
		})
	}
	sort.Slice(res.Categories, func(i, j int) bool {
		if res.Categories[i].Spent != res.Categories[j].Spent {
			return res.Categories[i].Spent > res.Categories[j].Spent
		}
		return res.Categories[i].Name < res.Categories[j].Name
	})

	for _, g := range view.Goals {
		res.Goals = append(res.Goals, goalView{Goal: g, Percent: g.Percent()})
	}
	for _, h := range view.Holdings {
		value := h.Value(prices, cryptoCode)
		res.Holdings = append(res.Holdings, holdingView{
			CryptoHolding: h,
			Price:         prices.Price(h.CoinID, cryptoCode),
			Value:         value,
		})
		res.CryptoValue += value
	}
	return res
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
