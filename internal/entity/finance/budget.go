package finance

import "sort"

// OtherCategory receives the expenses of deleted categories.
const OtherCategory = "Other"

type Category struct {
	Limit float64 `json:"limit"`
	Spent float64 `json:"spent"`
}

// OverBudget is true only for categories with a positive limit.
func (c Category) OverBudget() bool {
	return c.Limit > 0 && c.Spent > c.Limit
}

type Budget map[string]Category

func (b Budget) Clone() Budget {
	res := make(Budget, len(b))
	for name, cat := range b {
		res[name] = cat
	}
	return res
}

func (b Budget) Names() []string {
	res := make([]string, 0, len(b))
	for name := range b {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func (b Budget) TotalLimit() float64 {
	total := 0.0
	for _, cat := range b {
		total += cat.Limit
	}
	return total
}

func (b Budget) TotalSpent() float64 {
	total := 0.0
	for _, cat := range b {
		total += cat.Spent
	}
	return total
}

// DefaultBudget is the starting set of categories for a new user.
func DefaultBudget() Budget {
	return Budget{
		"Housing":        {Limit: 1500},
		"Transportation": {Limit: 300},
		"Food & Dining":  {Limit: 500},
		"Utilities":      {Limit: 200},
		"Subscriptions":  {Limit: 50},
		"Healthcare":     {Limit: 200},
		"Entertainment":  {Limit: 150},
		"Shopping":       {Limit: 250},
		"Personal Care":  {Limit: 100},
		"Debt Repayment": {Limit: 300},
		"Education":      {Limit: 100},
		OtherCategory:    {Limit: 100},
	}
}
