package finance

import "time"

type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Date        time.Time `json:"date"`
}

type Income struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

func SumExpenses(exps []Expense) float64 {
	total := 0.0
	for _, e := range exps {
		total += e.Amount
	}
	return total
}

func SumIncome(inc []Income) float64 {
	total := 0.0
	for _, i := range inc {
		total += i.Amount
	}
	return total
}
