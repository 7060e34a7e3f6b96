package ledger

import (
	"time"

	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/period"
)

// View is a consistent copy of the ledger as seen through the active window.
type View struct {
	Window       period.Window
	From         time.Time
	To           time.Time
	Budget       finance.Budget
	Expenses     []finance.Expense
	Income       []finance.Income
	Goals        []finance.Goal
	Holdings     []finance.CryptoHolding
	Achievements []finance.Achievement
	TotalSpent   float64
	TotalIncome  float64
	TotalLimit   float64
	Version      uint64
}

func (l *Ledger) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refresh()

	current := l.clock()
	from, to := l.window.Bounds(current)
	v := View{
		Window:       l.window,
		From:         from,
		To:           to,
		Budget:       l.budget.Clone(),
		Goals:        append([]finance.Goal(nil), l.goals...),
		Holdings:     append([]finance.CryptoHolding(nil), l.holdings...),
		Achievements: append([]finance.Achievement(nil), l.achievements...),
		Version:      l.version,
	}
	for _, e := range l.expenses {
		if l.window.Contains(e.Date, current) {
			v.Expenses = append(v.Expenses, e)
		}
	}
	for _, in := range l.income {
		if l.window.Contains(in.Date, current) {
			v.Income = append(v.Income, in)
		}
	}
	v.TotalSpent = finance.SumExpenses(v.Expenses)
	v.TotalIncome = finance.SumIncome(v.Income)
	v.TotalLimit = v.Budget.TotalLimit()
	return v
}

func (l *Ledger) Window() period.Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.window
}

// Recent returns up to n most recently added expenses, newest first,
// regardless of the window.
func (l *Ledger) Recent(n int) []finance.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]finance.Expense, 0, n)
	for i := len(l.expenses) - 1; i >= 0 && len(res) < n; i-- {
		res = append(res, l.expenses[i])
	}
	return res
}

// CoinIDs lists the distinct coins the user holds.
func (l *Ledger) CoinIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	seen := make(map[string]struct{}, len(l.holdings))
	var res []string
	for _, h := range l.holdings {
		if _, ok := seen[h.CoinID]; ok {
			continue
		}
		seen[h.CoinID] = struct{}{}
		res = append(res, h.CoinID)
	}
	return res
}

// Snapshot is the window-independent part of the ledger. Spent values are
// not carried: they are recomputed for whatever window the reader picks.
type Snapshot struct {
	Limits   map[string]float64 `json:"limits"`
	Expenses []finance.Expense  `json:"expenses"`
	Income   []finance.Income   `json:"income"`
	Goals    []finance.Goal     `json:"goals"`
}

func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	limits := make(map[string]float64, len(l.budget))
	for name, cat := range l.budget {
		limits[name] = cat.Limit
	}
	return Snapshot{
		Limits:   limits,
		Expenses: append([]finance.Expense(nil), l.expenses...),
		Income:   append([]finance.Income(nil), l.income...),
		Goals:    append([]finance.Goal(nil), l.goals...),
	}
}

// Restore builds a ledger from a snapshot with Spent computed for w.
// Achievements are not evaluated for restored ledgers.
func Restore(s Snapshot, w period.Window, opts ...Option) *Ledger {
	budget := make(finance.Budget, len(s.Limits))
	for name, limit := range s.Limits {
		budget[name] = finance.Category{Limit: limit}
	}
	l := New(append([]Option{WithBudget(budget)}, opts...)...)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.window = w
	l.expenses = append([]finance.Expense(nil), s.Expenses...)
	l.income = append([]finance.Income(nil), s.Income...)
	l.goals = append([]finance.Goal(nil), s.Goals...)
	l.recompute()
	return l
}
