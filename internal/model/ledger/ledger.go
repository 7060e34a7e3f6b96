package ledger

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/achievements"
	"max.ks1230/financegpt/internal/model/period"
)

var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrIncomeNotFound   = errors.New("income not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrHoldingNotFound  = errors.New("crypto holding not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryExists   = errors.New("category already exists")
	ErrFallbackCategory = errors.New("the fallback category cannot be removed or renamed")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrEmptyName        = errors.New("name must not be empty")
)

type Clock func() time.Time

// Ledger is the whole financial state of one user. Every exported mutation
// runs under one lock, so each one is a single atomic transition.
type Ledger struct {
	mu       sync.Mutex
	clock    Clock
	newID    func() string
	onChange func()

	window   period.Window
	budget   finance.Budget
	expenses []finance.Expense
	income   []finance.Income
	goals    []finance.Goal
	holdings []finance.CryptoHolding

	// computedFrom is the window start the Spent values were computed for.
	computedFrom time.Time
	// counted holds the ids of expenses included in Spent.
	counted map[string]struct{}
	// nextDue is the earliest date of a future expense not yet counted.
	nextDue time.Time

	awarded      map[string]struct{}
	achievements []finance.Achievement
	pending      []achievements.Award
	version      uint64
}

type Option func(*Ledger)

func WithClock(c Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

func WithIDGenerator(f func() string) Option {
	return func(l *Ledger) {
		l.newID = f
	}
}

func WithBudget(b finance.Budget) Option {
	return func(l *Ledger) {
		l.budget = b.Clone()
	}
}

// WithChangeHook registers a callback that runs after every successful
// mutation, outside the lock.
func WithChangeHook(f func()) Option {
	return func(l *Ledger) {
		l.onChange = f
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		clock:   time.Now,
		newID:   uuid.NewString,
		window:  period.Default(),
		budget:  finance.DefaultBudget(),
		awarded: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	if _, ok := l.budget[finance.OtherCategory]; !ok {
		l.budget[finance.OtherCategory] = finance.Category{}
	}
	l.recompute()
	return l
}

func (l *Ledger) mutate(fn func() error) error {
	l.mu.Lock()
	l.refresh()
	err := fn()
	if err == nil {
		l.version++
		l.evaluate()
	}
	hook := l.onChange
	l.mu.Unlock()

	if err == nil && hook != nil {
		hook()
	}
	return err
}

// positive rejects NaN and infinities along with non-positive values.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// spentCategory is the category an expense is counted under. Expenses of an
// unknown category count as Other.
func (l *Ledger) spentCategory(e finance.Expense) string {
	if _, ok := l.budget[e.Category]; ok {
		return e.Category
	}
	return finance.OtherCategory
}

// watchFuture remembers a future expense so it is counted once its date
// arrives.
func (l *Ledger) watchFuture(e finance.Expense, current time.Time) {
	if !e.Date.After(current) {
		return
	}
	if l.nextDue.IsZero() || e.Date.Before(l.nextDue) {
		l.nextDue = e.Date
	}
}

// credit adds an expense to its category, creating a missing category with
// the amount as its limit.
func (l *Ledger) credit(e finance.Expense) {
	if _, ok := l.budget[e.Category]; !ok {
		l.budget[e.Category] = finance.Category{Limit: e.Amount}
	}
	current := l.clock()
	if !l.window.Contains(e.Date, current) {
		l.watchFuture(e, current)
		return
	}
	cat := l.budget[e.Category]
	cat.Spent += e.Amount
	l.budget[e.Category] = cat
	l.counted[e.ID] = struct{}{}
}

// debit takes back exactly what credit or recompute added for e.
func (l *Ledger) debit(e finance.Expense) {
	if _, ok := l.counted[e.ID]; !ok {
		return
	}
	delete(l.counted, e.ID)
	name := l.spentCategory(e)
	cat := l.budget[name]
	cat.Spent -= e.Amount
	l.budget[name] = cat
}

// refresh recomputes when an open-ended window has rolled over since the
// last computation, e.g. on the first day of a new month, or when a
// future-dated expense has come due.
func (l *Ledger) refresh() {
	current := l.clock()
	from, _ := l.window.Bounds(current)
	due := !l.nextDue.IsZero() && !current.Before(l.nextDue)
	if due || !from.Equal(l.computedFrom) {
		l.recompute()
	}
}

// recompute rebuilds every Spent from zero over the expenses in the window.
func (l *Ledger) recompute() {
	current := l.clock()
	l.computedFrom, _ = l.window.Bounds(current)
	l.counted = make(map[string]struct{}, len(l.expenses))
	l.nextDue = time.Time{}
	for name, cat := range l.budget {
		cat.Spent = 0
		l.budget[name] = cat
	}
	for _, e := range l.expenses {
		if !l.window.Contains(e.Date, current) {
			l.watchFuture(e, current)
			continue
		}
		name := l.spentCategory(e)
		cat := l.budget[name]
		cat.Spent += e.Amount
		l.budget[name] = cat
		l.counted[e.ID] = struct{}{}
	}
}

func (l *Ledger) evaluate() {
	current := l.clock()
	awards := achievements.Evaluate(achievements.Input{
		Goals:    l.goals,
		Expenses: l.expenses,
		Budget:   l.budget,
	}, l.awarded, current)

	for _, a := range awards {
		l.awarded[a.ID] = struct{}{}
		l.achievements = append(l.achievements, finance.Achievement{
			ID:      a.ID,
			Title:   a.Title,
			Message: a.DefaultMessage(),
			Date:    current,
		})
		l.pending = append(l.pending, a)
	}
}

func (l *Ledger) expenseIndex(id string) int {
	for i, e := range l.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) AddExpense(e finance.Expense) (finance.Expense, error) {
	res, err := l.AddExpenses([]finance.Expense{e})
	if err != nil {
		return e, err
	}
	return res[0], nil
}

// AddExpenses adds a batch in one transition. Nothing is added when any
// expense in the batch is invalid.
func (l *Ledger) AddExpenses(batch []finance.Expense) ([]finance.Expense, error) {
	res := make([]finance.Expense, 0, len(batch))
	err := l.mutate(func() error {
		for _, e := range batch {
			if !positive(e.Amount) {
				return ErrInvalidAmount
			}
		}
		for _, e := range batch {
			e.ID = l.newID()
			e.Category = strings.TrimSpace(e.Category)
			if e.Category == "" {
				e.Category = finance.OtherCategory
			}
			if e.Date.IsZero() {
				e.Date = l.clock()
			}
			l.expenses = append(l.expenses, e)
			l.credit(e)
			res = append(res, e)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "add expenses")
	}
	return res, nil
}

// UpdateExpense replaces an expense. The old in-window amount leaves the old
// category and the new one enters the new category in the same transition.
func (l *Ledger) UpdateExpense(e finance.Expense) (finance.Expense, error) {
	err := l.mutate(func() error {
		idx := l.expenseIndex(e.ID)
		if idx < 0 {
			return ErrExpenseNotFound
		}
		if !positive(e.Amount) {
			return ErrInvalidAmount
		}
		old := l.expenses[idx]
		e.Category = strings.TrimSpace(e.Category)
		if e.Category == "" {
			e.Category = old.Category
		}
		if e.Date.IsZero() {
			e.Date = old.Date
		}
		if e.Description == "" {
			e.Description = old.Description
			e.Subcategory = old.Subcategory
		}

		l.debit(old)
		l.credit(e)
		l.expenses[idx] = e
		return nil
	})
	return e, errors.Wrap(err, "update expense")
}

func (l *Ledger) DeleteExpense(id string) error {
	err := l.mutate(func() error {
		idx := l.expenseIndex(id)
		if idx < 0 {
			return ErrExpenseNotFound
		}
		l.debit(l.expenses[idx])
		l.expenses = append(l.expenses[:idx], l.expenses[idx+1:]...)
		return nil
	})
	return errors.Wrap(err, "delete expense")
}

func (l *Ledger) AddCategory(name string, limit float64) error {
	err := l.mutate(func() error {
		name = strings.TrimSpace(name)
		if name == "" {
			return ErrEmptyName
		}
		if !nonNegative(limit) {
			return ErrInvalidAmount
		}
		if _, ok := l.budget[name]; ok {
			return ErrCategoryExists
		}
		l.budget[name] = finance.Category{Limit: limit}
		return nil
	})
	return errors.Wrap(err, "add category")
}

// UpdateCategory changes the limit and optionally renames the category.
// A rename carries Spent over and relabels every expense.
func (l *Ledger) UpdateCategory(name, newName string, limit float64) error {
	err := l.mutate(func() error {
		cat, ok := l.budget[name]
		if !ok {
			return ErrCategoryNotFound
		}
		if !nonNegative(limit) {
			return ErrInvalidAmount
		}
		newName = strings.TrimSpace(newName)
		if newName == "" || newName == name {
			cat.Limit = limit
			l.budget[name] = cat
			return nil
		}
		if name == finance.OtherCategory {
			return ErrFallbackCategory
		}
		if _, exists := l.budget[newName]; exists {
			return ErrCategoryExists
		}

		delete(l.budget, name)
		l.budget[newName] = finance.Category{Limit: limit, Spent: cat.Spent}
		for i := range l.expenses {
			if l.expenses[i].Category == name {
				l.expenses[i].Category = newName
			}
		}
		return nil
	})
	return errors.Wrap(err, "update category")
}

// DeleteCategory moves the category's expenses to the fallback category,
// together with their in-window amounts.
func (l *Ledger) DeleteCategory(name string) error {
	err := l.mutate(func() error {
		if name == finance.OtherCategory {
			return ErrFallbackCategory
		}
		deleted, ok := l.budget[name]
		if !ok {
			return ErrCategoryNotFound
		}

		moved := 0.0
		for i, e := range l.expenses {
			if e.Category != name {
				continue
			}
			if _, ok := l.counted[e.ID]; ok {
				moved += e.Amount
			}
			l.expenses[i].Category = finance.OtherCategory
		}

		other, ok := l.budget[finance.OtherCategory]
		if !ok {
			other = finance.Category{Limit: deleted.Limit}
		}
		other.Spent += moved
		l.budget[finance.OtherCategory] = other
		delete(l.budget, name)
		return nil
	})
	return errors.Wrap(err, "delete category")
}

// SetWindow switches the active window and recomputes every category.
func (l *Ledger) SetWindow(w period.Window) {
	_ = l.mutate(func() error {
		l.window = w
		l.recompute()
		return nil
	})
}

func (l *Ledger) AddIncome(in finance.Income) (finance.Income, error) {
	err := l.mutate(func() error {
		if !positive(in.Amount) {
			return ErrInvalidAmount
		}
		in.ID = l.newID()
		if in.Date.IsZero() {
			in.Date = l.clock()
		}
		l.income = append(l.income, in)
		return nil
	})
	return in, errors.Wrap(err, "add income")
}

func (l *Ledger) DeleteIncome(id string) error {
	err := l.mutate(func() error {
		for i, in := range l.income {
			if in.ID == id {
				l.income = append(l.income[:i], l.income[i+1:]...)
				return nil
			}
		}
		return ErrIncomeNotFound
	})
	return errors.Wrap(err, "delete income")
}

func (l *Ledger) AddGoal(g finance.Goal) (finance.Goal, error) {
	err := l.mutate(func() error {
		g.Description = strings.TrimSpace(g.Description)
		if g.Description == "" {
			return ErrEmptyName
		}
		if !positive(g.Target) {
			return ErrInvalidAmount
		}
		g.ID = l.newID()
		g.Saved = 0
		l.goals = append(l.goals, g)
		return nil
	})
	return g, errors.Wrap(err, "add goal")
}

func (l *Ledger) DeleteGoal(id string) error {
	err := l.mutate(func() error {
		for i, g := range l.goals {
			if g.ID == id {
				l.goals = append(l.goals[:i], l.goals[i+1:]...)
				return nil
			}
		}
		return ErrGoalNotFound
	})
	return errors.Wrap(err, "delete goal")
}

func (l *Ledger) Contribute(goalID string, amount float64) (finance.Goal, error) {
	var res finance.Goal
	err := l.mutate(func() error {
		if !positive(amount) {
			return ErrInvalidAmount
		}
		for i := range l.goals {
			if l.goals[i].ID == goalID {
				l.goals[i].Saved += amount
				res = l.goals[i]
				return nil
			}
		}
		return ErrGoalNotFound
	})
	return res, errors.Wrap(err, "contribute to goal")
}

// ContributeByDescription adds amount to every goal whose description
// contains substr, ignoring case, and returns how many goals matched.
func (l *Ledger) ContributeByDescription(substr string, amount float64) (int, error) {
	matched := 0
	err := l.mutate(func() error {
		if !positive(amount) {
			return ErrInvalidAmount
		}
		needle := strings.ToLower(strings.TrimSpace(substr))
		if needle == "" {
			return ErrEmptyName
		}
		for i := range l.goals {
			if strings.Contains(strings.ToLower(l.goals[i].Description), needle) {
				l.goals[i].Saved += amount
				matched++
			}
		}
		if matched == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
	return matched, errors.Wrap(err, "contribute to goal")
}

func (l *Ledger) AddHolding(h finance.CryptoHolding) (finance.CryptoHolding, error) {
	err := l.mutate(func() error {
		if !positive(h.Amount) {
			return ErrInvalidAmount
		}
		if strings.TrimSpace(h.CoinID) == "" {
			return ErrEmptyName
		}
		h.ID = l.newID()
		l.holdings = append(l.holdings, h)
		return nil
	})
	return h, errors.Wrap(err, "add holding")
}

func (l *Ledger) UpdateHolding(h finance.CryptoHolding) (finance.CryptoHolding, error) {
	err := l.mutate(func() error {
		if !positive(h.Amount) {
			return ErrInvalidAmount
		}
		for i := range l.holdings {
			if l.holdings[i].ID != h.ID {
				continue
			}
			if h.CoinID == "" {
				h.CoinID = l.holdings[i].CoinID
				h.Symbol = l.holdings[i].Symbol
				h.Name = l.holdings[i].Name
			}
			l.holdings[i] = h
			return nil
		}
		return ErrHoldingNotFound
	})
	return h, errors.Wrap(err, "update holding")
}

func (l *Ledger) DeleteHolding(id string) error {
	err := l.mutate(func() error {
		for i, h := range l.holdings {
			if h.ID == id {
				l.holdings = append(l.holdings[:i], l.holdings[i+1:]...)
				return nil
			}
		}
		return ErrHoldingNotFound
	})
	return errors.Wrap(err, "delete holding")
}

// TakeAwards drains the achievements earned since the last call.
func (l *Ledger) TakeAwards() []achievements.Award {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := l.pending
	l.pending = nil
	return res
}

func (l *Ledger) SetAchievementMessage(id, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.achievements {
		if l.achievements[i].ID == id {
			l.achievements[i].Message = message
			return
		}
	}
}

// Reevaluate checks achievements without changing any data. Time-based
// achievements such as the budget streak can become due with no mutation.
func (l *Ledger) Reevaluate() int {
	l.mu.Lock()
	l.refresh()
	before := len(l.pending)
	l.evaluate()
	earned := len(l.pending) - before
	if earned > 0 {
		l.version++
	}
	hook := l.onChange
	l.mu.Unlock()

	if earned > 0 && hook != nil {
		hook()
	}
	return earned
}
