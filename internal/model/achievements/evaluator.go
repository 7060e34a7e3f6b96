package achievements

import (
	"fmt"
	"time"

	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/period"
)

const (
	BudgetStreakID = "under-budget-3-months"
	streakMonths   = 3
)

type milestone struct {
	ratio float64
	title string
}

var goalMilestones = []milestone{
	{ratio: 0.5, title: "Goal Milestone!"},
	{ratio: 0.75, title: "Almost There!"},
}

// Award is an achievement that has just been earned.
type Award struct {
	ID       string
	Title    string
	Occasion string
}

// DefaultMessage is used when no congratulation could be generated.
func (a Award) DefaultMessage() string {
	return fmt.Sprintf("Congratulations on %s!", a.Occasion)
}

type Input struct {
	Goals    []finance.Goal
	Expenses []finance.Expense
	Budget   finance.Budget
}

func GoalMilestoneID(percent int, goalID string) string {
	return fmt.Sprintf("goal-%d-%s", percent, goalID)
}

// Evaluate returns the awards that are earned and not in awarded yet. It
// never returns an id twice and does not modify awarded.
func Evaluate(in Input, awarded map[string]struct{}, current time.Time) []Award {
	var res []Award
	seen := func(id string) bool {
		if _, ok := awarded[id]; ok {
			return true
		}
		for _, a := range res {
			if a.ID == id {
				return true
			}
		}
		return false
	}

	for _, goal := range in.Goals {
		if goal.Target <= 0 {
			continue
		}
		for _, m := range goalMilestones {
			id := GoalMilestoneID(int(m.ratio*100), goal.ID)
			if goal.Ratio() >= m.ratio && !seen(id) {
				res = append(res, Award{
					ID:       id,
					Title:    m.title,
					Occasion: fmt.Sprintf("reaching %d%% of the goal: %q", int(m.ratio*100), goal.Description),
				})
			}
		}
	}

	if !seen(BudgetStreakID) && underBudgetStreak(in.Expenses, in.Budget.TotalLimit(), current) {
		res = append(res, Award{
			ID:       BudgetStreakID,
			Title:    "Budgeting Pro!",
			Occasion: "staying under budget for 3 consecutive months",
		})
	}
	return res
}

// underBudgetStreak checks the calendar months before the current one.
func underBudgetStreak(expenses []finance.Expense, totalLimit float64, current time.Time) bool {
	if totalLimit <= 0 {
		return false
	}
	for i := 1; i <= streakMonths; i++ {
		from, to := period.MonthBounds(current, i)
		spent := 0.0
		for _, e := range expenses {
			if !e.Date.Before(from) && !e.Date.After(to) {
				spent += e.Amount
			}
		}
		if spent > totalLimit {
			return false
		}
	}
	return true
}
