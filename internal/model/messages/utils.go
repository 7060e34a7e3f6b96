package messages

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/ledger"
)

const (
	commandParts = 2
	dateLayout   = "02.01.2006"
)

func location(name string) *time.Location {
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.Local
	}
	return loc
}

// parseCommand splits "/cmd@bot arg" into "/cmd" and "arg". Text that is
// not a command has an empty cmd.
func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	split := strings.SplitN(text, " ", commandParts)
	cmd, _, _ = strings.Cut(strings.ToLower(split[0]), "@")
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return cmd, arg
}

func parseAmount(s string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || !(amount > 0) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

func parseLimit(s string) (float64, bool) {
	limit, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || !(limit >= 0) || math.IsInf(limit, 0) {
		return 0, false
	}
	return limit, true
}

func parseDate(s string, loc *time.Location) (time.Time, bool) {
	date, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// matchCategory returns the existing category spelled like name ignoring
// case, or the trimmed name itself.
func matchCategory(budget finance.Budget, name string) string {
	name = strings.TrimSpace(name)
	if _, ok := budget[name]; ok {
		return name
	}
	for existing := range budget {
		if strings.EqualFold(existing, name) {
			return existing
		}
	}
	return name
}

func formatBudget(view ledger.View, code string) string {
	lines := make([]string, 0, len(view.Budget)+3)
	lines = append(lines, fmt.Sprintf("Budget for %s:", view.Window.String()))
	for _, name := range view.Budget.Names() {
		cat := view.Budget[name]
		line := fmt.Sprintf("%s: %s of %s", name, currency.Format(cat.Spent, code), currency.Format(cat.Limit, code))
		if cat.OverBudget() {
			line += " ⚠️"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", fmt.Sprintf("Total: %s of %s",
		currency.Format(view.TotalSpent, code), currency.Format(view.TotalLimit, code)))
	return strings.Join(lines, "\n")
}

func formatGoal(g finance.Goal, code string) string {
	res := fmt.Sprintf("🎯 %s: %s of %s (%.0f%%)",
		g.Description, currency.Format(g.Saved, code), currency.Format(g.Target, code), g.Percent())
	if g.Deadline != nil {
		res += ", due " + g.Deadline.Format(dateLayout)
	}
	return res
}

func formatHoldings(holdings []finance.CryptoHolding, prices finance.Prices, code string) string {
	lines := make([]string, 0, len(holdings)+2)
	total := 0.0
	for _, h := range holdings {
		value := h.Value(prices, code)
		total += value
		lines = append(lines, fmt.Sprintf("%g %s (%s): %s\nid: %s",
			h.Amount, strings.ToUpper(h.Symbol), h.Name, currency.Format(value, code), h.ID))
	}
	lines = append(lines, "", "Total: "+currency.Format(total, code))
	return strings.Join(lines, "\n")
}

func formatAchievement(a finance.Achievement) string {
	return fmt.Sprintf("🏆 %s\n%s", a.Title, a.Message)
}
