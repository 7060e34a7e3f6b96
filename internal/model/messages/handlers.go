package messages

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	kafkaapi "max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/clients/cache"
	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
	"max.ks1230/financegpt/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	helloMessage          = "Hello! I am FinanceGPT, your personal finance assistant 🤖"
	somethingWrongMessage = "Sorry, something wrong happened..."
	noGoalsMessage        = "You have no goals yet. Add one with /goal <target> <description>"
	noHoldingsMessage     = "You hold no crypto yet. Add some with /crypto add <coin> <amount>"
	noAchievementsMessage = "No achievements yet. Keep going!"
	reportQueuedMessage   = "Your report is being prepared, it will arrive shortly"

	incorrectAmountMessage    = "The amount is incorrect. It should be a positive number"
	incorrectPeriodMessage    = "The period is incorrect. Use week, month, all or dd.mm.yyyy-dd.mm.yyyy"
	unknownCurrencyMessage    = "Unknown currency. Supported: "
	unknownCoinMessage        = "I couldn't find that coin. Try its CoinGecko id, e.g. bitcoin"
	cryptoUnavailableMessage  = "Crypto tracking is not available right now"
	cannotGetSettingsMessage  = "Can't get your settings atm. Try later"
	cannotSaveSettingsMessage = "Can't save your settings atm. Try later"
	cannotBuildReportMessage  = "Can't build your report atm. Try later"
)

const (
	startCommand        = "/start"
	helpCommand         = "/help"
	expenseCommand      = "/expense"
	editCommand         = "/edit"
	deleteCommand       = "/delete"
	incomeCommand       = "/income"
	budgetCommand       = "/budget"
	categoryCommand     = "/category"
	rmCategoryCommand   = "/rmcategory"
	goalCommand         = "/goal"
	saveCommand         = "/save"
	goalsCommand        = "/goals"
	periodCommand       = "/period"
	reportCommand       = "/report"
	currencyCommand     = "/currency"
	playgroundCommand   = "/playground"
	cryptoCommand       = "/crypto"
	achievementsCommand = "/achievements"
)

const helpMessage = `Just tell me what you spent, or send a photo of a receipt. You can also ask for advice.

/expense <amount> <category> [dd.mm.yyyy] - add an expense
/edit <id> <amount> [category] - edit an expense
/delete <id> - delete an expense
/income <amount> <description> - add income
/budget - budget for the active period
/category <limit> <name> - add a category or change its limit
/rmcategory <name> - delete a category, its expenses move to Other
/goal <target> <description> - add a savings goal
/save <goal id> <amount> - contribute to a goal
/goals - list goals
/period <week|month|all|dd.mm.yyyy-dd.mm.yyyy> - set the active period
/report [period] - spending report
/currency <code> - set your currency
/playground on|off - try scenarios without changing your data
/crypto, /crypto add <coin> <amount>, /crypto rm <id> - crypto holdings
/crypto currency <code> - currency to show crypto holdings in
/achievements - your achievements`

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

func newMap(s *Service) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[expenseCommand] = s.handleExpense
	m[editCommand] = s.handleEdit
	m[deleteCommand] = s.handleDelete
	m[incomeCommand] = s.handleIncome
	m[budgetCommand] = s.handleBudget
	m[categoryCommand] = s.handleCategory
	m[rmCategoryCommand] = s.handleRmCategory
	m[goalCommand] = s.handleGoal
	m[saveCommand] = s.handleSave
	m[goalsCommand] = s.handleGoals
	m[periodCommand] = s.handlePeriod
	m[reportCommand] = s.handleReport
	m[currencyCommand] = s.handleCurrency
	m[playgroundCommand] = s.handlePlayground
	m[cryptoCommand] = s.handleCrypto
	m[achievementsCommand] = s.handleAchievements
	return m
}

func (s *Service) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *Service) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return helpMessage, nil
}

func (s *Service) userRecord(ctx context.Context, userID int64) user.Record {
	rec, err := s.users.GetUser(ctx, userID)
	if err != nil {
		logger.Warn("cannot read user settings", zap.Int64("userID", userID), zap.Error(err))
	}
	return rec
}

func (s *Service) currencyCode(ctx context.Context, userID int64) string {
	rec := s.userRecord(ctx, userID)
	return currency.FindOrDefault(rec.PreferredCurrency(s.config.BaseCurrency())).Code
}

func (s *Service) cryptoCurrencyCode(ctx context.Context, userID int64) string {
	rec := s.userRecord(ctx, userID)
	return currency.FindOrDefault(rec.CryptoCurrency(s.config.BaseCurrency())).Code
}

func (s *Service) handleExpense(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return "Usage: /expense <amount> <category> [dd.mm.yyyy]", nil
	}
	amount, ok := parseAmount(args[0])
	if !ok {
		return incorrectAmountMessage, nil
	}

	rest := args[1:]
	expense := finance.Expense{Amount: amount}
	if len(rest) > 1 {
		if date, ok := parseDate(rest[len(rest)-1], s.loc); ok {
			expense.Date = date
			rest = rest[:len(rest)-1]
		}
	}

	l := s.ledgers.Ledger(userID)
	expense.Category = matchCategory(l.View().Budget, strings.Join(rest, " "))
	expense.Description = expense.Category

	added, err := l.AddExpense(expense)
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle expense")
	}
	return fmt.Sprintf("Gotcha! %s in %s\nid: %s",
		currency.Format(added.Amount, s.currencyCode(ctx, userID)), added.Category, added.ID), nil
}

func (s *Service) handleEdit(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return "Usage: /edit <id> <amount> [category]", nil
	}
	amount, ok := parseAmount(args[1])
	if !ok {
		return incorrectAmountMessage, nil
	}

	l := s.ledgers.Ledger(userID)
	category := ""
	if len(args) > 2 {
		category = matchCategory(l.View().Budget, strings.Join(args[2:], " "))
	}
	updated, err := l.UpdateExpense(finance.Expense{ID: args[0], Amount: amount, Category: category})
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle edit")
	}
	return fmt.Sprintf("Updated: %s in %s",
		currency.Format(updated.Amount, s.currencyCode(ctx, userID)), updated.Category), nil
}

func (s *Service) handleDelete(_ context.Context, arg string, userID int64) (string, error) {
	id := strings.TrimSpace(arg)
	if id == "" {
		return "Usage: /delete <id>", nil
	}
	err := s.ledgers.Ledger(userID).DeleteExpense(id)
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle delete")
	}
	return "Deleted", nil
}

func (s *Service) handleIncome(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 1 {
		return "Usage: /income <amount> <description>", nil
	}
	amount, ok := parseAmount(args[0])
	if !ok {
		return incorrectAmountMessage, nil
	}
	in, err := s.ledgers.Ledger(userID).AddIncome(finance.Income{
		Amount:      amount,
		Description: strings.Join(args[1:], " "),
	})
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle income")
	}
	return fmt.Sprintf("Income of %s added\nid: %s", currency.Format(in.Amount, s.currencyCode(ctx, userID)), in.ID), nil
}

func (s *Service) handleBudget(ctx context.Context, _ string, userID int64) (string, error) {
	view := s.ledgers.Ledger(userID).View()
	return formatBudget(view, s.currencyCode(ctx, userID)), nil
}

func (s *Service) handleCategory(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return "Usage: /category <limit> <name>", nil
	}
	limit, ok := parseLimit(args[0])
	if !ok {
		return incorrectAmountMessage, nil
	}

	l := s.ledgers.Ledger(userID)
	name := matchCategory(l.View().Budget, strings.Join(args[1:], " "))
	err := l.AddCategory(name, limit)
	if errors.Is(err, ledger.ErrCategoryExists) {
		err = l.UpdateCategory(name, "", limit)
	}
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle category")
	}
	return fmt.Sprintf("%s limit is %s", name, currency.Format(limit, s.currencyCode(ctx, userID))), nil
}

func (s *Service) handleRmCategory(_ context.Context, arg string, userID int64) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return "Usage: /rmcategory <name>", nil
	}
	l := s.ledgers.Ledger(userID)
	name := matchCategory(l.View().Budget, arg)
	err := l.DeleteCategory(name)
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle rmcategory")
	}
	return fmt.Sprintf("%s deleted, its expenses moved to %s", name, finance.OtherCategory), nil
}

func (s *Service) handleGoal(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) < 2 {
		return "Usage: /goal <target> <description>", nil
	}
	target, ok := parseAmount(args[0])
	if !ok {
		return incorrectAmountMessage, nil
	}
	goal, err := s.ledgers.Ledger(userID).AddGoal(finance.Goal{
		Description: strings.Join(args[1:], " "),
		Target:      target,
	})
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle goal")
	}
	return fmt.Sprintf("New goal: %s, target %s\nid: %s",
		goal.Description, currency.Format(goal.Target, s.currencyCode(ctx, userID)), goal.ID), nil
}

func (s *Service) handleSave(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return "Usage: /save <goal id> <amount>", nil
	}
	amount, ok := parseAmount(args[1])
	if !ok {
		return incorrectAmountMessage, nil
	}
	goal, err := s.ledgers.Ledger(userID).Contribute(args[0], amount)
	if msg, ok := describe(err); ok {
		return msg, nil
	}
	if err != nil {
		return "", errors.Wrap(err, "handle save")
	}
	return formatGoal(goal, s.currencyCode(ctx, userID)), nil
}

func (s *Service) handleGoals(ctx context.Context, _ string, userID int64) (string, error) {
	goals := s.ledgers.Ledger(userID).View().Goals
	if len(goals) == 0 {
		return noGoalsMessage, nil
	}
	code := s.currencyCode(ctx, userID)
	lines := make([]string, 0, len(goals))
	for _, g := range goals {
		lines = append(lines, formatGoal(g, code)+"\nid: "+g.ID)
	}
	return strings.Join(lines, "\n\n"), nil
}

func (s *Service) handlePeriod(_ context.Context, arg string, userID int64) (string, error) {
	l := s.ledgers.Ledger(userID)
	if strings.TrimSpace(arg) == "" {
		return "Active period: " + l.Window().String(), nil
	}
	w, err := period.Parse(arg, s.loc)
	if err != nil {
		return incorrectPeriodMessage, nil
	}
	l.SetWindow(w)
	return "Active period: " + w.String(), nil
}

func (s *Service) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	l := s.ledgers.Ledger(userID)
	w := l.Window()
	if strings.TrimSpace(arg) != "" {
		var err error
		if w, err = period.Parse(arg, s.loc); err != nil {
			return incorrectPeriodMessage, nil
		}
	}

	cached, err := s.cache.GetReport(userID, w.String())
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn("report cache unavailable", zap.Error(err))
	}

	req := kafkaapi.ReportRequest{
		UserID:      userID,
		Window:      w,
		Currency:    s.currencyCode(ctx, userID),
		RequestedAt: s.clock(),
		Snapshot:    l.Snapshot(),
	}
	if s.requester == nil {
		report := s.generator.GenerateReport(ctx, req)
		text := reports.Render(report)
		if err = s.cache.CacheReport(userID, report.Period, text); err != nil {
			logger.Warn("cannot cache report", zap.Error(err))
		}
		return text, nil
	}

	if err = s.requester.RequestReport(ctx, req); err != nil {
		return cannotBuildReportMessage, errors.Wrap(err, "handle report")
	}
	return reportQueuedMessage, nil
}

func (s *Service) handleCurrency(ctx context.Context, arg string, userID int64) (string, error) {
	rec, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return cannotGetSettingsMessage, errors.Wrap(err, "handle currency")
	}
	if strings.TrimSpace(arg) == "" {
		return "Your currency is " + currency.FindOrDefault(rec.PreferredCurrency(s.config.BaseCurrency())).Code, nil
	}

	c, ok := currency.Find(arg)
	if !ok {
		return unknownCurrencyMessage + strings.Join(currency.Codes(), ", "), nil
	}
	rec.SetPreferredCurrency(c.Code)
	if err = s.users.SaveUser(ctx, userID, rec); err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle currency")
	}
	if err = s.cache.InvalidateCache(userID); err != nil {
		logger.Warn("cannot invalidate report cache", zap.Error(err))
	}
	return fmt.Sprintf("Your currency is now %s (%s)", c.Code, c.Name), nil
}

func (s *Service) handlePlayground(ctx context.Context, arg string, userID int64) (string, error) {
	rec, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return cannotGetSettingsMessage, errors.Wrap(err, "handle playground")
	}
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "on":
		rec.Playground = true
	case "off":
		rec.Playground = false
	case "":
		rec.Playground = !rec.Playground
	default:
		return "Usage: /playground on|off", nil
	}
	if err = s.users.SaveUser(ctx, userID, rec); err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle playground")
	}
	if rec.Playground {
		return "Playground mode is on 🧪 Ask \"what if\" questions, nothing will be saved", nil
	}
	return "Playground mode is off", nil
}

func (s *Service) handleCrypto(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return s.listHoldings(ctx, userID)
	}

	l := s.ledgers.Ledger(userID)
	switch args[0] {
	case "add":
		if len(args) != 3 {
			return "Usage: /crypto add <coin> <amount>", nil
		}
		if s.coins == nil {
			return cryptoUnavailableMessage, nil
		}
		amount, ok := parseAmount(args[2])
		if !ok {
			return incorrectAmountMessage, nil
		}
		coin, ok := s.coins.FindCoin(ctx, args[1])
		if !ok {
			return unknownCoinMessage, nil
		}
		h, err := l.AddHolding(finance.CryptoHolding{
			CoinID: coin.ID,
			Symbol: coin.Symbol,
			Name:   coin.Name,
			Amount: amount,
		})
		if msg, ok := describe(err); ok {
			return msg, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "handle crypto add")
		}
		return fmt.Sprintf("Added %g %s (%s)\nid: %s", h.Amount, strings.ToUpper(h.Symbol), h.Name, h.ID), nil

	case "currency":
		if len(args) != 2 {
			return "Usage: /crypto currency <code>", nil
		}
		return s.setCryptoCurrency(ctx, args[1], userID)

	case "rm":
		if len(args) != 2 {
			return "Usage: /crypto rm <id>", nil
		}
		err := l.DeleteHolding(args[1])
		if msg, ok := describe(err); ok {
			return msg, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "handle crypto rm")
		}
		return "Removed", nil
	}
	return "Usage: /crypto, /crypto add <coin> <amount>, /crypto rm <id>, /crypto currency <code>", nil
}

func (s *Service) setCryptoCurrency(ctx context.Context, code string, userID int64) (string, error) {
	c, ok := currency.Find(code)
	if !ok {
		return unknownCurrencyMessage + strings.Join(currency.Codes(), ", "), nil
	}
	rec, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return cannotGetSettingsMessage, errors.Wrap(err, "handle crypto currency")
	}
	rec.SetCryptoCurrency(c.Code)
	if err = s.users.SaveUser(ctx, userID, rec); err != nil {
		return cannotSaveSettingsMessage, errors.Wrap(err, "handle crypto currency")
	}
	return fmt.Sprintf("Crypto holdings are now shown in %s (%s)", c.Code, c.Name), nil
}

func (s *Service) listHoldings(ctx context.Context, userID int64) (string, error) {
	holdings := s.ledgers.Ledger(userID).View().Holdings
	if len(holdings) == 0 {
		return noHoldingsMessage, nil
	}

	prices := finance.Prices{}
	if s.prices != nil {
		stored, err := s.prices.GetPrices(ctx)
		if err != nil {
			logger.Warn("cannot read prices", zap.Error(err))
		} else {
			prices = stored
		}
	}
	return formatHoldings(holdings, prices, s.cryptoCurrencyCode(ctx, userID)), nil
}

func (s *Service) handleAchievements(_ context.Context, _ string, userID int64) (string, error) {
	achs := s.ledgers.Ledger(userID).View().Achievements
	if len(achs) == 0 {
		return noAchievementsMessage, nil
	}
	sort.SliceStable(achs, func(i, j int) bool {
		return achs[i].Date.Before(achs[j].Date)
	})
	lines := make([]string, 0, len(achs))
	for _, a := range achs {
		lines = append(lines, formatAchievement(a))
	}
	return strings.Join(lines, "\n\n"), nil
}

func (s *Service) handleAssistant(ctx context.Context, msg Message) (string, error) {
	countCommand("assistant")
	rec, err := s.users.GetUser(ctx, msg.UserID)
	if err != nil {
		logger.Warn("cannot read user settings", zap.Int64("userID", msg.UserID), zap.Error(err))
	}

	reply, err := s.advisor.Ask(ctx, s.ledgers.Ledger(msg.UserID), assistant.Input{
		Text:       msg.Text,
		Image:      msg.Image,
		Currency:   currency.FindOrDefault(rec.PreferredCurrency(s.config.BaseCurrency())),
		Playground: rec.Playground,
	})
	if err != nil {
		return reply.Text, errors.Wrap(err, "handle assistant")
	}
	return reply.Text, nil
}

// describe turns domain errors into a reply for the user.
func describe(err error) (string, bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, ledger.ErrExpenseNotFound):
		return "There is no expense with that id", true
	case errors.Is(err, ledger.ErrIncomeNotFound):
		return "There is no income with that id", true
	case errors.Is(err, ledger.ErrGoalNotFound):
		return "There is no goal with that id. See /goals", true
	case errors.Is(err, ledger.ErrHoldingNotFound):
		return "There is no holding with that id. See /crypto", true
	case errors.Is(err, ledger.ErrCategoryNotFound):
		return "There is no such category. See /budget", true
	case errors.Is(err, ledger.ErrCategoryExists):
		return "That category already exists", true
	case errors.Is(err, ledger.ErrFallbackCategory):
		return fmt.Sprintf("%s cannot be removed or renamed", finance.OtherCategory), true
	case errors.Is(err, ledger.ErrInvalidAmount):
		return incorrectAmountMessage, true
	case errors.Is(err, ledger.ErrEmptyName):
		return "The name must not be empty", true
	}
	return "", false
}
