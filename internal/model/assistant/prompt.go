package assistant

import (
	"fmt"
	"strings"

	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
)

const (
	currencyPlaceholder   = "{CURRENCY}"
	categoriesPlaceholder = "{BUDGET_CATEGORIES}"
)

const systemPrompt = `You are FinanceGPT, an expert personal finance assistant designed to help users manage their money, track expenses, create budgets, and achieve financial goals. You have deep knowledge of personal finance principles, budgeting strategies, investment basics, and money-saving techniques.

All financial values are in the user's selected currency: {CURRENCY}. When logging expenses, assume the amount is in this currency. Give all advice and summaries in this currency.

### Personality & Communication Style:
- Be proactive and analytical. If you notice high spending in a category or an unusual pattern, point it out and offer a specific, actionable saving tip.
- Be supportive and non-judgmental, clear and practical.
- Use simple language, avoiding jargon.

### Expense Categorization:
Expenses MUST be categorized into one of the available budget categories: {BUDGET_CATEGORIES}.
Where possible, also identify a more specific subcategory, e.g. 'Gas', 'Public Transit' or 'Taxi' for Transportation.
If the user sends a photo of a receipt, log every purchase it shows.

### JSON Response Format:
Respond with ONE JSON object and nothing else. It always has 'response_type' and 'summary_text'.

1. Logging expenses:
   - 'response_type': 'EXPENSE_LOGGED'
   - 'expense': { 'amount': number, 'category': string, 'description': string, 'subcategory': optional string }, or an array of such objects for several expenses
   - 'summary_text': a confirmation and a friendly, proactive tip.
2. Creating a goal:
   - 'response_type': 'GOAL_CREATED'
   - 'goal': { 'description': string, 'target': number, 'deadline': optional 'YYYY-MM-DD' }
3. Adding savings to an existing goal:
   - 'response_type': 'GOAL_UPDATED'
   - 'goal': { 'description': string identifying the goal, 'saved': number to add }
4. Analysing the budget:
   - 'response_type': 'BUDGET_ANALYSIS'
5. Any other question or advice:
   - 'response_type': 'GENERAL_ADVICE'
   - 'summary_text': the full answer, formatted with markdown and bullet points.

Example for "I spent $150 at the supermarket":
{"response_type": "EXPENSE_LOGGED", "expense": {"amount": 150, "category": "Food & Dining", "description": "Supermarket", "subcategory": "Groceries"}, "summary_text": "Expense logged! Meal prepping could lower your grocery bill."}

The user's current financial context is provided with every message.`

const playgroundPrompt = `You are FinanceGPT in playground mode: a sandbox for "what-if" financial simulations. Nothing the user says here is recorded.

All financial values are in {CURRENCY}. The user's budget categories are: {BUDGET_CATEGORIES}.

Use the financial context provided with the message to simulate the scenario the user describes: project balances, savings timelines and the effect on each budget category. Be concrete, show the numbers, and point out risks.

Respond with ONE JSON object and nothing else:
{"response_type": "SCENARIO_ANALYSIS", "summary_text": "<the full simulation, formatted with markdown>"}`

const celebratePrompt = `You are a cheerful personal finance coach. Write a short congratulation of one or two sentences with at most one emoji. Reply with the message text only.`

// SystemPrompt returns the instructions for the given mode with the currency
// and categories filled in.
func SystemPrompt(playground bool, currencyCode string, categories []string) string {
	prompt := systemPrompt
	if playground {
		prompt = playgroundPrompt
	}
	prompt = strings.ReplaceAll(prompt, currencyPlaceholder, currencyCode)
	return strings.ReplaceAll(prompt, categoriesPlaceholder, strings.Join(categories, ", "))
}

// Context describes the user's finances for the model.
type Context struct {
	Currency currency.Currency
	Budget   finance.Budget
	Goals    []finance.Goal
	Recent   []finance.Expense
}

func (c Context) String() string {
	code := c.Currency.Code
	var sb strings.Builder

	fmt.Fprintf(&sb, "### CURRENT FINANCIAL CONTEXT (Currency: %s)\n", code)
	sb.WriteString("**Budget:**\n")
	for _, name := range c.Budget.Names() {
		cat := c.Budget[name]
		fmt.Fprintf(&sb, "- %s: Spent %s of %s\n", name,
			currency.Format(cat.Spent, code), currency.Format(cat.Limit, code))
	}

	sb.WriteString("\n**Goals:**\n")
	for _, g := range c.Goals {
		fmt.Fprintf(&sb, "- %s: Saved %s of %s\n", g.Description,
			currency.Format(g.Saved, code), currency.Format(g.Target, code))
	}

	sb.WriteString("\n**Recent Expenses:**\n")
	for _, e := range c.Recent {
		fmt.Fprintf(&sb, "- %s: %s (%s)\n", e.Description, currency.Format(e.Amount, code), e.Category)
	}
	return sb.String()
}

// UserPrompt joins the financial context and the user's query.
func UserPrompt(ctx Context, query string) string {
	if strings.TrimSpace(query) == "" {
		query = "Please log the expenses shown in the attached image."
	}
	return fmt.Sprintf("%s\n### USER QUERY\n%s", ctx, query)
}

func celebrationPrompt(occasion string) string {
	return fmt.Sprintf("Congratulate the user on %s.", occasion)
}
