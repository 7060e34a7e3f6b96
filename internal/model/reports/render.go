package reports

import (
	"fmt"
	"strings"

	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/entity/currency"
)

// Render formats a report as chat text.
func Render(r *reportapi.ReportResult) string {
	if !r.GetStatus().GetSuccess() {
		return "Sorry, the report could not be generated."
	}

	code := r.Currency
	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Report for %s\n\n", r.Period)
	spentAny := false
	for _, rec := range r.Records {
		if rec.Spent == 0 {
			continue
		}
		spentAny = true
		line := fmt.Sprintf("%s: %s of %s", rec.Category, currency.Format(rec.Spent, code), currency.Format(rec.Limit, code))
		if rec.Limit > 0 && rec.Spent > rec.Limit {
			line += " ⚠️"
		}
		sb.WriteString(line + "\n")
	}
	if !spentAny {
		sb.WriteString("No expenses in this period.\n")
	}

	fmt.Fprintf(&sb, "\nSpent: %s\nIncome: %s\nNet: %s",
		currency.Format(r.TotalSpent, code),
		currency.Format(r.TotalIncome, code),
		currency.Format(r.Net, code))
	return sb.String()
}
