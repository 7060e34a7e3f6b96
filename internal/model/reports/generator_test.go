package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
)

var reportNow = time.Date(2024, time.March, 20, 18, 0, 0, 0, time.UTC)

func testRequest(w period.Window) kafka.ReportRequest {
	return kafka.ReportRequest{
		UserID:   123,
		Window:   w,
		Currency: "USD",
		Snapshot: ledger.Snapshot{
			Limits: map[string]float64{"Internet": 50, "Shopping": 200, "Travel": 0, finance.OtherCategory: 100},
			Expenses: []finance.Expense{
				{ID: "1", Amount: 40, Category: "Internet", Date: reportNow.AddDate(0, 0, -1)},
				{ID: "2", Amount: 150, Category: "Shopping", Date: reportNow.AddDate(0, 0, -2)},
				{ID: "3", Amount: 100, Category: "Shopping", Date: reportNow.AddDate(0, 0, -3)},
				{ID: "4", Amount: 999, Category: "Shopping", Date: reportNow.AddDate(0, -2, 0)},
			},
			Income: []finance.Income{
				{ID: "i", Amount: 1000, Date: reportNow.AddDate(0, 0, -5)},
			},
		},
	}
}

func Test_OnGenerateReport_ShouldSummarizeWindowSortedBySpent(t *testing.T) {
	report := NewGenerator(func() time.Time { return reportNow }).
		GenerateReport(context.Background(), testRequest(period.Window{Mode: period.Month}))

	assert.True(t, report.GetStatus().GetSuccess())
	assert.Equal(t, int64(123), report.UserID)
	assert.Equal(t, "month", report.Period)
	require.Len(t, report.Records, 3)
	assert.Equal(t, reportapi.ReportRecord{Category: "Shopping", Spent: 250, Limit: 200}, report.Records[0])
	assert.Equal(t, reportapi.ReportRecord{Category: "Internet", Spent: 40, Limit: 50}, report.Records[1])
	assert.Equal(t, finance.OtherCategory, report.Records[2].Category)
	assert.Equal(t, 290.0, report.TotalSpent)
	assert.Equal(t, 1000.0, report.TotalIncome)
	assert.Equal(t, 710.0, report.Net)
}

func Test_OnGenerateReportForAllTime_ShouldIncludeOldExpenses(t *testing.T) {
	report := NewGenerator(func() time.Time { return reportNow }).
		GenerateReport(context.Background(), testRequest(period.Window{Mode: period.All}))

	assert.Equal(t, 1289.0, report.TotalSpent)
	assert.Equal(t, 1249.0, report.Records[0].Spent)
}

func Test_OnRender_ShouldMarkOverspentCategories(t *testing.T) {
	report := NewGenerator(func() time.Time { return reportNow }).
		GenerateReport(context.Background(), testRequest(period.Window{Mode: period.Month}))

	text := Render(report)

	assert.Contains(t, text, "Report for month")
	assert.Contains(t, text, "Shopping: $250.00 of $200.00 ⚠️")
	assert.Contains(t, text, "Internet: $40.00 of $50.00\n")
	assert.NotContains(t, text, "Other:")
	assert.Contains(t, text, "Income: $1,000.00")
}

func Test_OnRenderFailedReport_ShouldApologize(t *testing.T) {
	text := Render(&reportapi.ReportResult{Status: &reportapi.OperationStatus{Error: "boom"}})

	assert.Equal(t, "Sorry, the report could not be generated.", text)
}

func reportWindowMonth() period.Window {
	return period.Window{Mode: period.Month}
}
