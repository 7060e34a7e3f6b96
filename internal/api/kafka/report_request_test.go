package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/period"
)

func Test_OnEncodeDecode_ShouldKeepSnapshotAndWindow(t *testing.T) {
	date := time.Date(2024, time.February, 3, 10, 30, 0, 0, time.UTC)
	deadline := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	window, err := period.NewCustom(date.AddDate(0, 0, -10), date)
	require.NoError(t, err)
	req := ReportRequest{
		UserID:      123456789,
		Window:      window,
		Currency:    "EUR",
		RequestedAt: date,
		Snapshot: ledger.Snapshot{
			Limits:   map[string]float64{"Food": 500, finance.OtherCategory: 100},
			Expenses: []finance.Expense{{ID: "e1", Description: "Pizza", Amount: 12.35, Category: "Food", Subcategory: "Restaurant", Date: date}},
			Income:   []finance.Income{{ID: "i1", Description: "Salary", Amount: 3000, Date: date}},
			Goals:    []finance.Goal{{ID: "g1", Description: "Car", Target: 10000, Saved: 250, Deadline: &deadline}},
		},
	}

	data, err := Encode(req)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, req.UserID, got.UserID)
	assert.Equal(t, req.Currency, got.Currency)
	assert.Equal(t, period.Custom, got.Window.Mode)
	assert.True(t, req.Window.Start.Equal(got.Window.Start))
	assert.True(t, req.RequestedAt.Equal(got.RequestedAt))
	assert.Equal(t, req.Snapshot.Limits, got.Snapshot.Limits)
	require.Len(t, got.Snapshot.Expenses, 1)
	assert.Equal(t, 12.35, got.Snapshot.Expenses[0].Amount)
	assert.Equal(t, "Restaurant", got.Snapshot.Expenses[0].Subcategory)
	assert.Equal(t, 3000.0, got.Snapshot.Income[0].Amount)
	require.NotNil(t, got.Snapshot.Goals[0].Deadline)
	assert.True(t, deadline.Equal(*got.Snapshot.Goals[0].Deadline))
}

func Test_OnDecodeGarbage_ShouldFail(t *testing.T) {
	_, err := Decode([]byte{0xff, 0x01, 0x02})
	assert.Error(t, err)
}
