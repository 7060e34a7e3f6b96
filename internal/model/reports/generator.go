package reports

import (
	"context"
	"sort"
	"time"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/ledger"
)

type Generator struct {
	clock func() time.Time
}

func NewGenerator(clock func() time.Time) *Generator {
	if clock == nil {
		clock = time.Now
	}
	return &Generator{clock: clock}
}

// GenerateReport rebuilds the user's ledger from the snapshot for the
// requested window and summarizes it per category.
func (g *Generator) GenerateReport(ctx context.Context, req kafka.ReportRequest) *reportapi.ReportResult {
	span, _ := opentracing.StartSpanFromContext(ctx, "generateReport")
	defer span.Finish()
	span.SetTag("userID", req.UserID)

	logger.Info("GenerateReport - start", zap.Int64("userID", req.UserID), zap.String("period", req.Window.String()))
	defer logger.Info("GenerateReport - end")

	view := ledger.Restore(req.Snapshot, req.Window, ledger.WithClock(g.clock)).View()

	records := make([]reportapi.ReportRecord, 0, len(view.Budget))
	for name, cat := range view.Budget {
		if cat.Spent == 0 && cat.Limit == 0 {
			continue
		}
		records = append(records, reportapi.ReportRecord{Category: name, Spent: cat.Spent, Limit: cat.Limit})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Spent != records[j].Spent {
			return records[i].Spent > records[j].Spent
		}
		return records[i].Category < records[j].Category
	})

	return &reportapi.ReportResult{
		UserID:      req.UserID,
		Period:      req.Window.String(),
		Currency:    req.Currency,
		Records:     records,
		TotalSpent:  view.TotalSpent,
		TotalIncome: view.TotalIncome,
		Net:         view.TotalIncome - view.TotalSpent,
		Status:      &reportapi.OperationStatus{Success: true},
	}
}
