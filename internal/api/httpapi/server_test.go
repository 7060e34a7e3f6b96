package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/palette"
	"max.ks1230/financegpt/internal/model/storage"
)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

type serverConfigStub struct {
	rps   int
	burst int
}

func (c serverConfigStub) Addr() string { return ":0" }

func (c serverConfigStub) RequestsPerSecond() int { return c.rps }

func (c serverConfigStub) Burst() int { return c.burst }

type appConfigStub struct{}

func (appConfigStub) BaseCurrency() string { return "USD" }

func (appConfigStub) TimeZone() string { return "UTC" }

type advisorStub struct {
	reply  assistant.Reply
	err    error
	inputs []assistant.Input
}

func (a *advisorStub) Ask(_ context.Context, _ *ledger.Ledger, in assistant.Input) (assistant.Reply, error) {
	a.inputs = append(a.inputs, in)
	return a.reply, a.err
}

func (a *advisorStub) CelebrateAwards(_ context.Context, l *ledger.Ledger) []finance.Achievement {
	var res []finance.Achievement
	for _, aw := range l.TakeAwards() {
		res = append(res, finance.Achievement{ID: aw.ID, Title: aw.Title, Message: aw.DefaultMessage()})
	}
	return res
}

type coinsStub []finance.Coin

func (c coinsStub) SupportedCoins(context.Context) []finance.Coin {
	return c
}

func (c coinsStub) FindCoin(_ context.Context, query string) (finance.Coin, bool) {
	for _, coin := range c {
		if coin.ID == query || coin.Symbol == query {
			return coin, true
		}
	}
	return finance.Coin{}, false
}

type testServer struct {
	handler http.Handler
	storage *storage.InMemStorage
	advisor *advisorStub
}

func newTestServer(t *testing.T, cfg serverConfigStub) testServer {
	t.Helper()
	seq := 0
	st := storage.NewInMemStorage(func(int64) *ledger.Ledger {
		l := ledger.New(
			ledger.WithClock(func() time.Time { return testNow }),
			ledger.WithIDGenerator(func() string {
				seq++
				return fmt.Sprintf("id-%d", seq)
			}),
		)
		l.Reevaluate()
		l.TakeAwards()
		return l
	})
	adv := &advisorStub{}
	coins := coinsStub{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}}
	srv := NewServer(cfg, appConfigStub{}, st, st, adv, WithPrices(st), WithCoins(coins))
	return testServer{handler: srv.Handler(), storage: st, advisor: adv}
}

func defaultConfig() serverConfigStub {
	return serverConfigStub{rps: 1000, burst: 1000}
}

func (ts testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func Test_OnAddExpense_ShouldUpdateDashboard(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/expenses", map[string]interface{}{
		"description": "Groceries",
		"amount":      120.5,
		"category":    "Food & Dining",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash dashboardResponse
	decodeBody(t, rec, &dash)

	assert.Equal(t, "month", dash.Period)
	assert.Equal(t, 120.5, dash.TotalSpent)
	require.NotEmpty(t, dash.Categories)
	assert.Equal(t, "Food & Dining", dash.Categories[0].Name)
	assert.Equal(t, palette.CategoryColor("Food & Dining"), dash.Categories[0].Color)
	assert.Equal(t, "USD", dash.Settings.Currency.Code)
}

func Test_OnInvalidExpense_ShouldReturnBadRequest(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/expenses", map[string]interface{}{"amount": -1})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body errorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, ledger.ErrInvalidAmount.Error(), body.Error)
}

func Test_OnMalformedBody_ShouldReturnBadRequest(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/1/income", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()

	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnBadUserID_ShouldReturnBadRequest(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodGet, "/api/v1/users/abc/dashboard", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnUnknownExpense_ShouldReturnNotFound(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodDelete, "/api/v1/users/1/expenses/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_OnCategoryConflicts_ShouldReturnConflict(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/categories", categoryRequest{Name: "Housing", Limit: 10})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/users/1/categories/Other", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func Test_OnDeleteCategory_ShouldMoveSpentToOther(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	ts.do(t, http.MethodPost, "/api/v1/users/1/expenses", map[string]interface{}{"amount": 30, "category": "Education"})

	rec := ts.do(t, http.MethodDelete, "/api/v1/users/1/categories/Education", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	budget := ts.storage.Ledger(1).View().Budget
	assert.Equal(t, 30.0, budget[finance.OtherCategory].Spent)
}

func Test_OnGoalMilestone_ShouldReturnAchievement(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/goals", goalRequest{Description: "Car", Target: 1000, Deadline: "2025-01-01"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/users/1/goals/id-1/contributions", contributionRequest{Amount: 600})

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data         finance.Goal          `json:"data"`
		Achievements []finance.Achievement `json:"achievements"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 600.0, body.Data.Saved)
	require.Len(t, body.Achievements, 1)
	assert.Equal(t, "goal-50-id-1", body.Achievements[0].ID)
}

func Test_OnCustomPeriod_ShouldSwitchWindow(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	ts.do(t, http.MethodPost, "/api/v1/users/1/expenses", map[string]interface{}{"amount": 10, "category": "Shopping", "date": "2024-01-10"})

	rec := ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard?period=custom&start=2024-01-01&end=2024-01-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dash dashboardResponse
	decodeBody(t, rec, &dash)
	assert.Equal(t, "2024-01-01..2024-01-31", dash.Period)
	assert.Equal(t, 10.0, dash.TotalSpent)

	rec = ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard?period=custom&start=2024-02-01&end=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnCryptoHolding_ShouldValueWithStoredPrices(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	prices := finance.Prices{}
	prices.Set("bitcoin", "usd", 50000)
	require.NoError(t, ts.storage.SavePrices(context.Background(), prices))

	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/crypto", holdingRequest{CoinID: "btc", Amount: 0.1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = ts.do(t, http.MethodPost, "/api/v1/users/1/crypto", holdingRequest{CoinID: "nocoin", Amount: 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard", nil)
	var dash dashboardResponse
	decodeBody(t, rec, &dash)
	require.Len(t, dash.Holdings, 1)
	assert.Equal(t, "bitcoin", dash.Holdings[0].CoinID)
	assert.InDelta(t, 5000.0, dash.CryptoValue, 1e-9)
}

func Test_OnCryptoCurrency_ShouldValueHoldingsSeparately(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	prices := finance.Prices{}
	prices.Set("bitcoin", "usd", 50000)
	prices.Set("bitcoin", "eur", 45000)
	prices.Set("bitcoin", "gbp", 40000)
	require.NoError(t, ts.storage.SavePrices(context.Background(), prices))
	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/crypto", holdingRequest{CoinID: "bitcoin", Amount: 0.1})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/users/1/settings", map[string]interface{}{"cryptoCurrency": "eur"})
	require.Equal(t, http.StatusOK, rec.Code)
	var dash dashboardResponse
	decodeBody(t, ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard", nil), &dash)
	assert.Equal(t, "USD", dash.Settings.Currency.Code)
	assert.Equal(t, "EUR", dash.CryptoCurrency)
	assert.InDelta(t, 4500.0, dash.CryptoValue, 1e-9)

	rec = ts.do(t, http.MethodPut, "/api/v1/users/1/settings", map[string]interface{}{"currency": "gbp"})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, ts.do(t, http.MethodGet, "/api/v1/users/1/dashboard", nil), &dash)
	assert.Equal(t, "GBP", dash.CryptoCurrency)
	assert.InDelta(t, 4000.0, dash.CryptoValue, 1e-9)

	rec = ts.do(t, http.MethodPut, "/api/v1/users/1/settings", map[string]interface{}{"cryptoCurrency": "xyz"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnSettings_ShouldDriveChatCurrency(t *testing.T) {
	ts := newTestServer(t, defaultConfig())
	ts.advisor.reply = assistant.Reply{Text: "Noted"}

	rec := ts.do(t, http.MethodPut, "/api/v1/users/1/settings", map[string]interface{}{"currency": "jpy", "playground": true})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = ts.do(t, http.MethodPost, "/api/v1/users/1/chat", chatRequest{Message: "what if I save more?"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, ts.advisor.inputs, 1)
	assert.Equal(t, "JPY", ts.advisor.inputs[0].Currency.Code)
	assert.True(t, ts.advisor.inputs[0].Playground)
	assert.Contains(t, rec.Body.String(), `"text":"Noted"`)
}

func Test_OnEmptyChat_ShouldReturnBadRequest(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodPost, "/api/v1/users/1/chat", chatRequest{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_OnGlobalRoutes_ShouldServeCatalogs(t *testing.T) {
	ts := newTestServer(t, defaultConfig())

	rec := ts.do(t, http.MethodGet, "/api/v1/currencies", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"USD"`)

	rec = ts.do(t, http.MethodGet, "/api/v1/coins", nil)
	assert.Contains(t, rec.Body.String(), `"id":"bitcoin"`)

	rec = ts.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, "ok", rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func Test_OnBurstExceeded_ShouldRateLimit(t *testing.T) {
	ts := newTestServer(t, serverConfigStub{rps: 1, burst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, ts.do(t, http.MethodGet, "/api/v1/currencies", nil).Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
