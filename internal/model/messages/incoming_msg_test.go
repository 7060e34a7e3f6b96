package messages

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kafkaapi "max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/messages/mock"
	"max.ks1230/financegpt/internal/model/period"
	"max.ks1230/financegpt/internal/model/storage"
)

const testUser = int64(123)

var testNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func testClock() time.Time {
	return testNow
}

func newTestStorage(drainAwards bool) *storage.InMemStorage {
	seq := 0
	return storage.NewInMemStorage(func(int64) *ledger.Ledger {
		l := ledger.New(
			ledger.WithClock(testClock),
			ledger.WithIDGenerator(func() string {
				seq++
				return fmt.Sprintf("id-%d", seq)
			}),
		)
		if drainAwards {
			l.Reevaluate()
			l.TakeAwards()
		}
		return l
	})
}

type sentMessage struct {
	text   string
	userID int64
}

type fixture struct {
	sender  *mock.MessageSenderMock
	advisor *mock.AdvisorMock
	storage *storage.InMemStorage
	service *Service

	mu   sync.Mutex
	sent []sentMessage
}

func newFixture(m minimock.Tester, st *storage.InMemStorage, opts ...Option) *fixture {
	f := &fixture{
		sender:  mock.NewMessageSenderMock(m),
		advisor: mock.NewAdvisorMock(m),
		storage: st,
	}
	f.advisor.CelebrateAwardsMock.Set(celebrateWithDefaults)
	opts = append([]Option{WithClock(testClock)}, opts...)
	f.service = NewService(f.sender, st, st, f.advisor, configStub{}, opts...)
	return f
}

func celebrateWithDefaults(_ context.Context, l *ledger.Ledger) []finance.Achievement {
	var res []finance.Achievement
	for _, a := range l.TakeAwards() {
		res = append(res, finance.Achievement{ID: a.ID, Title: a.Title, Message: a.DefaultMessage()})
	}
	return res
}

// record accepts any message and keeps it for later assertions.
func (f *fixture) record() {
	f.sender.SendMessageMock.Set(func(text string, userID int64) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.sent = append(f.sent, sentMessage{text: text, userID: userID})
		return nil
	})
}

func (f *fixture) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := make([]string, 0, len(f.sent))
	for _, msg := range f.sent {
		res = append(res, msg.text)
	}
	return res
}

func (f *fixture) send(t *testing.T, text string) {
	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: text, UserID: testUser})
	require.NoError(t, err)
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect(helloMessage + "\n\n" + helpMessage, testUser).Return(nil)

	f.send(t, "/start")
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect(dontUnderstandMessage, testUser).Return(nil)

	f.send(t, "/none")
}

func Test_OnExpenseCommand_ShouldAddToMatchingCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect("Gotcha! $12.50 in Shopping\nid: id-1", testUser).Return(nil)

	f.send(t, "/expense 12,5 shopping")

	assert.Equal(t, 12.5, f.storage.Ledger(testUser).View().Budget["Shopping"].Spent)
}

func Test_OnExpenseWithDate_ShouldUseIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()

	f.send(t, "/expense 40 food & dining 01.03.2024")

	expenses := f.storage.Ledger(testUser).View().Expenses
	require.Len(t, expenses, 1)
	assert.Equal(t, "Food & Dining", expenses[0].Category)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), expenses[0].Date)
}

func Test_OnExpenseWithBadAmount_ShouldNotChangeLedger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect(incorrectAmountMessage, testUser).Return(nil)

	f.send(t, "/expense -3 shopping")

	assert.Empty(t, f.storage.Ledger(testUser).View().Expenses)
}

func Test_OnExpenseWithNonFiniteAmount_ShouldNotChangeLedger(t *testing.T) {
	for _, text := range []string{"/expense NaN shopping", "/expense Inf shopping", "/expense -inf shopping"} {
		m := minimock.NewController(t)
		f := newFixture(m, newTestStorage(true))
		f.sender.SendMessageMock.Expect(incorrectAmountMessage, testUser).Return(nil)

		f.send(t, text)

		assert.Empty(t, f.storage.Ledger(testUser).View().Expenses, text)
		m.Finish()
	}
}

func Test_OnParseAmountAndLimit_ShouldRejectNonFinite(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "1e400"} {
		_, ok := parseAmount(s)
		assert.False(t, ok, s)
		_, ok = parseLimit(s)
		assert.False(t, ok, s)
	}

	amount, ok := parseAmount("12,5")
	assert.True(t, ok)
	assert.Equal(t, 12.5, amount)
	limit, ok := parseLimit("0")
	assert.True(t, ok)
	assert.Equal(t, 0.0, limit)
}

func Test_OnEditCommand_ShouldMoveExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()
	f.send(t, "/expense 30 shopping")

	f.send(t, "/edit id-1 25 entertainment")

	budget := f.storage.Ledger(testUser).View().Budget
	assert.Equal(t, 0.0, budget["Shopping"].Spent)
	assert.Equal(t, 25.0, budget["Entertainment"].Spent)
	assert.Equal(t, "Updated: $25.00 in Entertainment", f.texts()[1])
}

func Test_OnDeleteUnknownExpense_ShouldExplain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect("There is no expense with that id", testUser).Return(nil)

	f.send(t, "/delete nope")
}

func Test_OnRemovingOther_ShouldRefuse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.Expect("Other cannot be removed or renamed", testUser).Return(nil)

	f.send(t, "/rmcategory other")
}

func Test_OnRemovingCategory_ShouldMoveSpentToOther(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()
	f.send(t, "/expense 70 education")

	f.send(t, "/rmcategory Education")

	budget := f.storage.Ledger(testUser).View().Budget
	assert.NotContains(t, budget, "Education")
	assert.Equal(t, 70.0, budget[finance.OtherCategory].Spent)
}

func Test_OnCategoryForExisting_ShouldUpdateLimit(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.When("Food & Dining limit is $900.00", testUser).Then(nil)
	f.sender.SendMessageMock.When("Pets limit is $40.00", testUser).Then(nil)

	f.send(t, "/category 900 food & dining")
	f.send(t, "/category 40 Pets")

	budget := f.storage.Ledger(testUser).View().Budget
	assert.Equal(t, 900.0, budget["Food & Dining"].Limit)
	assert.Equal(t, 40.0, budget["Pets"].Limit)
}

func Test_OnGoalCommands_ShouldTrackProgress(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()

	f.send(t, "/goal 1000 New laptop")
	f.send(t, "/save id-1 250")
	f.send(t, "/goals")

	texts := f.texts()
	assert.Equal(t, "New goal: New laptop, target $1,000.00\nid: id-1", texts[0])
	assert.Equal(t, "🎯 New laptop: $250.00 of $1,000.00 (25%)", texts[1])
	assert.Equal(t, "🎯 New laptop: $250.00 of $1,000.00 (25%)\nid: id-1", texts[2])
}

func Test_OnPeriodCommand_ShouldSwitchWindow(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()

	f.send(t, "/period week")
	f.send(t, "/period someday")
	f.send(t, "/period")

	assert.Equal(t, []string{"Active period: week", incorrectPeriodMessage, "Active period: week"}, f.texts())
	assert.Equal(t, period.Week, f.storage.Ledger(testUser).Window().Mode)
}

func Test_OnReportWithoutKafka_ShouldRenderAndCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	reports := newReportCacheStub()
	f := newFixture(m, newTestStorage(true), WithReportCache(reports))
	f.record()
	_, err := f.storage.Ledger(testUser).AddExpense(finance.Expense{Amount: 30, Category: "Shopping"})
	require.NoError(t, err)

	f.send(t, "/report")

	text := f.texts()[0]
	assert.Contains(t, text, "📊 Report for month")
	assert.Contains(t, text, "Shopping: $30.00 of $250.00")
	assert.Equal(t, text, reports.reports["month"])
}

func Test_OnCachedReport_ShouldNotRequestAgain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	reports := newReportCacheStub()
	reports.reports["week"] = "cached week"
	requester := mock.NewReportRequesterMock(m)
	f := newFixture(m, newTestStorage(true), WithReportCache(reports), WithReportRequester(requester))
	f.sender.SendMessageMock.Expect("cached week", testUser).Return(nil)

	f.send(t, "/report week")
}

func Test_OnReportWithKafka_ShouldQueueRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	var req kafkaapi.ReportRequest
	requester := mock.NewReportRequesterMock(m)
	requester.RequestReportMock.
		Inspect(func(_ context.Context, r kafkaapi.ReportRequest) { req = r }).
		Return(nil)
	f := newFixture(m, newTestStorage(true), WithReportRequester(requester))
	_, err := f.storage.Ledger(testUser).AddExpense(finance.Expense{Amount: 30, Category: "Shopping"})
	require.NoError(t, err)
	f.sender.SendMessageMock.Expect(reportQueuedMessage, testUser).Return(nil)

	f.send(t, "/report all")

	assert.Equal(t, testUser, req.UserID)
	assert.Equal(t, period.All, req.Window.Mode)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, testNow, req.RequestedAt)
	assert.Len(t, req.Snapshot.Expenses, 1)
}

func Test_OnReportRequestFailure_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	requester := mock.NewReportRequesterMock(m)
	requester.RequestReportMock.Return(errors.New("kafka down"))
	f := newFixture(m, newTestStorage(true), WithReportRequester(requester))
	f.sender.SendMessageMock.Expect(cannotBuildReportMessage, testUser).Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/report", UserID: testUser})

	assert.Error(t, err)
}

func Test_OnAcceptReport_ShouldSendAndCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	reports := newReportCacheStub()
	st := newTestStorage(true)
	sender := mock.NewMessageSenderMock(m)
	var text string
	sender.SendMessageMock.Set(func(msg string, userID int64) error {
		text = msg
		return nil
	})
	service := NewService(sender, st, st, mock.NewAdvisorMock(m), configStub{}, WithReportCache(reports))

	err := service.AcceptReport(context.Background(), &reportapi.ReportResult{
		UserID:   testUser,
		Period:   "week",
		Currency: "USD",
		Status:   &reportapi.OperationStatus{Success: true},
	})

	require.NoError(t, err)
	assert.Contains(t, text, "No expenses in this period.")
	assert.Contains(t, reports.reports, "week")
}

func Test_OnCurrencyCommand_ShouldSaveChoice(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.sender.SendMessageMock.When("Your currency is now EUR (Euro)", testUser).Then(nil)
	f.sender.SendMessageMock.When("Your currency is EUR", testUser).Then(nil)

	f.send(t, "/currency eur")
	f.send(t, "/currency")

	rec, err := f.storage.GetUser(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, "EUR", rec.PreferredCurrency("USD"))
}

func Test_OnUnknownCurrency_ShouldListSupported(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()

	f.send(t, "/currency xyz")

	assert.Contains(t, f.texts()[0], unknownCurrencyMessage+"USD, EUR, JPY")
}

func Test_OnPlaygroundText_ShouldAskInPlaygroundMode(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.record()
	var inputs []assistant.Input
	f.advisor.AskMock.
		Inspect(func(_ context.Context, _ *ledger.Ledger, in assistant.Input) { inputs = append(inputs, in) }).
		Return(assistant.Reply{Text: "In this scenario..."}, nil)

	f.send(t, "/playground on")
	f.send(t, "what if I buy a car?")

	require.Len(t, inputs, 1)
	assert.True(t, inputs[0].Playground)
	assert.Equal(t, "what if I buy a car?", inputs[0].Text)
	assert.Equal(t, "USD", inputs[0].Currency.Code)
	assert.Equal(t, "In this scenario...", f.texts()[1])
}

func Test_OnAssistantFailure_ShouldSendFallback(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	f.advisor.AskMock.Return(assistant.Reply{Text: assistant.FallbackMessage}, errors.New("overloaded"))
	f.sender.SendMessageMock.Expect(assistant.FallbackMessage, testUser).Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "coffee 3", UserID: testUser})

	assert.Error(t, err)
}

func Test_OnPhoto_ShouldPassImageToAssistant(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(true))
	img := &assistant.Image{MimeType: "image/jpeg", Data: []byte{0xff, 0xd8}}
	var got assistant.Input
	f.advisor.AskMock.
		Inspect(func(_ context.Context, _ *ledger.Ledger, in assistant.Input) { got = in }).
		Return(assistant.Reply{Text: "Logged your receipt"}, nil)
	f.sender.SendMessageMock.Expect("Logged your receipt", testUser).Return(nil)

	err := f.service.HandleIncomingMessage(context.Background(), Message{Text: "/expense", UserID: testUser, Image: img})

	require.NoError(t, err)
	assert.Equal(t, img, got.Image)
}

func Test_OnCryptoCommands_ShouldValueHoldings(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := newTestStorage(true)
	coins := coinFinderStub{"btc": {ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}}
	f := newFixture(m, st, WithCoins(coins), WithPrices(st))
	f.record()
	prices := finance.Prices{}
	prices.Set("bitcoin", "usd", 60000)
	require.NoError(t, st.SavePrices(context.Background(), prices))

	f.send(t, "/crypto add btc 0.5")
	f.send(t, "/crypto add doge 1")
	f.send(t, "/crypto")

	texts := f.texts()
	assert.Equal(t, "Added 0.5 BTC (Bitcoin)\nid: id-1", texts[0])
	assert.Equal(t, unknownCoinMessage, texts[1])
	assert.Contains(t, texts[2], "0.5 BTC (Bitcoin): $30,000.00")
	assert.Contains(t, texts[2], "Total: $30,000.00")
}

func Test_OnCryptoCurrency_ShouldValueHoldingsSeparately(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := newTestStorage(true)
	coins := coinFinderStub{"btc": {ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}}
	f := newFixture(m, st, WithCoins(coins), WithPrices(st))
	f.record()
	prices := finance.Prices{}
	prices.Set("bitcoin", "usd", 60000)
	prices.Set("bitcoin", "eur", 50000)
	require.NoError(t, st.SavePrices(context.Background(), prices))

	f.send(t, "/crypto add btc 0.5")
	f.send(t, "/crypto currency eur")
	f.send(t, "/crypto")
	f.send(t, "/budget")

	texts := f.texts()
	assert.Equal(t, "Crypto holdings are now shown in EUR (Euro)", texts[1])
	assert.Contains(t, texts[2], "€")
	assert.Contains(t, texts[2], "25,000.00")
	assert.NotContains(t, texts[2], "$")
	assert.Contains(t, texts[3], "$")
	rec, err := st.GetUser(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, "USD", rec.PreferredCurrency("USD"))
	assert.Equal(t, "EUR", rec.CryptoCurrency("USD"))
}

func Test_OnFirstExpense_ShouldAnnounceAchievement(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(false))
	f.record()

	f.send(t, "/expense 10 shopping")

	texts := f.texts()
	require.Len(t, texts, 2)
	assert.Contains(t, texts[1], "🏆 Budgeting Pro!")
}

func Test_OnSweep_ShouldAnnounceOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(m, newTestStorage(false))
	f.record()
	f.storage.Ledger(7)

	f.service.SweepAchievements(context.Background())
	f.service.SweepAchievements(context.Background())

	texts := f.texts()
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "Budgeting Pro!")
	assert.Equal(t, int64(7), f.sent[0].userID)
}

func Test_OnParseCommand_ShouldStripBotName(t *testing.T) {
	cmd, arg := parseCommand("/Report@FinanceGPTBot  week ")
	assert.Equal(t, "/report", cmd)
	assert.Equal(t, "week", arg)

	cmd, arg = parseCommand("spent 5 on coffee")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "spent 5 on coffee", arg)
}
