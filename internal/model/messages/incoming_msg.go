package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	kafkaapi "max.ks1230/financegpt/internal/api/kafka"
	"max.ks1230/financegpt/internal/api/reportapi"
	"max.ks1230/financegpt/internal/clients/cache"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/reports"
)

type messageSender interface {
	SendMessage(text string, userID int64) error
}

type ledgerStorage interface {
	Ledger(userID int64) *ledger.Ledger
	UserIDs() []int64
}

type userStorage interface {
	GetUser(ctx context.Context, id int64) (user.Record, error)
	SaveUser(ctx context.Context, id int64, rec user.Record) error
}

type pricesStorage interface {
	GetPrices(ctx context.Context) (finance.Prices, error)
}

type advisor interface {
	Ask(ctx context.Context, l *ledger.Ledger, in assistant.Input) (assistant.Reply, error)
	CelebrateAwards(ctx context.Context, l *ledger.Ledger) []finance.Achievement
}

type coinFinder interface {
	FindCoin(ctx context.Context, query string) (finance.Coin, bool)
}

type reportCache interface {
	CacheReport(userID int64, period string, report string) error
	GetReport(userID int64, period string) (string, error)
	InvalidateCache(userID int64) error
}

type reportRequester interface {
	RequestReport(ctx context.Context, req kafkaapi.ReportRequest) error
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, req kafkaapi.ReportRequest) *reportapi.ReportResult
}

type config interface {
	BaseCurrency() string
	TimeZone() string
}

type Service struct {
	tgClient    messageSender
	ledgers     ledgerStorage
	users       userStorage
	advisor     advisor
	config      config
	prices      pricesStorage
	coins       coinFinder
	cache       reportCache
	requester   reportRequester
	generator   reportGenerator
	loc         *time.Location
	clock       func() time.Time
	handlersMap handlerMap
}

type Option func(*Service)

func WithPrices(prices pricesStorage) Option {
	return func(s *Service) {
		s.prices = prices
	}
}

func WithCoins(coins coinFinder) Option {
	return func(s *Service) {
		s.coins = coins
	}
}

func WithReportCache(c reportCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithReportRequester sends /report through the reporter. Without it
// reports are generated in-process.
func WithReportRequester(r reportRequester) Option {
	return func(s *Service) {
		s.requester = r
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func NewService(tgClient messageSender, ledgers ledgerStorage, users userStorage, advisor advisor, config config, opts ...Option) *Service {
	s := &Service{
		tgClient: tgClient,
		ledgers:  ledgers,
		users:    users,
		advisor:  advisor,
		config:   config,
		cache:    cache.Nop{},
		loc:      location(config.TimeZone()),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.generator = reports.NewGenerator(s.clock)
	s.handlersMap = newMap(s)
	return s
}

type Message struct {
	Text   string
	UserID int64
	Image  *assistant.Image
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.dispatch(ctx, msg)
	if err != nil {
		if resp == "" {
			resp = somethingWrongMessage
		}
		_ = s.tgClient.SendMessage(resp, msg.UserID)
		s.AnnounceAchievements(ctx, msg.UserID)
		return err
	}
	if err = s.tgClient.SendMessage(resp, msg.UserID); err != nil {
		return err
	}
	s.AnnounceAchievements(ctx, msg.UserID)
	return nil
}

func (s *Service) dispatch(ctx context.Context, msg Message) (string, error) {
	if msg.Image != nil {
		return s.handleAssistant(ctx, msg)
	}

	cmd, arg := parseCommand(msg.Text)
	if cmd == "" {
		return s.handleAssistant(ctx, msg)
	}

	handler, ok := s.handlersMap[cmd]
	if !ok {
		countCommand("unknown")
		return dontUnderstandMessage, nil
	}
	countCommand(cmd)

	span, ctx := opentracing.StartSpanFromContext(ctx, "command")
	defer span.Finish()
	span.SetTag("command", cmd)

	return handler(ctx, arg, msg.UserID)
}

// AnnounceAchievements sends a congratulation for every achievement the
// user earned since the last announcement.
func (s *Service) AnnounceAchievements(ctx context.Context, userID int64) {
	l := s.ledgers.Ledger(userID)
	for _, a := range s.advisor.CelebrateAwards(ctx, l) {
		if err := s.tgClient.SendMessage(formatAchievement(a), userID); err != nil {
			logger.Error("cannot announce achievement", zap.Int64("userID", userID), zap.Error(err))
		}
	}
}

// SweepAchievements re-checks every known user for achievements that became
// due with the passage of time.
func (s *Service) SweepAchievements(ctx context.Context) {
	for _, userID := range s.ledgers.UserIDs() {
		if s.ledgers.Ledger(userID).Reevaluate() > 0 {
			s.AnnounceAchievements(ctx, userID)
		}
	}
}

// AcceptReport delivers a finished report to the user and caches it.
func (s *Service) AcceptReport(_ context.Context, report *reportapi.ReportResult) error {
	text := reports.Render(report)
	if report.GetStatus().GetSuccess() {
		if err := s.cache.CacheReport(report.UserID, report.Period, text); err != nil {
			logger.Warn("cannot cache report", zap.Int64("userID", report.UserID), zap.Error(err))
		}
	}
	return s.tgClient.SendMessage(text, report.UserID)
}
