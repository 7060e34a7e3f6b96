package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/assistant"
	"max.ks1230/financegpt/internal/model/ledger"
)

const (
	readHeaderTimeout = 5 * time.Second
	maxBodyBytes      = 12 << 20
)

type ledgerStorage interface {
	Ledger(userID int64) *ledger.Ledger
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

type coinCatalog interface {
	SupportedCoins(ctx context.Context) []finance.Coin
	FindCoin(ctx context.Context, query string) (finance.Coin, bool)
}

type serverConfig interface {
	Addr() string
	RequestsPerSecond() int
	Burst() int
}

type appConfig interface {
	BaseCurrency() string
	TimeZone() string
}

// Server is the dashboard API.
type Server struct {
	ledgers ledgerStorage
	users   userStorage
	advisor advisor
	app     appConfig
	prices  pricesStorage
	coins   coinCatalog
	loc     *time.Location

	router chi.Router
	srv    *http.Server
}

type Option func(*Server)

func WithPrices(prices pricesStorage) Option {
	return func(s *Server) {
		s.prices = prices
	}
}

func WithCoins(coins coinCatalog) Option {
	return func(s *Server) {
		s.coins = coins
	}
}

func NewServer(cfg serverConfig, app appConfig, ledgers ledgerStorage, users userStorage, advisor advisor, opts ...Option) *Server {
	s := &Server{
		ledgers: ledgers,
		users:   users,
		advisor: advisor,
		app:     app,
		loc:     location(app.TimeZone()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes(newRateLimiter(cfg.RequestsPerSecond(), cfg.Burst()))
	s.srv = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

func (s *Server) routes(limiter *rateLimiter) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(limiter.Handler)
		r.Use(middleware.RequestSize(maxBodyBytes))

		r.Get("/currencies", s.handleCurrencies)
		r.Get("/coins", s.handleCoins)

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/dashboard", s.handleDashboard)
			r.Get("/settings", s.handleGetSettings)
			r.Put("/settings", s.handlePutSettings)

			r.Post("/expenses", s.handleAddExpense)
			r.Put("/expenses/{id}", s.handleUpdateExpense)
			r.Delete("/expenses/{id}", s.handleDeleteExpense)

			r.Post("/income", s.handleAddIncome)
			r.Delete("/income/{id}", s.handleDeleteIncome)

			r.Post("/categories", s.handleAddCategory)
			r.Put("/categories/{name}", s.handleUpdateCategory)
			r.Delete("/categories/{name}", s.handleDeleteCategory)

			r.Post("/goals", s.handleAddGoal)
			r.Delete("/goals/{id}", s.handleDeleteGoal)
			r.Post("/goals/{id}/contributions", s.handleContribute)

			r.Post("/crypto", s.handleAddHolding)
			r.Put("/crypto/{id}", s.handleUpdateHolding)
			r.Delete("/crypto/{id}", s.handleDeleteHolding)

			r.Post("/chat", s.handleChat)
		})
	})
	return r
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ListenAndServe() error {
	logger.Info("http server listening", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("http server stopping")
	return s.srv.Shutdown(ctx)
}

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
