package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/clients/cache"
	"max.ks1230/financegpt/internal/config"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/logger"
	"max.ks1230/financegpt/internal/model/ledger"
	"max.ks1230/financegpt/internal/model/storage"
)

type cacheClient interface {
	CacheReport(userID int64, period string, report string) error
	GetReport(userID int64, period string) (string, error)
	InvalidateCache(userID int64) error
	CacheCoins(coins []finance.Coin) error
	GetCoins() ([]finance.Coin, error)
}

// settingsStorage keeps user settings and coin prices.
type settingsStorage interface {
	GetUser(ctx context.Context, id int64) (user.Record, error)
	SaveUser(ctx context.Context, id int64, rec user.Record) error
	SavePrices(ctx context.Context, prices finance.Prices) error
	GetPrices(ctx context.Context) (finance.Prices, error)
}

type messageSender interface {
	SendMessage(text string, userID int64) error
}

// logSender stands in for Telegram when no token is configured.
type logSender struct{}

func (logSender) SendMessage(text string, userID int64) error {
	logger.Info("outgoing message", zap.Int64("userID", userID), zap.String("text", text))
	return nil
}

func newCache(cfg *config.MemcachedConfig) cacheClient {
	if !cfg.Enabled() {
		logger.Info("memcached is not configured, caching is off")
		return cache.Nop{}
	}
	mc, err := cache.NewMemcache(cfg)
	if err != nil {
		logger.Warn("memcached is unavailable, caching is off", zap.Error(err))
		return cache.Nop{}
	}
	return mc
}

// newSettingsStorage prefers Postgres and falls back to the in-memory store.
func newSettingsStorage(cfg *config.PostgresConfig, mem *storage.InMemStorage) (settingsStorage, func()) {
	if !cfg.Enabled() {
		logger.Info("postgres is not configured, settings are kept in memory")
		return mem, func() {}
	}
	db, err := storage.NewPostgresStorage(cfg)
	if err != nil {
		logger.Fatal("failed to init postgres:", zap.Error(err))
	}
	return db, func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close postgres", zap.Error(err))
		}
	}
}

// holdingsWatcher triggers a price pull when a user's set of held coins
// changes.
type holdingsWatcher struct {
	mu      sync.Mutex
	seen    map[int64]string
	trigger func()
}

func (w *holdingsWatcher) observe(userID int64, coinIDs []string) {
	key := strings.Join(coinIDs, ",")

	w.mu.Lock()
	if w.seen == nil {
		w.seen = make(map[int64]string)
	}
	changed := w.seen[userID] != key
	w.seen[userID] = key
	trigger := w.trigger
	w.mu.Unlock()

	if changed && trigger != nil {
		trigger()
	}
}

func newLedgerFactory(clock func() time.Time, c cacheClient, watcher *holdingsWatcher) storage.LedgerFactory {
	return func(userID int64) *ledger.Ledger {
		var l *ledger.Ledger
		l = ledger.New(
			ledger.WithClock(clock),
			ledger.WithChangeHook(func() {
				if err := c.InvalidateCache(userID); err != nil {
					logger.Warn("cannot invalidate report cache", zap.Int64("userID", userID), zap.Error(err))
				}
				watcher.observe(userID, l.CoinIDs())
			}),
		)
		return l
	}
}
