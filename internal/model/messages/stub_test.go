package messages

import (
	"context"
	"sync"

	"max.ks1230/financegpt/internal/clients/cache"
	"max.ks1230/financegpt/internal/entity/finance"
)

type coinFinderStub map[string]finance.Coin

func (s coinFinderStub) FindCoin(_ context.Context, query string) (finance.Coin, bool) {
	c, ok := s[query]
	return c, ok
}

type reportCacheStub struct {
	mu      sync.Mutex
	reports map[string]string
}

func newReportCacheStub() *reportCacheStub {
	return &reportCacheStub{reports: make(map[string]string)}
}

func (c *reportCacheStub) CacheReport(_ int64, period string, report string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports[period] = report
	return nil
}

func (c *reportCacheStub) GetReport(_ int64, period string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	report, ok := c.reports[period]
	if !ok {
		return "", cache.ErrMiss
	}
	return report, nil
}

func (c *reportCacheStub) InvalidateCache(int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports = make(map[string]string)
	return nil
}

type configStub struct{}

func (configStub) BaseCurrency() string { return "USD" }

func (configStub) TimeZone() string { return "UTC" }
