package rates

import (
	"context"
	"sync"

	"max.ks1230/financegpt/internal/entity/finance"
)

type pricesStorageStub struct {
	mu    sync.Mutex
	saved []finance.Prices
	err   error
}

func (s *pricesStorageStub) SavePrices(_ context.Context, prices finance.Prices) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, prices)
	return s.err
}

type holdingsStub []string

func (h holdingsStub) HeldCoinIDs(context.Context) []string {
	return h
}

type delayConfig int64

func (d delayConfig) PullingDelayMinutes() int64 {
	return int64(d)
}
