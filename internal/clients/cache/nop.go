package cache

import "max.ks1230/financegpt/internal/entity/finance"

// Nop is used when memcached is not configured: every read misses.
type Nop struct{}

func (Nop) CacheReport(int64, string, string) error { return nil }

func (Nop) GetReport(int64, string) (string, error) { return "", ErrMiss }

func (Nop) InvalidateCache(int64) error { return nil }

func (Nop) CacheCoins([]finance.Coin) error { return nil }

func (Nop) GetCoins() ([]finance.Coin, error) { return nil, ErrMiss }
