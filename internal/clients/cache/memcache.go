package cache

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/logger"
)

const (
	defaultBase = 10

	coinsKey        = "coins:top"
	reportTTL       = 10 * time.Minute
	coinsTTL        = 24 * time.Hour
	generationStart = "0"
)

var ErrMiss = errors.New("cache miss")

type MemcacheClient struct {
	client *memcache.Client
	now    func() time.Time
}

type config interface {
	Hosts() []string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, now: time.Now}, mc.Ping()
}

func generationKey(userID int64) string {
	return "gen:" + strconv.FormatInt(userID, defaultBase)
}

func reportKey(userID int64, generation, period string) string {
	return "report:" + strconv.FormatInt(userID, defaultBase) + ":" + generation + ":" + period
}

// generation is bumped on every invalidation, so reports cached under an
// older generation are never read again and simply expire.
func (mc *MemcacheClient) generation(userID int64) (string, error) {
	item, err := mc.client.Get(generationKey(userID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return generationStart, nil
	}
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) CacheReport(userID int64, period string, report string) error {
	logger.Info("cache report", zap.Int64("userID", userID), zap.String("period", period))
	gen, err := mc.generation(userID)
	if err != nil {
		return errors.Wrap(err, "reading cache generation")
	}
	return mc.client.Set(&memcache.Item{
		Key:        reportKey(userID, gen, period),
		Value:      []byte(report),
		Expiration: int32(reportTTL.Seconds()),
	})
}

func (mc *MemcacheClient) GetReport(userID int64, period string) (string, error) {
	logger.Info("get report from cache", zap.Int64("userID", userID), zap.String("period", period))
	gen, err := mc.generation(userID)
	if err != nil {
		return "", errors.Wrap(err, "reading cache generation")
	}
	item, err := mc.client.Get(reportKey(userID, gen, period))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(userID int64) error {
	logger.Info("invalidate cache", zap.Int64("userID", userID))
	return mc.client.Set(&memcache.Item{
		Key:   generationKey(userID),
		Value: []byte(strconv.FormatInt(mc.now().UnixNano(), defaultBase)),
	})
}

func (mc *MemcacheClient) CacheCoins(coins []finance.Coin) error {
	raw, err := json.Marshal(coins)
	if err != nil {
		return errors.Wrap(err, "marshalling coins")
	}
	return mc.client.Set(&memcache.Item{
		Key:        coinsKey,
		Value:      raw,
		Expiration: int32(coinsTTL.Seconds()),
	})
}

func (mc *MemcacheClient) GetCoins() ([]finance.Coin, error) {
	item, err := mc.client.Get(coinsKey)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var coins []finance.Coin
	if err = json.Unmarshal(item.Value, &coins); err != nil {
		return nil, errors.Wrap(err, "unmarshalling coins")
	}
	return coins, nil
}
