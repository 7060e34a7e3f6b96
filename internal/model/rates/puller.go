package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/logger"
)

type pricesStorage interface {
	SavePrices(ctx context.Context, prices finance.Prices) error
}

type pricesProvider interface {
	GetPrices(ctx context.Context, coinIDs []string, vsCurrencies []string) (finance.Prices, error)
}

type holdingsSource interface {
	HeldCoinIDs(ctx context.Context) []string
}

type config interface {
	PullingDelayMinutes() int64
}

// Puller keeps crypto prices of every held coin fresh in all supported
// currencies.
type Puller struct {
	storage      pricesStorage
	provider     pricesProvider
	holdings     holdingsSource
	pullingDelay int64
	trigger      chan struct{}
}

func NewPuller(storage pricesStorage, provider pricesProvider, holdings holdingsSource, config config) *Puller {
	return &Puller{
		storage:      storage,
		provider:     provider,
		holdings:     holdings,
		pullingDelay: config.PullingDelayMinutes(),
		trigger:      make(chan struct{}, 1),
	}
}

// Trigger requests a pull without waiting for the next tick. It never blocks.
func (p *Puller) Trigger() {
	select {
	case p.trigger <- struct{}{}:
	default:
	}
}

func (p *Puller) Pull(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(p.pullingDelay) * time.Minute)
	defer ticker.Stop()
	p.Trigger()

	logger.Info("Start pulling prices")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling prices")
			return
		case <-p.trigger:
			p.PullOnce(ctx)
		case <-ticker.C:
			p.PullOnce(ctx)
		}
	}
}

func (p *Puller) PullOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "pullPrices")
	defer span.Finish()

	coinIDs := p.holdings.HeldCoinIDs(ctx)
	if len(coinIDs) == 0 {
		logger.Debug("no holdings, skip pulling prices")
		return
	}
	span.SetTag("coins", len(coinIDs))
	logger.Info("Pulling current prices...", zap.Strings("coins", coinIDs))

	prices, err := p.provider.GetPrices(ctx, coinIDs, currency.Codes())
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot get prices", zap.Error(err))
		return
	}

	if err = p.storage.SavePrices(ctx, prices); err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to save prices", zap.Error(err))
		return
	}
	logger.Info("Successfully pulled current prices", zap.Int("coins", len(prices)))
}
