package rates

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/entity/currency"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/model/rates/mock"
)

func Test_OnPullOnce_ShouldSaveEveryCurrency(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	prices := finance.Prices{}
	prices.Set("bitcoin", "usd", 100)
	var coinIDs, vsCurrencies []string
	provider := mock.NewPricesProviderMock(m)
	provider.GetPricesMock.
		Inspect(func(_ context.Context, ids []string, vs []string) { coinIDs, vsCurrencies = ids, vs }).
		Return(prices, nil)
	storage := &pricesStorageStub{}

	NewPuller(storage, provider, holdingsStub{"bitcoin", "ethereum"}, delayConfig(5)).PullOnce(context.Background())

	assert.Equal(t, uint64(1), provider.GetPricesAfterCounter())
	assert.Equal(t, []string{"bitcoin", "ethereum"}, coinIDs)
	assert.Equal(t, currency.Codes(), vsCurrencies)
	require.Len(t, storage.saved, 1)
	assert.Equal(t, prices, storage.saved[0])
}

func Test_OnNoHoldings_ShouldSkipProvider(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewPricesProviderMock(m)
	storage := &pricesStorageStub{}

	NewPuller(storage, provider, holdingsStub{}, delayConfig(5)).PullOnce(context.Background())

	assert.Empty(t, storage.saved)
}

func Test_OnProviderError_ShouldKeepPreviousPrices(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewPricesProviderMock(m)
	provider.GetPricesMock.Return(nil, errors.New("429"))
	storage := &pricesStorageStub{}

	NewPuller(storage, provider, holdingsStub{"bitcoin"}, delayConfig(5)).PullOnce(context.Background())

	assert.Empty(t, storage.saved)
}

func Test_OnPull_ShouldPullAtStartAndOnTrigger(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewPricesProviderMock(m)
	provider.GetPricesMock.Return(finance.Prices{}, nil)
	p := NewPuller(&pricesStorageStub{}, provider, holdingsStub{"bitcoin"}, delayConfig(60))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Pull(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return provider.GetPricesAfterCounter() == 1 }, time.Second, 5*time.Millisecond)
	p.Trigger()
	assert.Eventually(t, func() bool { return provider.GetPricesAfterCounter() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	<-done
}
