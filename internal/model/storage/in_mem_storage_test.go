package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/model/ledger"
)

func Test_OnLedger_ShouldCreateOncePerUser(t *testing.T) {
	created := 0
	var mu sync.Mutex
	s := NewInMemStorage(func(int64) *ledger.Ledger {
		mu.Lock()
		created++
		mu.Unlock()
		return ledger.New()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Ledger(7)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Same(t, s.Ledger(7), s.Ledger(7))
	assert.Equal(t, []int64{7}, s.UserIDs())
}

func Test_OnHeldCoinIDs_ShouldUniteAllUsers(t *testing.T) {
	s := NewInMemStorage(nil)
	_, err := s.Ledger(1).AddHolding(finance.CryptoHolding{CoinID: "solana", Amount: 3})
	require.NoError(t, err)
	_, err = s.Ledger(2).AddHolding(finance.CryptoHolding{CoinID: "bitcoin", Amount: 1})
	require.NoError(t, err)
	_, err = s.Ledger(2).AddHolding(finance.CryptoHolding{CoinID: "solana", Amount: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{"bitcoin", "solana"}, s.HeldCoinIDs(context.Background()))
}

func Test_OnUserSettings_ShouldRoundTrip(t *testing.T) {
	s := NewInMemStorage(nil)
	ctx := context.Background()

	empty, err := s.GetUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "USD", empty.PreferredCurrency("USD"))

	var rec user.Record
	rec.SetPreferredCurrency("EUR")
	rec.Playground = true
	require.NoError(t, s.SaveUser(ctx, 5, rec))

	got, err := s.GetUser(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.PreferredCurrency("USD"))
	assert.True(t, got.Playground)
}

func Test_OnSavePrices_ShouldMergeAndCopy(t *testing.T) {
	s := NewInMemStorage(nil)
	ctx := context.Background()
	first := finance.Prices{}
	first.Set("bitcoin", "usd", 1)
	first.Set("ethereum", "usd", 2)
	second := finance.Prices{}
	second.Set("bitcoin", "usd", 5)

	require.NoError(t, s.SavePrices(ctx, first))
	require.NoError(t, s.SavePrices(ctx, second))

	got, err := s.GetPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Price("bitcoin", "usd"))
	assert.Equal(t, 2.0, got.Price("ethereum", "usd"))

	got.Set("bitcoin", "usd", 0)
	again, _ := s.GetPrices(ctx)
	assert.Equal(t, 5.0, again.Price("bitcoin", "usd"))
}
