package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/clients/cache"
	"max.ks1230/financegpt/internal/entity/finance"
)

type invalidationCounter struct {
	cache.Nop
	invalidated []int64
}

func (c *invalidationCounter) InvalidateCache(userID int64) error {
	c.invalidated = append(c.invalidated, userID)
	return nil
}

func Test_OnLedgerChange_ShouldInvalidateAndTriggerOnHoldingChange(t *testing.T) {
	triggers := 0
	c := &invalidationCounter{}
	watcher := &holdingsWatcher{trigger: func() { triggers++ }}
	l := newLedgerFactory(time.Now, c, watcher)(42)

	_, err := l.AddExpense(finance.Expense{Amount: 5, Category: "Shopping"})
	require.NoError(t, err)
	_, err = l.AddHolding(finance.CryptoHolding{CoinID: "bitcoin", Amount: 1})
	require.NoError(t, err)
	_, err = l.AddExpense(finance.Expense{Amount: 7, Category: "Shopping"})
	require.NoError(t, err)

	assert.Equal(t, []int64{42, 42, 42}, c.invalidated)
	assert.Equal(t, 1, triggers)
}
