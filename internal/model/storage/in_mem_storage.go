package storage

import (
	"context"
	"sort"
	"sync"

	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/model/ledger"
)

// LedgerFactory builds the ledger of a user seen for the first time.
type LedgerFactory func(userID int64) *ledger.Ledger

type InMemStorage struct {
	mu        sync.RWMutex
	users     map[int64]user.Record
	ledgers   map[int64]*ledger.Ledger
	prices    finance.Prices
	newLedger LedgerFactory
}

func NewInMemStorage(newLedger LedgerFactory) *InMemStorage {
	if newLedger == nil {
		newLedger = func(int64) *ledger.Ledger { return ledger.New() }
	}
	return &InMemStorage{
		users:     make(map[int64]user.Record),
		ledgers:   make(map[int64]*ledger.Ledger),
		prices:    finance.Prices{},
		newLedger: newLedger,
	}
}

// Ledger returns the user's ledger, creating it on first use.
func (s *InMemStorage) Ledger(userID int64) *ledger.Ledger {
	s.mu.RLock()
	l, ok := s.ledgers[userID]
	s.mu.RUnlock()
	if ok {
		return l
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.ledgers[userID]; ok {
		return l
	}
	l = s.newLedger(userID)
	s.ledgers[userID] = l
	return l
}

func (s *InMemStorage) UserIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]int64, 0, len(s.ledgers))
	for id := range s.ledgers {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// HeldCoinIDs is the sorted union of coins held by all users.
func (s *InMemStorage) HeldCoinIDs(_ context.Context) []string {
	s.mu.RLock()
	ledgers := make([]*ledger.Ledger, 0, len(s.ledgers))
	for _, l := range s.ledgers {
		ledgers = append(ledgers, l)
	}
	s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, l := range ledgers {
		for _, id := range l.CoinIDs() {
			seen[id] = struct{}{}
		}
	}
	res := make([]string, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Strings(res)
	return res
}

func (s *InMemStorage) GetUser(_ context.Context, id int64) (user.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users[id], nil
}

func (s *InMemStorage) SaveUser(_ context.Context, id int64, rec user.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = rec
	return nil
}

func (s *InMemStorage) SavePrices(_ context.Context, prices finance.Prices) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prices.MergeInto(s.prices)
	return nil
}

func (s *InMemStorage) GetPrices(_ context.Context) (finance.Prices, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prices.Clone(), nil
}
