package storage

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
)

var fixedNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func newMockStorage(t *testing.T) (*PostgresStorage, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &PostgresStorage{db: db, now: func() time.Time { return fixedNow }}, mock
}

func Test_OnGetUser_ShouldScanSettings(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT preferred_currency, crypto_currency, playground FROM users WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"preferred_currency", "crypto_currency", "playground"}).AddRow("JPY", "EUR", true))

	rec, err := s.GetUser(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, "JPY", rec.PreferredCurrency("USD"))
	assert.Equal(t, "EUR", rec.CryptoCurrency("USD"))
	assert.True(t, rec.Playground)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_OnGetMissingUser_ShouldReturnEmptyRecord(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery("SELECT preferred_currency, crypto_currency, playground FROM users").
		WillReturnError(sql.ErrNoRows)

	rec, err := s.GetUser(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "USD", rec.PreferredCurrency("USD"))
	assert.False(t, rec.Playground)
}

func Test_OnSaveUser_ShouldUpsert(t *testing.T) {
	s, mock := newMockStorage(t)
	var rec user.Record
	rec.SetPreferredCurrency("EUR")
	rec.SetCryptoCurrency("GBP")
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,preferred_currency,crypto_currency,playground,updated_at) VALUES ($1,$2,$3,$4,$5) ON CONFLICT(id) DO UPDATE")).
		WithArgs(int64(3), "EUR", "GBP", false, fixedNow, "EUR", "GBP", false, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.SaveUser(context.Background(), 3, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_OnSavePrices_ShouldUpsertSortedRows(t *testing.T) {
	s, mock := newMockStorage(t)
	prices := finance.Prices{}
	prices.Set("ethereum", "usd", 3000)
	prices.Set("bitcoin", "usd", 60000)
	prices.Set("bitcoin", "eur", 55000)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO prices (coin_id,currency,price,updated_at) VALUES ($1,$2,$3,$4),($5,$6,$7,$8),($9,$10,$11,$12) ON CONFLICT(coin_id, currency)")).
		WithArgs(
			"bitcoin", "eur", 55000.0, fixedNow,
			"bitcoin", "usd", 60000.0, fixedNow,
			"ethereum", "usd", 3000.0, fixedNow,
		).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, s.SavePrices(context.Background(), prices))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_OnSaveEmptyPrices_ShouldNotQuery(t *testing.T) {
	s, mock := newMockStorage(t)

	require.NoError(t, s.SavePrices(context.Background(), finance.Prices{}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_OnGetPrices_ShouldBuildNestedMap(t *testing.T) {
	s, mock := newMockStorage(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT coin_id, currency, price FROM prices")).
		WillReturnRows(sqlmock.NewRows([]string{"coin_id", "currency", "price"}).
			AddRow("bitcoin", "usd", 60000.0).
			AddRow("bitcoin", "eur", 55000.0))

	prices, err := s.GetPrices(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 55000.0, prices.Price("bitcoin", "EUR"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
