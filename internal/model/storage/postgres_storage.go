package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/entity/user"
	"max.ks1230/financegpt/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=disable"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	Host() string
	Username() string
	Password() string
	Database() string
}

// PostgresStorage keeps user settings and crypto prices across restarts.
type PostgresStorage struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = RunMigrations(db); err != nil {
		return nil, err
	}
	return &PostgresStorage{db: db, now: time.Now}, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

func (s *PostgresStorage) GetUser(ctx context.Context, id int64) (user.Record, error) {
	query := psql.Select("preferred_currency", "crypto_currency", "playground").
		From("users").
		Where(sq.Eq{"id": id})

	var res user.Record
	var curr, cryptoCurr string
	err := query.RunWith(s.db).QueryRowContext(ctx).Scan(&curr, &cryptoCurr, &res.Playground)
	if errors.Is(err, sql.ErrNoRows) {
		return user.Record{}, nil
	}
	if err != nil {
		return user.Record{}, errors.Wrap(err, "get user")
	}
	res.SetPreferredCurrency(curr)
	res.SetCryptoCurrency(cryptoCurr)
	return res, nil
}

func (s *PostgresStorage) SaveUser(ctx context.Context, id int64, rec user.Record) error {
	updated := s.now()
	query := psql.Insert("users").
		Columns("id", "preferred_currency", "crypto_currency", "playground", "updated_at").
		Values(id, rec.PreferredCurrency(""), rec.CryptoCurrencyOverride(), rec.Playground, updated).
		Suffix("ON CONFLICT(id) DO UPDATE SET preferred_currency = ?, crypto_currency = ?, playground = ?, updated_at = ?",
			rec.PreferredCurrency(""), rec.CryptoCurrencyOverride(), rec.Playground, updated)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save user")
}

// SavePrices upserts every price in one statement.
func (s *PostgresStorage) SavePrices(ctx context.Context, prices finance.Prices) error {
	coins := make([]string, 0, len(prices))
	for coin := range prices {
		coins = append(coins, coin)
	}
	sort.Strings(coins)

	updated := s.now()
	query := psql.Insert("prices").Columns("coin_id", "currency", "price", "updated_at")
	rows := 0
	for _, coin := range coins {
		codes := make([]string, 0, len(prices[coin]))
		for code := range prices[coin] {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			query = query.Values(coin, code, prices[coin][code], updated)
			rows++
		}
	}
	if rows == 0 {
		return nil
	}
	query = query.Suffix("ON CONFLICT(coin_id, currency) DO UPDATE SET price = EXCLUDED.price, updated_at = EXCLUDED.updated_at")

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "save prices")
}

func (s *PostgresStorage) GetPrices(ctx context.Context) (finance.Prices, error) {
	query := psql.Select("coin_id", "currency", "price").From("prices")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get prices")
	}
	defer func() {
		if rowErr := rows.Close(); rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := finance.Prices{}
	for rows.Next() {
		var coin, code string
		var price float64
		if err = rows.Scan(&coin, &code, &price); err != nil {
			return nil, errors.Wrap(err, "get prices")
		}
		res.Set(coin, code, price)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get prices")
	}
	return res, nil
}
