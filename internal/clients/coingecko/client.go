package coingecko

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"max.ks1230/financegpt/internal/entity/finance"
	"max.ks1230/financegpt/internal/logger"
)

const (
	pricePath    = "/simple/price"
	marketsPath  = "/coins/markets"
	apiKeyHeader = "x-cg-demo-api-key"

	marketPages   = 2
	coinsPerPage  = 250
	marketsVsCode = "usd"
)

type configGetter interface {
	BaseURL() string
	ApiKey() string
	TimeoutMs() int64
}

type coinsCache interface {
	GetCoins() ([]finance.Coin, error)
	CacheCoins(coins []finance.Coin) error
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	cache   coinsCache

	mu    sync.Mutex
	coins []finance.Coin
}

func New(cfg configGetter, cache coinsCache) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL(), "/"),
		apiKey:  cfg.ApiKey(),
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutMs()) * time.Millisecond},
		cache:   cache,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting "+path)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("coingecko %s: status %d", path, res.StatusCode)
	}
	return body, nil
}

// GetPrices returns the price of every coin in every requested currency
// with one batched call.
func (c *Client) GetPrices(ctx context.Context, coinIDs []string, vsCurrencies []string) (finance.Prices, error) {
	prices := finance.Prices{}
	if len(coinIDs) == 0 || len(vsCurrencies) == 0 {
		return prices, nil
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "coingecko.GetPrices")
	defer span.Finish()

	query := url.Values{}
	query.Set("ids", strings.Join(coinIDs, ","))
	query.Set("vs_currencies", strings.ToLower(strings.Join(vsCurrencies, ",")))

	body, err := c.get(ctx, pricePath, query)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid price response")
	}

	gjson.ParseBytes(body).ForEach(func(coin, byCurrency gjson.Result) bool {
		byCurrency.ForEach(func(code, price gjson.Result) bool {
			if price.Type == gjson.Number {
				prices.Set(coin.String(), code.String(), price.Float())
			}
			return true
		})
		return true
	})
	logger.Debug("new prices from coingecko", zap.Int("coins", len(prices)))
	return prices, nil
}

func (c *Client) fetchMarketsPage(ctx context.Context, page int) ([]finance.Coin, error) {
	query := url.Values{}
	query.Set("vs_currency", marketsVsCode)
	query.Set("order", "market_cap_desc")
	query.Set("per_page", fmt.Sprint(coinsPerPage))
	query.Set("page", fmt.Sprint(page))
	query.Set("sparkline", "false")

	body, err := c.get(ctx, marketsPath, query)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching top coins page %d", page)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.Errorf("invalid markets response on page %d", page)
	}

	var coins []finance.Coin
	for _, item := range gjson.ParseBytes(body).Array() {
		coins = append(coins, finance.Coin{
			ID:     item.Get("id").String(),
			Symbol: item.Get("symbol").String(),
			Name:   item.Get("name").String(),
		})
	}
	return coins, nil
}

// SupportedCoins returns the top coins by market cap. The list is kept in
// process and in the shared cache. Failures give an empty list.
func (c *Client) SupportedCoins(ctx context.Context) []finance.Coin {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.coins != nil {
		return c.coins
	}
	if cached, err := c.cache.GetCoins(); err == nil && len(cached) > 0 {
		c.coins = cached
		return c.coins
	}

	pages := make([][]finance.Coin, marketPages)
	g, gctx := errgroup.WithContext(ctx)
	for i := range pages {
		i := i
		g.Go(func() error {
			coins, err := c.fetchMarketsPage(gctx, i+1)
			pages[i] = coins
			return err
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("error fetching supported coins", zap.Error(err))
		return []finance.Coin{}
	}

	var coins []finance.Coin
	for _, page := range pages {
		coins = append(coins, page...)
	}
	c.coins = coins
	if err := c.cache.CacheCoins(coins); err != nil {
		logger.Warn("caching coins", zap.Error(err))
	}
	return coins
}

// FindCoin looks a coin up by id or symbol among the supported coins.
func (c *Client) FindCoin(ctx context.Context, query string) (finance.Coin, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, coin := range c.SupportedCoins(ctx) {
		if coin.ID == query || strings.ToLower(coin.Symbol) == query {
			return coin, true
		}
	}
	return finance.Coin{}, false
}
