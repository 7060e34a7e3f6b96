package config

const defaultCoinGeckoURL = "https://api.coingecko.com/api/v3"

type CoinGeckoConfig struct {
	URL           string `yaml:"base-url"`
	CoinGeckoKey  string `yaml:"api-key"`
	TimeoutMillis int64  `yaml:"timeout-ms"`
}

func (c *CoinGeckoConfig) applyDefaults() {
	if c.URL == "" {
		c.URL = defaultCoinGeckoURL
	}
	if c.TimeoutMillis <= 0 {
		c.TimeoutMillis = 10000
	}
}

func (c *CoinGeckoConfig) BaseURL() string {
	return c.URL
}

func (c *CoinGeckoConfig) ApiKey() string {
	return c.CoinGeckoKey
}

func (c *CoinGeckoConfig) TimeoutMs() int64 {
	return c.TimeoutMillis
}
