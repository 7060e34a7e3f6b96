package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	configFile    = "data/config.yaml"
	configFileEnv = "CONFIG_FILE"
)

// Secrets are usually kept out of the YAML file. A non-empty variable
// overrides the value from the file.
const (
	telegramTokenEnv    = "TELEGRAM_TOKEN"
	anthropicKeyEnv     = "ANTHROPIC_API_KEY"
	coinGeckoKeyEnv     = "COINGECKO_API_KEY"
	postgresPasswordEnv = "POSTGRES_PASSWORD"
)

type config struct {
	Telegram  TelegramConfig  `yaml:"telegram"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
	App       AppConfig       `yaml:"app"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	HTTP      HTTPConfig      `yaml:"http"`
	GRPC      GRPCConfig      `yaml:"grpc"`
	Jaeger    JaegerConfig    `yaml:"jaeger"`
}

type Service struct {
	config config
}

func New() (*Service, error) {
	path := os.Getenv(configFileEnv)
	if path == "" {
		path = configFile
	}

	rawYAML, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	return Parse(rawYAML)
}

// Parse builds the config from raw YAML and fills in defaults.
func Parse(rawYAML []byte) (*Service, error) {
	s := &Service{}
	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}
	s.applyEnv()
	s.config.App.applyDefaults()
	if err = s.config.App.resolveLocation(); err != nil {
		return nil, errors.Wrap(err, "resolving time zone")
	}
	s.config.Anthropic.applyDefaults()
	s.config.CoinGecko.applyDefaults()
	s.config.HTTP.applyDefaults()
	return s, nil
}

func (s *Service) applyEnv() {
	overrides := map[string]*string{
		telegramTokenEnv:    &s.config.Telegram.ApiToken,
		anthropicKeyEnv:     &s.config.Anthropic.AnthropicApiKey,
		coinGeckoKeyEnv:     &s.config.CoinGecko.CoinGeckoKey,
		postgresPasswordEnv: &s.config.Postgres.Pswd,
	}
	for env, field := range overrides {
		if value := os.Getenv(env); value != "" {
			*field = value
		}
	}
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}

func (s *Service) Anthropic() *AnthropicConfig {
	return &s.config.Anthropic
}

func (s *Service) CoinGecko() *CoinGeckoConfig {
	return &s.config.CoinGecko
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) HTTP() *HTTPConfig {
	return &s.config.HTTP
}

func (s *Service) GRPC() *GRPCConfig {
	return &s.config.GRPC
}

func (s *Service) Jaeger() *JaegerConfig {
	return &s.config.Jaeger
}
