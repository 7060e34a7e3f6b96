package config

const (
	defaultAnthropicModel     = "claude-3-5-haiku-latest"
	defaultAnthropicMaxTokens = 1024
)

type AnthropicConfig struct {
	AnthropicApiKey string `yaml:"api-key"`
	ModelName       string `yaml:"model"`
	Tokens          int64  `yaml:"max-tokens"`
	URL             string `yaml:"base-url"`
}

func (a *AnthropicConfig) applyDefaults() {
	if a.ModelName == "" {
		a.ModelName = defaultAnthropicModel
	}
	if a.Tokens <= 0 {
		a.Tokens = defaultAnthropicMaxTokens
	}
}

func (a *AnthropicConfig) ApiKey() string {
	return a.AnthropicApiKey
}

func (a *AnthropicConfig) Model() string {
	return a.ModelName
}

func (a *AnthropicConfig) MaxTokens() int64 {
	return a.Tokens
}

func (a *AnthropicConfig) BaseURL() string {
	return a.URL
}
