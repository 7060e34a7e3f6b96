package config

const (
	defaultHTTPAddr  = ":8080"
	defaultRateLimit = 20
	defaultBurst     = 40
)

type HTTPConfig struct {
	Address        string `yaml:"addr"`
	RequestsPerSec int    `yaml:"requests-per-second"`
	BurstSize      int    `yaml:"burst"`
}

func (h *HTTPConfig) applyDefaults() {
	if h.Address == "" {
		h.Address = defaultHTTPAddr
	}
	if h.RequestsPerSec <= 0 {
		h.RequestsPerSec = defaultRateLimit
	}
	if h.BurstSize <= 0 {
		h.BurstSize = defaultBurst
	}
}

func (h *HTTPConfig) Addr() string {
	return h.Address
}

func (h *HTTPConfig) RequestsPerSecond() int {
	return h.RequestsPerSec
}

func (h *HTTPConfig) Burst() int {
	return h.BurstSize
}
