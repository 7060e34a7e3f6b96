package config

import (
	"time"

	"github.com/pkg/errors"
)

const (
	defaultBaseCurrency     = "USD"
	defaultPullingDelay     = 5
	defaultRecentExpenses   = 5
	defaultRequestTimeoutMs = 30000
)

type AppConfig struct {
	BaseCurrencyName        string `yaml:"base-currency"`
	RatePullingDelayMinutes int64  `yaml:"rate-pulling-delay-minutes"`
	RecentExpensesInContext int    `yaml:"recent-expenses-in-context"`
	RequestTimeoutMs        int64  `yaml:"request-timeout-ms"`
	Location                string `yaml:"location"`

	location *time.Location
}

func (s *AppConfig) applyDefaults() {
	if s.BaseCurrencyName == "" {
		s.BaseCurrencyName = defaultBaseCurrency
	}
	if s.RatePullingDelayMinutes <= 0 {
		s.RatePullingDelayMinutes = defaultPullingDelay
	}
	if s.RecentExpensesInContext <= 0 {
		s.RecentExpensesInContext = defaultRecentExpenses
	}
	if s.RequestTimeoutMs <= 0 {
		s.RequestTimeoutMs = defaultRequestTimeoutMs
	}
}

func (s *AppConfig) resolveLocation() error {
	if s.Location == "" {
		s.location = time.Local
		return nil
	}
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return errors.Wrapf(err, "app.location %q", s.Location)
	}
	s.location = loc
	return nil
}

func (s *AppConfig) BaseCurrency() string {
	return s.BaseCurrencyName
}

func (s *AppConfig) PullingDelayMinutes() int64 {
	return s.RatePullingDelayMinutes
}

func (s *AppConfig) RecentExpenses() int {
	return s.RecentExpensesInContext
}

func (s *AppConfig) RequestTimeout() int64 {
	return s.RequestTimeoutMs
}

// TimeZone is the zone used for window boundaries, empty means local.
func (s *AppConfig) TimeZone() string {
	return s.Location
}

// TimeLocation is the zone resolved while parsing, local when unset.
func (s *AppConfig) TimeLocation() *time.Location {
	if s.location == nil {
		return time.Local
	}
	return s.location
}
