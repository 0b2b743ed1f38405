package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Backend struct {
		BaseURL          string
		Token            string
		RequestTimeout   time.Duration // таймаут одного запроса, независим от дедлайна сессии
		RateLimiterQPS   int           // скорость пополнения token bucket, токенов/сек
		RateLimiterBurst int           // емкость token bucket
	}

	Wait struct {
		DefaultWait  time.Duration
		Grace        time.Duration
		PollInterval time.Duration
		DeferSeconds int
	}

	Tasks struct {
		AuctionClearEnabled  bool
		AuctionClearInterval time.Duration
	}

	Metrics struct {
		Enabled      bool
		Port         string
		PprofEnabled bool
		PprofPort    string
	}

	Config struct {
		Backend Backend
		Wait    Wait
		Tasks   Tasks
		Metrics Metrics
	}
)

const (
	defaultRequestTimeout = 12 * time.Second
	defaultWait           = 60 * time.Second
	defaultGrace          = 30 * time.Second
	defaultPollInterval   = 3 * time.Second
	defaultClearInterval  = 30 * time.Second
	defaultLimiterQPS     = 10
	defaultLimiterBurst   = 10
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	requestTimeout, err := osGetEnvDuration("BACKEND_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	limiterQPS, err := osGetInt("BACKEND_RATE_LIMIT_QPS", defaultLimiterQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	limiterBurst, err := osGetInt("BACKEND_RATE_LIMIT_BURST", defaultLimiterBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	waitDefault, err := osGetEnvDuration("WAIT_DEFAULT", defaultWait)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	waitGrace, err := osGetEnvDuration("WAIT_GRACE", defaultGrace)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pollInterval, err := osGetEnvDuration("WAIT_POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	deferSeconds, err := osGetInt("WAIT_DEFER_SECONDS", 0)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clearEnabled, err := osGetBool("BACKGROUND_AUCTION_CLEAR_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	clearInterval, err := osGetEnvDuration("BACKGROUND_AUCTION_CLEAR_INTERVAL", defaultClearInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	metricsEnabled, err := osGetBool("METRICS_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Backend: Backend{
			BaseURL:          os.Getenv("BACKEND_BASE_URL"),
			Token:            os.Getenv("BACKEND_TOKEN"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   limiterQPS,
			RateLimiterBurst: limiterBurst,
		},
		Wait: Wait{
			DefaultWait:  waitDefault,
			Grace:        waitGrace,
			PollInterval: pollInterval,
			DeferSeconds: deferSeconds,
		},
		Tasks: Tasks{
			AuctionClearEnabled:  clearEnabled,
			AuctionClearInterval: clearInterval,
		},
		Metrics: Metrics{
			Enabled:      metricsEnabled,
			Port:         os.Getenv("METRICS_PORT"),
			PprofEnabled: pprofEnabled,
			PprofPort:    os.Getenv("PPROF_PORT"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if cfg.Backend.RequestTimeout <= 0 {
		return errors.New("BACKEND_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Backend.RateLimiterQPS <= 0 {
		return errors.New("BACKEND_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Backend.RateLimiterBurst <= 0 {
		return errors.New("BACKEND_RATE_LIMIT_BURST must be positive")
	}

	if cfg.Wait.DefaultWait <= 0 {
		return errors.New("WAIT_DEFAULT must be positive")
	}
	if cfg.Wait.Grace < 0 {
		return errors.New("WAIT_GRACE must not be negative")
	}
	if cfg.Wait.PollInterval <= 0 {
		return errors.New("WAIT_POLL_INTERVAL must be positive")
	}

	if cfg.Tasks.AuctionClearEnabled && cfg.Tasks.AuctionClearInterval <= 0 {
		return errors.New("BACKGROUND_AUCTION_CLEAR_INTERVAL must be positive")
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Port == "" {
		return errors.New("METRICS_PORT is required (set via METRICS_PORT env variable)")
	}
	if cfg.Metrics.PprofEnabled && cfg.Metrics.PprofPort == "" {
		return errors.New("PPROF_PORT is required (set via PPROF_PORT env variable)")
	}

	return nil
}

func osGetInt(s string, fallback int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
