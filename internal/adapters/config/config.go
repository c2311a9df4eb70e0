package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"argus/pkg/errors"
)

type Config struct {
	App           AppConfig
	API           APIConfig
	Exchange      ExchangeConfig
	Scanner       ScannerConfig
	Worker        WorkerConfig
	ErrorTracking ErrorTrackingConfig
}

type AppConfig struct {
	Name     string `envconfig:"APP_NAME" default:"argus"`
	Env      string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type APIConfig struct {
	Port int `envconfig:"API_PORT" default:"8080"`
}

type ExchangeConfig struct {
	// Base URL override is used for testing against a mock exchange.
	BinanceBaseURL string `envconfig:"BINANCE_BASE_URL"`
}

type ScannerConfig struct {
	// Explicit symbol list; empty means auto-discovery over the whole market.
	Symbols []string `envconfig:"SCANNER_SYMBOLS"`

	QuoteAsset     string   `envconfig:"SCANNER_QUOTE_ASSET" default:"USDT"`
	Timeframes     []string `envconfig:"SCANNER_TIMEFRAMES" default:"15m,1h,4h"`
	MinVolume      float64  `envconfig:"SCANNER_MIN_QUOTE_VOLUME" default:"1000000"`
	MinPriceChange float64  `envconfig:"SCANNER_MIN_PRICE_CHANGE_PCT" default:"1.5"`
	TopN           int      `envconfig:"SCANNER_TOP_N" default:"50"`
	MinConfidence  int      `envconfig:"SCANNER_MIN_CONFIDENCE" default:"0"`
	CandleLimit    int      `envconfig:"SCANNER_CANDLE_LIMIT" default:"100"`
	MaxConcurrency int      `envconfig:"SCANNER_MAX_CONCURRENCY" default:"10"`
}

type WorkerConfig struct {
	ScanInterval time.Duration `envconfig:"WORKER_SCAN_INTERVAL" default:"5m"`
	ScanEnabled  bool          `envconfig:"WORKER_SCAN_ENABLED" default:"true"`
}

type ErrorTrackingConfig struct {
	Enabled     bool   `envconfig:"ERROR_TRACKING_ENABLED" default:"false"`
	SentryDSN   string `envconfig:"SENTRY_DSN"`
	Environment string `envconfig:"SENTRY_ENVIRONMENT" default:"production"`
}

// Load reads configuration from environment variables
// It first tries to load .env file (useful for local development)
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to process env config")
	}

	return &cfg, nil
}
