package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"argus/internal/adapters/config"
	"argus/internal/adapters/errors/noop"
	"argus/internal/adapters/errors/sentry"
	"argus/internal/adapters/exchanges"
	"argus/internal/adapters/exchanges/binance"
	"argus/internal/adapters/sentiment/alternativeme"
	"argus/internal/api"
	"argus/internal/api/health"
	scanapi "argus/internal/api/scan"
	"argus/internal/services/scanner"
	"argus/internal/workers"
	scanworker "argus/internal/workers/scan"
	"argus/pkg/errors"
	"argus/pkg/logger"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	if err := initLogger(cfg); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	// Initialize error tracker
	errorTracker := initErrorTracker(cfg, log)
	logger.SetErrorTracker(errorTracker)

	// Initialize market data adapters
	source := initMarketData(cfg, log)
	sentimentGauge := alternativeme.New()

	// Initialize scanner service
	scanService := scanner.New(scannerConfig(cfg), source, source, sentimentGauge)

	// Initialize workers
	worker := scanworker.NewWorker(
		scanService,
		scannerOptions(cfg),
		cfg.Worker.ScanInterval,
		cfg.Worker.ScanEnabled,
	)

	scheduler := workers.NewScheduler()
	scheduler.RegisterWorker(worker)

	log.Info("System initialized successfully")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start background workers
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Start API server
	server := initAPIServer(cfg, scanService, worker, log)
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("API server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(ctx, cancel, server, scheduler, errorTracker, log)
}

// loadConfig loads application configuration from environment
func loadConfig() (*config.Config, error) {
	return config.Load()
}

// initLogger initializes structured logging
func initLogger(cfg *config.Config) error {
	return logger.Init(cfg.App.LogLevel, cfg.App.Env)
}

// initErrorTracker initializes error tracking (Sentry or no-op)
func initErrorTracker(cfg *config.Config, log *logger.Logger) errors.Tracker {
	if !cfg.ErrorTracking.Enabled || cfg.ErrorTracking.SentryDSN == "" {
		log.Info("Error tracking disabled")
		return noop.New()
	}

	tracker, err := sentry.New(cfg.ErrorTracking.SentryDSN, cfg.ErrorTracking.Environment)
	if err != nil {
		log.Warnf("Failed to initialize Sentry: %v", err)
		return noop.New()
	}

	log.Info("Error tracking initialized (Sentry)")
	return tracker
}

// initMarketData wires the exchange client into the scanner-facing source
func initMarketData(cfg *config.Config, log *logger.Logger) *exchanges.MarketDataSource {
	client := binance.NewClient(binance.Config{
		BaseURL: cfg.Exchange.BinanceBaseURL,
	})

	log.Infof("Market data source initialized (%s)", client.Name())
	return exchanges.NewMarketDataSource(client)
}

// scannerConfig maps environment configuration onto scanner defaults
func scannerConfig(cfg *config.Config) scanner.Config {
	return scanner.Config{
		QuoteAsset:     cfg.Scanner.QuoteAsset,
		Timeframes:     cfg.Scanner.Timeframes,
		MinVolume:      cfg.Scanner.MinVolume,
		MinPriceChange: cfg.Scanner.MinPriceChange,
		TopN:           cfg.Scanner.TopN,
		CandleLimit:    cfg.Scanner.CandleLimit,
		MaxConcurrency: cfg.Scanner.MaxConcurrency,
	}
}

// scannerOptions builds the recurring scan parameters for the worker
func scannerOptions(cfg *config.Config) scanner.Options {
	return scanner.Options{
		Symbols:       cfg.Scanner.Symbols,
		MinConfidence: cfg.Scanner.MinConfidence,
	}
}

// initAPIServer creates the HTTP server with health and scan endpoints
func initAPIServer(cfg *config.Config, scanService *scanner.Service, worker *scanworker.Worker, log *logger.Logger) *api.Server {
	healthHandler := health.New(log, cfg.App.Name, version)
	scanHandler := scanapi.New(scanService, worker, log)

	return api.NewServer(api.ServerConfig{
		Port:        cfg.API.Port,
		ServiceName: cfg.App.Name,
		Version:     version,
	}, healthHandler, scanHandler, log)
}

// waitForShutdown waits for shutdown signal and performs graceful shutdown
func waitForShutdown(ctx context.Context, cancel context.CancelFunc, server *api.Server, scheduler *workers.Scheduler, errorTracker errors.Tracker, log *logger.Logger) {
	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Shutting down...")

	// Graceful shutdown
	cancel()

	if err := server.Shutdown(context.Background()); err != nil {
		log.Warnf("Failed to shut down API server: %v", err)
	}

	if err := scheduler.Stop(); err != nil {
		log.Warnf("Failed to stop scheduler: %v", err)
	}

	// Flush error tracker
	if errorTracker != nil {
		if err := errorTracker.Flush(ctx); err != nil {
			log.Warnf("Failed to flush error tracker: %v", err)
		}
	}

	log.Info("Shutdown complete")
}
