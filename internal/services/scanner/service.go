package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"argus/internal/domain/market_data"
	"argus/internal/domain/scan"
	"argus/internal/metrics"
	"argus/internal/tools/indicators"
	"argus/pkg/errors"
	"argus/pkg/logger"
)

// TickerSource returns 24h ticker snapshots. With an explicit symbol list it
// returns snapshots for exactly those symbols; with none it returns the whole
// market.
type TickerSource interface {
	GetTickers(ctx context.Context, symbols []string) ([]market_data.TickerSnapshot, error)
}

// CandleSource returns an OHLCV series for (symbol, timeframe), oldest first,
// at most limit candles.
type CandleSource interface {
	GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]market_data.Candle, error)
}

// SentimentGauge returns a market-mood index in [0,100].
type SentimentGauge interface {
	Index(ctx context.Context) (int, error)
}

// neutralSentiment substitutes for the gauge when it fails; a scan never
// fails on this non-critical input.
const neutralSentiment = 50

// historyWindow is how many trailing candles ride along on an opportunity
// for chart rendering.
const historyWindow = 50

// Options are the caller-supplied scan parameters. Zero values fall back to
// the service defaults.
type Options struct {
	Symbols        []string
	Timeframes     []string
	MinVolume      float64
	MinPriceChange float64
	TopN           int
	MinConfidence  int
}

// Config holds the service defaults.
type Config struct {
	QuoteAsset     string
	Timeframes     []string
	MinVolume      float64
	MinPriceChange float64
	TopN           int
	CandleLimit    int
	MaxConcurrency int
}

// DefaultConfig returns the stock scanner configuration.
func DefaultConfig() Config {
	return Config{
		QuoteAsset:     "USDT",
		Timeframes:     []string{"15m", "1h", "4h"},
		MinVolume:      1_000_000,
		MinPriceChange: 1.5,
		TopN:           50,
		CandleLimit:    100,
		MaxConcurrency: 10,
	}
}

// Service runs market scans: discovers a symbol universe, analyzes each
// symbol across timeframes and ranks the resulting opportunities.
type Service struct {
	cfg       Config
	tickers   TickerSource
	candles   CandleSource
	sentiment SentimentGauge
	log       *logger.Logger
}

// New creates a scanner service.
func New(cfg Config, tickers TickerSource, candles CandleSource, sentiment SentimentGauge) *Service {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultConfig().MaxConcurrency
	}
	if cfg.CandleLimit <= 0 {
		cfg.CandleLimit = DefaultConfig().CandleLimit
	}
	return &Service{
		cfg:       cfg,
		tickers:   tickers,
		candles:   candles,
		sentiment: sentiment,
		log:       logger.Get().With("component", "scanner"),
	}
}

// Scan performs one full market scan. It never returns an error: a failure to
// build the ticker universe produces a failure envelope, everything else
// degrades locally per symbol or timeframe.
func (s *Service) Scan(ctx context.Context, opts Options) *scan.Result {
	start := time.Now()
	scanID := uuid.New()
	log := s.log.With("scan_id", scanID.String())

	universe, err := s.buildUniverse(ctx, opts)
	if err != nil {
		log.Error("Failed to build ticker universe", "error", err)
		metrics.RecordScan(time.Since(start), 0, err)
		return failureResult(scanID, err, time.Since(start))
	}

	fearGreed := s.fetchSentiment(ctx, log)

	log.Info("Scanning universe",
		"symbols", len(universe),
		"timeframes", s.timeframes(opts),
		"fear_greed", fearGreed,
	)

	opportunities := s.scanUniverse(ctx, log, universe, opts, fearGreed)

	if minConfidence := opts.MinConfidence; minConfidence > 0 {
		filtered := opportunities[:0]
		for _, op := range opportunities {
			if op.StrengthScore >= minConfidence {
				filtered = append(filtered, op)
			}
		}
		opportunities = filtered
	}

	scan.SortOpportunities(opportunities)

	platinum, gold, silver := scan.CountByRank(opportunities)
	duration := time.Since(start)

	log.Info("Scan complete",
		"processed", len(universe),
		"opportunities", len(opportunities),
		"platinum", platinum,
		"gold", gold,
		"silver", silver,
		"duration", duration,
	)
	metrics.RecordScan(duration, len(opportunities), nil)

	return &scan.Result{
		ScanID:        scanID,
		Success:       true,
		Opportunities: opportunities,
		Statistics: scan.Statistics{
			TotalProcessed:     len(universe),
			TotalOpportunities: len(opportunities),
			Platinum:           platinum,
			Gold:               gold,
			Silver:             silver,
			ScanTimeMs:         duration.Milliseconds(),
			FearGreedIndex:     fearGreed,
		},
		Timestamp: time.Now().UTC(),
	}
}

// buildUniverse resolves the symbol universe: the caller's explicit list if
// given, otherwise auto-discovery over the whole market. A ticker source
// failure here is fatal for the scan.
func (s *Service) buildUniverse(ctx context.Context, opts Options) ([]market_data.TickerSnapshot, error) {
	if len(opts.Symbols) > 0 {
		tickers, err := s.tickers.GetTickers(ctx, opts.Symbols)
		if err != nil {
			return nil, errors.Wrap(errors.ErrUniverseUnavailable, err.Error())
		}
		return tickers, nil
	}

	tickers, err := s.tickers.GetTickers(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrUniverseUnavailable, err.Error())
	}

	filter := UniverseFilter{
		QuoteAsset:        s.cfg.QuoteAsset,
		MinQuoteVolume:    s.cfg.MinVolume,
		MinPriceChangePct: s.cfg.MinPriceChange,
		TopN:              s.cfg.TopN,
	}
	if opts.MinVolume > 0 {
		filter.MinQuoteVolume = opts.MinVolume
	}
	if opts.MinPriceChange > 0 {
		filter.MinPriceChangePct = opts.MinPriceChange
	}
	if opts.TopN > 0 {
		filter.TopN = opts.TopN
	}

	qualified := QualifyTickers(tickers, filter)
	if len(qualified) > 0 {
		top := qualified[0]
		s.log.Debug("Universe qualified",
			"count", len(qualified),
			"top_symbol", top.Symbol,
			"top_volume", humanize.Comma(int64(top.QuoteVolume)),
		)
	}
	return qualified, nil
}

// fetchSentiment retrieves the scan-wide sentiment index, substituting the
// neutral default on failure.
func (s *Service) fetchSentiment(ctx context.Context, log *logger.Logger) int {
	index, err := s.sentiment.Index(ctx)
	if err != nil {
		log.Warn("Sentiment gauge unavailable, using neutral default",
			"error", err,
			"default", neutralSentiment,
		)
		return neutralSentiment
	}
	return index
}

// scanUniverse fans out one task per symbol, bounded by a semaphore, and
// collects the completed opportunities. Completion order is unspecified; the
// caller sorts.
func (s *Service) scanUniverse(
	ctx context.Context,
	log *logger.Logger,
	universe []market_data.TickerSnapshot,
	opts Options,
	fearGreed int,
) []scan.MarketOpportunity {
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		collected = make([]scan.MarketOpportunity, 0, len(universe))
	)
	semaphore := make(chan struct{}, s.cfg.MaxConcurrency)

	for _, ticker := range universe {
		wg.Add(1)
		go func(t market_data.TickerSnapshot) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if op := s.scanSymbol(ctx, log, t, opts, fearGreed); op != nil {
				mu.Lock()
				collected = append(collected, *op)
				mu.Unlock()
			}
		}(ticker)
	}

	wg.Wait()
	return collected
}

// scanSymbol analyzes one symbol across all configured timeframes and ranks
// the per-timeframe signals into at most one opportunity. Any per-timeframe
// fetch failure or short series degrades to "no signal for that timeframe".
func (s *Service) scanSymbol(
	ctx context.Context,
	log *logger.Logger,
	ticker market_data.TickerSnapshot,
	opts Options,
	fearGreed int,
) *scan.MarketOpportunity {
	timeframes := s.timeframes(opts)
	signals := make(map[string]*scan.TimeframeSignal, len(timeframes))

	for _, tf := range timeframes {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		candles, err := s.candles.GetCandles(ctx, ticker.Symbol, tf, s.cfg.CandleLimit)
		if err != nil {
			log.Debug("Candle fetch failed, skipping timeframe",
				"symbol", ticker.Symbol,
				"timeframe", tf,
				"error", err,
			)
			continue
		}
		if len(candles) < indicators.MinAnalyzableCandles {
			continue
		}

		snapshot := indicators.Analyze(candles)
		history := candles
		if len(history) > historyWindow {
			history = history[len(history)-historyWindow:]
		}

		if sig := GenerateSignal(snapshot, fearGreed, ticker.LastPrice, history); sig != nil {
			signals[tf] = sig
		}
	}

	op := RankSignals(signals, timeframes)
	if op == nil {
		return nil
	}

	op.Symbol = DisplaySymbol(ticker.Symbol, s.cfg.QuoteAsset)
	op.Volume24h = ticker.QuoteVolume
	op.PriceChange24h = ticker.PriceChangePercent
	return op
}

func (s *Service) timeframes(opts Options) []string {
	if len(opts.Timeframes) > 0 {
		return opts.Timeframes
	}
	return s.cfg.Timeframes
}

func failureResult(scanID uuid.UUID, err error, elapsed time.Duration) *scan.Result {
	return &scan.Result{
		ScanID:        scanID,
		Success:       false,
		Error:         err.Error(),
		Opportunities: []scan.MarketOpportunity{},
		Statistics: scan.Statistics{
			ScanTimeMs:     elapsed.Milliseconds(),
			FearGreedIndex: neutralSentiment,
		},
		Timestamp: time.Now().UTC(),
	}
}
