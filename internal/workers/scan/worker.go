package scan

import (
	"context"
	"sync/atomic"
	"time"

	domainscan "argus/internal/domain/scan"
	"argus/internal/services/scanner"
	"argus/internal/workers"
)

// Worker runs a full market scan on an interval and keeps the latest result
// for API consumers. Each scan is independent; nothing is carried over
// between iterations except the cached result.
type Worker struct {
	*workers.BaseWorker
	scanner *scanner.Service
	opts    scanner.Options

	latest atomic.Pointer[domainscan.Result]
}

// NewWorker creates a periodic scan worker.
func NewWorker(svc *scanner.Service, opts scanner.Options, interval time.Duration, enabled bool) *Worker {
	return &Worker{
		BaseWorker: workers.NewBaseWorker("market_scanner", interval, enabled),
		scanner:    svc,
		opts:       opts,
	}
}

// Run executes one scan iteration.
func (w *Worker) Run(ctx context.Context) error {
	start := time.Now()

	result := w.scanner.Scan(ctx, w.opts)
	w.latest.Store(result)

	if !result.Success {
		w.Log().Warn("Scheduled scan failed",
			"error", result.Error,
			"duration", time.Since(start),
		)
		// A failed scan is a degraded iteration, not a worker crash; the
		// failure envelope is still cached for consumers.
		w.RecordRun(time.Since(start))
		return nil
	}

	w.Log().Info("Scheduled scan complete",
		"opportunities", result.Statistics.TotalOpportunities,
		"processed", result.Statistics.TotalProcessed,
		"duration", time.Since(start),
	)
	w.RecordRun(time.Since(start))
	return nil
}

// Latest returns the most recent scan result, or nil if no scan has
// completed yet.
func (w *Worker) Latest() *domainscan.Result {
	return w.latest.Load()
}
