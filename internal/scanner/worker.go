package scanner

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"port-scanner/internal/models"
)

// Worker pulls ports from a shared Distributor, probes each once and
// records the open ones. It stops only when the Distributor is exhausted
// or the context is cancelled.
type Worker struct {
	target   string
	timeout  time.Duration
	delay    time.Duration
	scan     Scanner
	dist     *Distributor
	results  *ResultSet
	done     *atomic.Int64
	progress ProgressFunc
	logger   *slog.Logger
}

// Run executes the claim/probe/record loop.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Debug("Worker started.")
	for {
		if ctx.Err() != nil {
			w.logger.Debug("Shutdown signal received. Exiting.")
			return
		}
		port, ok := w.dist.Claim()
		if !ok {
			w.logger.Debug("Port set exhausted. Shutting down.")
			return
		}

		result := w.probe(ctx, port)
		if result.Status == models.StatusOpen {
			w.results.Add(port)
		}
		w.logger.Debug("Scan result status", "port", port, "status", result.Status, "latency_ms", result.Latency.Seconds()*1000)

		done := int(w.done.Add(1))
		if w.progress != nil {
			w.progress(done, w.dist.Len())
		}

		if w.delay > 0 {
			select {
			case <-time.After(w.delay):
			case <-ctx.Done():
			}
		}
	}
}

// probe bounds a single attempt by the configured timeout regardless of
// how the Scanner handles its own deadlines.
func (w *Worker) probe(ctx context.Context, port int) models.ScanResult {
	pctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	return w.scan.Scan(pctx, models.ScanTarget{IP: w.target, Port: port})
}
