package scanner

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"port-scanner/internal/models"
)

// Engine runs a batch scan of a port range with a fixed pool of workers.
type Engine struct {
	scan     Scanner
	logger   *slog.Logger
	progress ProgressFunc
	delay    time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithProgress installs an observer notified after every probe.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) {
		e.progress = fn
	}
}

// WithDelay makes each worker pause between probes.
func WithDelay(d time.Duration) Option {
	return func(e *Engine) {
		e.delay = d
	}
}

// New creates an Engine probing with s.
func New(s Scanner, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{scan: s, logger: logger}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Scan validates cfg, probes every port in the range exactly once and
// returns the open ports in ascending order. If ctx is cancelled before all
// workers finish, Scan returns ctx.Err() and no report.
func (e *Engine) Scan(ctx context.Context, cfg models.ScanConfig) (*models.Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ports := models.NewPortSet(cfg.StartPort, cfg.EndPort)
	dist := NewDistributor(ports)
	results := NewResultSet()
	var done atomic.Int64

	workers := min(cfg.Workers, len(ports))
	engineLogger := e.logger.With(slog.String("component", "engine"))
	engineLogger.Info("Starting scan.",
		"target", cfg.Target,
		"start_port", cfg.StartPort,
		"end_port", cfg.EndPort,
		"workers", workers,
		"timeout", cfg.Timeout,
	)

	startTime := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := 1; i <= workers; i++ {
		w := &Worker{
			target:   cfg.Target,
			timeout:  cfg.Timeout,
			delay:    e.delay,
			scan:     e.scan,
			dist:     dist,
			results:  results,
			done:     &done,
			progress: e.progress,
			logger:   e.logger.With(slog.Int("worker_id", i)),
		}
		g.Go(func() error {
			w.Run(gctx)
			return nil
		})
	}

	finished := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-ctx.Done():
		engineLogger.Warn("Scan interrupted. Abandoning in-flight workers.", "checked", done.Load(), "total", len(ports))
		return nil, ctx.Err()
	}
	// Workers also stop early on cancellation, so a cancelled scan that
	// reached the barrier is still incomplete.
	if err := ctx.Err(); err != nil {
		engineLogger.Warn("Scan interrupted.", "checked", done.Load(), "total", len(ports))
		return nil, err
	}

	report := &models.Report{
		Target:    cfg.Target,
		StartPort: cfg.StartPort,
		EndPort:   cfg.EndPort,
		Scanned:   len(ports),
		OpenPorts: results.Sorted(),
		Elapsed:   time.Since(startTime),
	}
	engineLogger.Info("Scan complete.", "open_ports", len(report.OpenPorts), "duration", report.Elapsed)
	return report, nil
}
