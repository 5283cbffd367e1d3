package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"port-scanner/config"
	"port-scanner/internal/logger"
	"port-scanner/internal/models"
	"port-scanner/internal/parser"
	"port-scanner/internal/pinger"
	"port-scanner/internal/reporter"
	"port-scanner/internal/scanner"
	"port-scanner/pkg/utils"
)

// Exit codes, one per fatal error kind.
const (
	exitOK            = 0
	exitInvalidConfig = 1
	exitUnresolvable  = 2
	exitInterrupted   = 130
)

const progressInterval = 100 * time.Millisecond

// main is the entry point for the port scanner application.
func main() {
	// Build context that cancels on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return exitInvalidConfig
	}

	appLogger, closeLogFile, err := logger.New(os.Stderr, cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		return exitInvalidConfig
	}
	defer closeLogFile()

	// Set the global logger
	slog.SetDefault(appLogger)

	appLogger.Debug("Configuration loaded.", "ip", cfg.IPInput, "port", cfg.PortInput, "workers", cfg.Workers, "timeout", cfg.Timeout, "ping", cfg.Ping, "dryrun", cfg.DryRun)

	targetIP, err := parser.ResolveTarget(ctx, cfg.IPInput)
	if err != nil {
		if ctx.Err() != nil {
			return interrupted()
		}
		appLogger.Error("Cannot resolve host.", "host", cfg.IPInput, "error", err)
		return exitUnresolvable
	}

	scanCfg := cfg.ScanConfig(targetIP)
	if err := scanCfg.Validate(); err != nil {
		appLogger.Error("Invalid scan configuration.", "error", err)
		return exitInvalidConfig
	}

	if cfg.Ping && !cfg.DryRun {
		if !pinger.IsReachable(ctx, targetIP, cfg.Timeout, appLogger) {
			if ctx.Err() != nil {
				return interrupted()
			}
			appLogger.Error("Host did not answer the reachability check.", "host", cfg.IPInput, "ip", targetIP)
			return exitInvalidConfig
		}
	}

	utils.CheckFileDescriptorLimit(appLogger, cfg.Workers)

	var probe scanner.Scanner = scanner.NewConnectScanner(cfg.Timeout, appLogger)
	if cfg.DryRun {
		probe = &scanner.DryRunScanner{Logger: appLogger}
	}

	opts := []scanner.Option{scanner.WithDelay(cfg.Delay)}
	var progress *reporter.Progress
	if cfg.Progress {
		progress = reporter.NewProgress(os.Stdout)
		opts = append(opts, scanner.WithProgress(scanner.Throttle(progress.Update, progressInterval)))
	}

	fmt.Println("WARNING: Only scan systems you own or have permission to test.")
	fmt.Printf("Scanning %s (%s) ports %d-%d with %d workers, timeout=%v\n\n",
		cfg.IPInput, targetIP, cfg.StartPort, cfg.EndPort, cfg.Workers, cfg.Timeout)

	report, err := scanner.New(probe, appLogger, opts...).Scan(ctx, scanCfg)
	if progress != nil {
		progress.Finish()
	}
	switch {
	case errors.Is(err, models.ErrInvalidConfig):
		appLogger.Error("Invalid scan configuration.", "error", err)
		return exitInvalidConfig
	case errors.Is(err, context.Canceled):
		return interrupted()
	case err != nil:
		appLogger.Error("Scan failed.", "error", err)
		return exitInvalidConfig
	}

	if err := reporter.Print(os.Stdout, report); err != nil {
		appLogger.Error("Failed to print report.", "error", err)
	}

	if cfg.OutputFile != "" {
		if err := reporter.WriteCSV(cfg.OutputFile, report); err != nil {
			appLogger.Error("Failed to write CSV output.", "file", cfg.OutputFile, "error", err)
		} else {
			appLogger.Info("Results saved.", "file", cfg.OutputFile, "open_ports", len(report.OpenPorts))
		}
	}
	return exitOK
}

func interrupted() int {
	fmt.Println("Scan interrupted by user.")
	return exitInterrupted
}
