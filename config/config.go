package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"port-scanner/internal/models"
	"port-scanner/internal/parser"
)

// Config holds all configuration settings for the application.
type Config struct {
	IPInput    string
	PortInput  string
	StartPort  int
	EndPort    int
	Workers    int
	Timeout    time.Duration
	Delay      time.Duration
	DryRun     bool
	Ping       bool
	Progress   bool
	OutputFile string
	LogFile    string
	LogLevel   string
}

// Load parses command-line flags and returns a populated Config struct.
func Load() (*Config, error) {
	ipInput := flag.String("ip", "localhost", "Host name or IP address to scan.")
	portInput := flag.String("port", "1-1024", "Port or inclusive port range (e.g. 22 or 8000-8100).")
	workers := flag.Int("worker", 100, "Number of concurrent workers.")
	timeoutMs := flag.Int("timeout", 800, "Connection timeout in milliseconds.")
	delayMs := flag.Int("delay", 0, "Per-probe delay in milliseconds.")
	dryRun := flag.Bool("dryrun", false, "Perform a dry run without sending any packets.")
	ping := flag.Bool("ping", false, "Check host reachability with an ICMP echo before scanning.")
	progress := flag.Bool("progress", true, "Show a progress line when stdout is a terminal.")
	outputFile := flag.String("output", "", "Optional CSV file to save open ports to.")
	logFile := flag.String("logfile", "", "Optional file to append logs to.")
	logLevel := flag.String("loglevel", "INFO", "Log level (DEBUG, INFO, WARN, ERROR).")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "A concurrent TCP connect port scanner. Only scan systems you own or have permission to test.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *workers <= 0 {
		return nil, fmt.Errorf("%w: --worker must be a positive integer", models.ErrInvalidConfig)
	}
	if *timeoutMs <= 0 {
		return nil, fmt.Errorf("%w: --timeout must be a positive number of milliseconds", models.ErrInvalidConfig)
	}
	if *delayMs < 0 {
		return nil, fmt.Errorf("%w: --delay must not be negative", models.ErrInvalidConfig)
	}
	start, end, err := parser.ParsePortRange(*portInput)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		IPInput:    *ipInput,
		PortInput:  *portInput,
		StartPort:  start,
		EndPort:    end,
		Workers:    *workers,
		Timeout:    time.Duration(*timeoutMs) * time.Millisecond,
		Delay:      time.Duration(*delayMs) * time.Millisecond,
		DryRun:     *dryRun,
		Ping:       *ping,
		Progress:   *progress,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		LogLevel:   *logLevel,
	}

	return cfg, nil
}

// ScanConfig builds the engine input for an already resolved target IP.
func (c *Config) ScanConfig(targetIP string) models.ScanConfig {
	return models.ScanConfig{
		Target:    targetIP,
		StartPort: c.StartPort,
		EndPort:   c.EndPort,
		Workers:   c.Workers,
		Timeout:   c.Timeout,
	}
}
