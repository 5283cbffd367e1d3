package scanner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"port-scanner/internal/models"
)

// Scanner defines the interface for a single-port probe. Implementations
// must honour ctx cancellation and release any connection they open.
type Scanner interface {
	Scan(ctx context.Context, target models.ScanTarget) models.ScanResult
}

// ConnectScanner implements a full TCP three-way handshake scan.
type ConnectScanner struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

// NewConnectScanner creates a new instance of a ConnectScanner.
func NewConnectScanner(timeout time.Duration, logger *slog.Logger) *ConnectScanner {
	return &ConnectScanner{Timeout: timeout, Logger: logger}
}

// Scan performs a TCP connect scan on a single target.
func (s *ConnectScanner) Scan(ctx context.Context, target models.ScanTarget) models.ScanResult {
	startTime := time.Now()
	address := net.JoinHostPort(target.IP, strconv.Itoa(target.Port))

	s.Logger.Debug("Attempting to dial target",
		"scanner", "ConnectScanner",
		"target_ip", target.IP,
		"target_port", target.Port,
		"timeout", s.Timeout,
	)

	dialer := net.Dialer{Timeout: s.Timeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	latency := time.Since(startTime)

	result := models.ScanResult{
		Timestamp: startTime,
		Target:    target,
		Latency:   latency,
	}

	if err != nil {
		result.Error = err
		if isTimeout(err) {
			result.Status = models.StatusFiltered
			s.Logger.Debug("Target determined filtered (timeout)", "scanner", "ConnectScanner", "address", address, "latency_ms", latency.Seconds()*1000)
		} else {
			result.Status = models.StatusClosed
			s.Logger.Debug("Target determined closed (connection error)", "scanner", "ConnectScanner", "address", address, "error", err)
		}
		return result
	}
	if cerr := conn.Close(); cerr != nil {
		s.Logger.Debug("Failed to close connection", "scanner", "ConnectScanner", "address", address, "error", cerr)
	}

	s.Logger.Debug("Successfully dialed target",
		"scanner", "ConnectScanner",
		"local_addr", conn.LocalAddr().String(),
		"target_ip", target.IP,
		"target_port", target.Port,
		"latency_ms", latency.Seconds()*1000,
	)
	result.Status = models.StatusOpen
	return result
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// DryRunScanner never touches the network.
type DryRunScanner struct {
	Logger *slog.Logger
}

func (s *DryRunScanner) Scan(_ context.Context, target models.ScanTarget) models.ScanResult {
	s.Logger.Debug("Dry run for target", "target", fmt.Sprintf("%s:%d", target.IP, target.Port))
	return models.ScanResult{
		Timestamp: time.Now(),
		Target:    target,
		Status:    models.StatusDryRun,
	}
}
