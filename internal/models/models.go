package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	MinPort = 1
	MaxPort = 65535
)

var (
	// ErrInvalidConfig is returned before any probe is sent when the scan
	// parameters are out of range.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnresolvableTarget is returned when the host name cannot be turned
	// into an IP address.
	ErrUnresolvableTarget = errors.New("unresolvable target")
)

// ScanTarget represents a single IP:Port combination to be scanned.
type ScanTarget struct {
	IP   string `json:"ip"`
	Port int    `json:"port"`
}

// ScanStatus represents the result of a port scan.
type ScanStatus string

const (
	StatusOpen     ScanStatus = "OPEN"
	StatusClosed   ScanStatus = "CLOSED"
	StatusFiltered ScanStatus = "FILTERED"
	StatusDryRun   ScanStatus = "DRYRUN"
)

// ScanResult holds the outcome of a single port scan attempt.
type ScanResult struct {
	Timestamp time.Time
	Target    ScanTarget
	Status    ScanStatus
	Latency   time.Duration
	Error     error
}

// ScanConfig is the immutable input of a scan.
type ScanConfig struct {
	Target    string
	StartPort int
	EndPort   int
	Workers   int
	Timeout   time.Duration
}

// Validate reports ErrInvalidConfig for out-of-range parameters.
func (c ScanConfig) Validate() error {
	switch {
	case c.StartPort < MinPort:
		return fmt.Errorf("%w: start port %d is below %d", ErrInvalidConfig, c.StartPort, MinPort)
	case c.EndPort > MaxPort:
		return fmt.Errorf("%w: end port %d is above %d", ErrInvalidConfig, c.EndPort, MaxPort)
	case c.StartPort > c.EndPort:
		return fmt.Errorf("%w: start port %d is greater than end port %d", ErrInvalidConfig, c.StartPort, c.EndPort)
	case c.Workers < 1:
		return fmt.Errorf("%w: worker count must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.Timeout)
	}
	return nil
}

// PortSet is an ordered, read-only sequence of distinct ports.
type PortSet []int

// NewPortSet builds the ports start..end inclusive. The range is assumed valid.
func NewPortSet(start, end int) PortSet {
	ports := make(PortSet, 0, end-start+1)
	for p := start; p <= end; p++ {
		ports = append(ports, p)
	}
	return ports
}

// Report is what a completed scan hands to the presentation layer.
type Report struct {
	Target    string
	StartPort int
	EndPort   int
	Scanned   int
	OpenPorts []int
	Elapsed   time.Duration
}

