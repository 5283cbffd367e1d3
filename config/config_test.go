package config

import (
	"errors"
	"flag"
	"os"
	"strings"
	"testing"
	"time"

	"port-scanner/internal/models"
)

func setCommandFlags(args []string) {
	// Reset the flag set to avoid interference between tests
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)
}

func TestLoad(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError) // Reset to default
	}()

	tests := []struct {
		name        string
		args        []string
		expectError bool
		errorMsg    string
		expectedCfg *Config
	}{
		{
			name:        "Invalid Worker Count (zero)",
			args:        []string{"--worker=0"},
			expectError: true,
			errorMsg:    "--worker must be a positive integer",
		},
		{
			name:        "Invalid Worker Count (negative)",
			args:        []string{"--worker=-1"},
			expectError: true,
			errorMsg:    "--worker must be a positive integer",
		},
		{
			name:        "Invalid Timeout",
			args:        []string{"--timeout=0"},
			expectError: true,
			errorMsg:    "--timeout must be a positive number of milliseconds",
		},
		{
			name:        "Negative Delay",
			args:        []string{"--delay=-5"},
			expectError: true,
			errorMsg:    "--delay must not be negative",
		},
		{
			name:        "Unparsable Port Range",
			args:        []string{"--port=ssh"},
			expectError: true,
			errorMsg:    "invalid port range values",
		},
		{
			name: "Default Values",
			args: []string{},
			expectedCfg: &Config{
				IPInput:   "localhost",
				PortInput: "1-1024",
				StartPort: 1,
				EndPort:   1024,
				Workers:   100,
				Timeout:   800 * time.Millisecond,
				Progress:  true,
				LogLevel:  "INFO",
			},
		},
		{
			name: "Custom Values",
			args: []string{
				"--ip=10.0.0.5",
				"--port=8000-8100",
				"--worker=10",
				"--timeout=200",
				"--delay=50",
				"--dryrun=true",
				"--ping=true",
				"--progress=false",
				"--output=scan_out.csv",
				"--logfile=scan.log",
				"--loglevel=DEBUG",
			},
			expectedCfg: &Config{
				IPInput:    "10.0.0.5",
				PortInput:  "8000-8100",
				StartPort:  8000,
				EndPort:    8100,
				Workers:    10,
				Timeout:    200 * time.Millisecond,
				Delay:      50 * time.Millisecond,
				DryRun:     true,
				Ping:       true,
				Progress:   false,
				OutputFile: "scan_out.csv",
				LogFile:    "scan.log",
				LogLevel:   "DEBUG",
			},
		},
		{
			name: "Reversed range is left to the engine",
			args: []string{"--port=10-5"},
			expectedCfg: &Config{
				IPInput:   "localhost",
				PortInput: "10-5",
				StartPort: 10,
				EndPort:   5,
				Workers:   100,
				Timeout:   800 * time.Millisecond,
				Progress:  true,
				LogLevel:  "INFO",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setCommandFlags(tt.args)
			cfg, err := Load()

			if tt.expectError {
				if err == nil {
					t.Fatalf("Expected error but got nil")
				}
				if !errors.Is(err, models.ErrInvalidConfig) {
					t.Errorf("Expected ErrInvalidConfig, got %v", err)
				}
				if !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error message to contain '%s', but got '%s'", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, but got: %v", err)
			}
			if *cfg != *tt.expectedCfg {
				t.Errorf("Load() = %+v, want %+v", *cfg, *tt.expectedCfg)
			}
		})
	}
}

func TestConfig_ScanConfig(t *testing.T) {
	cfg := &Config{StartPort: 20, EndPort: 25, Workers: 4, Timeout: 200 * time.Millisecond}
	got := cfg.ScanConfig("127.0.0.1")
	want := models.ScanConfig{Target: "127.0.0.1", StartPort: 20, EndPort: 25, Workers: 4, Timeout: 200 * time.Millisecond}
	if got != want {
		t.Errorf("ScanConfig() = %+v, want %+v", got, want)
	}
}
