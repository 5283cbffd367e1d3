package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"
	"strings"
	"testing"
)

// runWithArgs resets the flag set, runs the CLI with args and returns the
// exit code together with everything written to stdout.
func runWithArgs(t *testing.T, ctx context.Context, args []string) (int, string) {
	t.Helper()
	originalArgs, originalStdout := os.Args, os.Stdout
	defer func() {
		os.Args = originalArgs
		os.Stdout = originalStdout
		flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	}()

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w
	out := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		out <- buf.String()
	}()

	code := run(ctx)
	w.Close()
	stdout := <-out
	r.Close()
	return code, stdout
}

func TestRun_ExitCodes(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		args []string
		want int
	}{
		{
			name: "reversed port range",
			ctx:  context.Background(),
			args: []string{"--ip=127.0.0.1", "--port=10-5", "--progress=false"},
			want: exitInvalidConfig,
		},
		{
			name: "port above 65535",
			ctx:  context.Background(),
			args: []string{"--ip=127.0.0.1", "--port=65530-65536", "--progress=false"},
			want: exitInvalidConfig,
		},
		{
			name: "zero workers",
			ctx:  context.Background(),
			args: []string{"--ip=127.0.0.1", "--worker=0"},
			want: exitInvalidConfig,
		},
		{
			name: "unresolvable host",
			ctx:  context.Background(),
			args: []string{"--ip=host.invalid", "--port=1-3", "--progress=false"},
			want: exitUnresolvable,
		},
		{
			name: "clean loopback scan",
			ctx:  context.Background(),
			args: []string{"--ip=127.0.0.1", "--port=1-3", "--timeout=200", "--progress=false"},
			want: exitOK,
		},
		{
			name: "interrupted scan",
			ctx:  cancelled,
			args: []string{"--ip=127.0.0.1", "--port=1-3", "--progress=false"},
			want: exitInterrupted,
		},
		{
			name: "interrupted during resolution",
			ctx:  cancelled,
			args: []string{"--ip=host.invalid", "--port=1-3", "--progress=false"},
			want: exitInterrupted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := runWithArgs(t, tt.ctx, tt.args)
			if got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}

func TestRun_InvalidRangeFailsBeforeScanning(t *testing.T) {
	code, stdout := runWithArgs(t, context.Background(), []string{"--ip=127.0.0.1", "--port=10-5", "--ping=true", "--progress=false"})
	if code != exitInvalidConfig {
		t.Errorf("run() = %d, want %d", code, exitInvalidConfig)
	}
	if strings.Contains(stdout, "Scanning") {
		t.Errorf("banner printed for an invalid range:\n%s", stdout)
	}
}

func TestRun_DryRunSummary(t *testing.T) {
	code, stdout := runWithArgs(t, context.Background(), []string{"--ip=127.0.0.1", "--port=1-3", "--dryrun=true", "--progress=false"})
	if code != exitOK {
		t.Fatalf("run() = %d, want %d", code, exitOK)
	}
	if !strings.Contains(stdout, "scanned 3 ports") {
		t.Errorf("expected a summary line, got:\n%s", stdout)
	}
}
