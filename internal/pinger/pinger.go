package pinger

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-ping/ping"
)

// pingHostFunc is a package-level variable that defaults to the actual Ping function.
var pingHostFunc = Ping

// IsReachable sends a single echo request to host and reports whether it
// answered within timeout.
func IsReachable(ctx context.Context, host string, timeout time.Duration, parentLogger *slog.Logger) bool {
	pingerLogger := parentLogger.With(slog.String("component", "pinger"))
	pingerLogger.Info("Starting reachability check.", "host", host, "timeout", timeout)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if pingHostFunc(pingCtx, host) {
		pingerLogger.Debug("Host is reachable.", "host", host)
		return true
	}
	pingerLogger.Debug("Host is unreachable or timed out.", "host", host)
	return false
}

// Ping returns true if host responds to a single echo request within the
// ctx deadline. It uses unprivileged UDP echo sockets, so on Linux the
// net.ipv4.ping_group_range sysctl must include the current group.
func Ping(ctx context.Context, host string) bool {
	pinger, err := ping.NewPinger(host)
	if err != nil {
		return false
	}
	pinger.Count = 1
	pinger.SetPrivileged(false)
	if deadline, ok := ctx.Deadline(); ok {
		pinger.Timeout = time.Until(deadline)
		if pinger.Timeout <= 0 {
			return false
		}
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			pinger.Stop()
		case <-stop:
		}
	}()

	if err := pinger.Run(); err != nil {
		return false
	}
	return pinger.Statistics().PacketsRecv > 0
}
