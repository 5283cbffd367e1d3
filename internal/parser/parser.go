package parser

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"

	"port-scanner/internal/models"
)

// lookupIPAddrFunc is a package-level variable so tests can replace DNS.
var lookupIPAddrFunc = net.DefaultResolver.LookupIPAddr

// ParsePortRange parses a single port ("443") or an inclusive range
// ("1-1024"). Only the syntax is checked here; bounds and ordering are
// validated together with the rest of the scan config.
func ParsePortRange(expr string) (start, end int, err error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, 0, fmt.Errorf("%w: empty port range", models.ErrInvalidConfig)
	}

	startStr, endStr, isRange := strings.Cut(expr, "-")
	start, err = strconv.Atoi(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid port range values: %s", models.ErrInvalidConfig, expr)
	}
	if !isRange {
		return start, start, nil
	}
	end, err = strconv.Atoi(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid port range values: %s", models.ErrInvalidConfig, expr)
	}
	return start, end, nil
}

// ResolveTarget turns a host name or IP literal into an IP string,
// preferring IPv4 addresses.
func ResolveTarget(ctx context.Context, host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", fmt.Errorf("%w: empty host", models.ErrUnresolvableTarget)
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.String(), nil
	}

	addrs, err := lookupIPAddrFunc(ctx, host)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", models.ErrUnresolvableTarget, host, err)
	}
	if len(addrs) == 0 {
		return "", fmt.Errorf("%w: %s: no addresses", models.ErrUnresolvableTarget, host)
	}
	for _, addr := range addrs {
		if v4 := addr.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return addrs[0].IP.String(), nil
}
