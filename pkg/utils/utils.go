// pkg/utils/utils.go
package utils

import "log/slog"

// fdSafetyMargin leaves room for stdio, the log file and the resolver.
const fdSafetyMargin = 100

// CheckFileDescriptorLimit warns if the worker count might exceed the open
// file limit. Every worker holds at most one socket at a time.
func CheckFileDescriptorLimit(logger *slog.Logger, workers int) bool {
	limit, ok := openFileLimit()
	if !ok {
		return true
	}
	if exceedsLimit(workers, limit) {
		logger.Warn("Worker count is close to the file descriptor limit.", "workers", workers, "limit", limit)
		return false
	}
	return true
}

func exceedsLimit(workers int, limit uint64) bool {
	if limit <= fdSafetyMargin {
		return true
	}
	return uint64(workers) >= limit-fdSafetyMargin
}
