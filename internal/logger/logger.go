// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// ParseLevel maps DEBUG/INFO/WARN/ERROR (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug, true
	case "INFO", "":
		return slog.LevelInfo, true
	case "WARN", "WARNING":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// New creates a logger that writes to w and, when logFilePath is set, to an
// append-only log file. The returned func closes the file.
func New(w io.Writer, logFilePath string, logLevelStr string) (*slog.Logger, func(), error) {
	closeFn := func() {}
	out := w
	if logFilePath != "" {
		logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", logFilePath, err)
		}
		out = io.MultiWriter(w, logFile)
		closeFn = func() { _ = logFile.Close() }
	}

	level, ok := ParseLevel(logLevelStr)

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("2006/01/02 15:04:05"))
				}
			}
			return a
		},
	}

	logger := slog.New(slog.NewTextHandler(out, opts))
	if !ok {
		logger.Warn("Invalid log level specified, defaulting to INFO.", "provided_level", logLevelStr)
	}
	return logger, closeFn, nil
}
