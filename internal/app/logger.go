package app

import (
	"errors"
	"io"
	"log/slog"
)

// ParseLevel maps a configuration string onto a slog level. The CLI calls it
// to reject bad -log-level values before an App is ever constructed.
func ParseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
}

// newLogger builds the App's isolated logger from its config. It does not
// touch the global logger. Logs go to errW; stdout is reserved for product
// output such as rendered snapshots.
func newLogger(config *Config, errW io.Writer) *slog.Logger {
	level, err := ParseLevel(config.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if config.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(errW, opts))
	}
	return slog.New(slog.NewJSONHandler(errW, opts))
}
