package logger

import (
	"log/slog"
	"os"
)

// New creates a JSON slog.Logger tagged with the service name. Level
// defaults to info; LOG_LEVEL=debug enables verbose output.
func New() *slog.Logger {
	level := slog.LevelInfo
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(v)); err == nil {
			level = parsed
		}
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("service", "retailhub"))
}
