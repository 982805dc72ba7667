package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration configuration.
type SentryConfig struct {
	DSN         string `env:"VALIDMSG_SENTRY_DSN"`
	Environment string `env:"VALIDMSG_SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which levels reach Sentry (slog.LevelWarn sends warnings and errors).
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes JSON to w and forwards warnings
// and errors to Sentry. With an empty DSN only w is used.
func NewWithSentry(w io.Writer, level slog.Level, cfg SentryConfig) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	if cfg.DSN == "" {
		return slog.New(handler)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(handler).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(handler)
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(handler, sentryHandler))
}

// Flush waits up to timeout for buffered Sentry events to be sent.
// It is a no-op when Sentry was never initialized.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
