package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds logger settings.
type Config struct {
	Level       string `env:"LOG_LEVEL" envDefault:"info" yaml:"level"`
	Format      string `env:"LOG_FORMAT" envDefault:"json" yaml:"format"`
	SentryDSN   string `env:"SENTRY_DSN" yaml:"sentry_dsn"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production" yaml:"environment"`
}

// ParseLevel converts a level name (debug, info, warn, error) to slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
	return level, nil
}

// New creates a logger writing to stdout.
// An invalid level falls back to info. When SentryDSN is set, warnings and
// errors are also sent to Sentry; errors create issues.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with a custom destination.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	level, _ := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, FormatText) {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	if cfg.SentryDSN != "" {
		if sh, err := sentryHandler(cfg); err != nil {
			slog.New(handler).Error("failed to initialize sentry", slog.String("error", err.Error()))
		} else {
			handler = fanout{handler, sh}
		}
	}

	return slog.New(NewContextHandler(handler, extractors...))
}

func sentryHandler(cfg Config) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}

	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background()), nil
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
