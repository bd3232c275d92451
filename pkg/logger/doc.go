// Package logger builds log/slog loggers from configuration.
//
// Loggers write JSON (or text) to stdout at a configurable level, add
// request-scoped attributes through context extractors, and optionally fan
// warnings and errors out to Sentry.
//
// # Basic Usage
//
//	log := logger.New(logger.Config{Level: "debug", Format: "text"})
//	log.Info("converted", slog.String("system", "iso9"))
//
// # Context Extractors
//
// A ContextExtractor pulls an attribute out of the context on every log call:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	}
//
//	log := logger.New(cfg, requestID)
//	log.InfoContext(ctx, "request processed")
//
// NewContextHandler applies the same extraction to any slog.Handler.
//
// # Sentry Integration
//
// When Config.SentryDSN is set, records are written to stdout and to Sentry.
// Errors create issues, warnings are stored as logs. If Sentry fails to
// initialize the logger keeps writing to stdout only.
//
// Libraries that accept an optional logger default to NewNope.
package logger
