package translit

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/translit/pkg/cyrillic"
)

// Option configures the application.
type Option func(*App)

// WithContext sets a custom base context for signal handling.
// Defaults to context.Background() if not set.
func WithContext(ctx context.Context) Option {
	return func(a *App) {
		if ctx != nil {
			a.baseCtx = ctx
		}
	}
}

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithAddress sets the HTTP server address.
// Defaults to ":8080".
func WithAddress(addr string) Option {
	return func(a *App) {
		if addr != "" {
			a.server.Addr = addr
		}
	}
}

// WithShutdownTimeout sets how long Run waits for in-flight requests.
// Defaults to 30 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.shutdownTimeout = d
		}
	}
}

// WithTransliterator sets the default system and folding mode.
// Options are passed to every transliterator the app builds.
func WithTransliterator(cfg cyrillic.Config, opts ...cyrillic.Option) Option {
	return func(a *App) {
		a.translitCfg = cfg
		a.translitOpts = append(a.translitOpts, opts...)
	}
}

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithShutdownHook registers a function run after the server stops.
// Hooks run in registration order.
func WithShutdownHook(fn func(ctx context.Context) error) Option {
	return func(a *App) {
		if fn != nil {
			a.shutdownHooks = append(a.shutdownHooks, fn)
		}
	}
}
