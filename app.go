package translit

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/translit/pkg/cyrillic"
)

// Default server timeouts.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20 // 1MB
	defaultShutdownTimeout   = 30 * time.Second
	defaultAddress           = ":8080"
)

// App serves the transliteration HTTP API.
// App is immutable after creation; all configuration is done via New().
type App struct {
	// Base context for signal handling (defaults to context.Background())
	baseCtx context.Context

	logger *slog.Logger

	// HTTP server
	server      *http.Server
	router      chi.Router
	mu          sync.RWMutex
	listener    net.Listener // set during Run()
	middlewares []func(http.Handler) http.Handler

	// Transliteration
	translitCfg  cyrillic.Config
	translitOpts []cyrillic.Option
	translit     *cyrillic.Transliterator
	bySystem     map[cyrillic.System]*cyrillic.Transliterator

	// Lifecycle
	shutdownTimeout time.Duration
	shutdownHooks   []func(ctx context.Context) error
	done            chan struct{} // for programmatic shutdown via Stop()
}

// New creates a new application with the given options.
//
// Example:
//
//	app := translit.New(
//	    translit.WithLogger(log),
//	    translit.WithAddress(":8080"),
//	    translit.WithTransliterator(cfg.Translit),
//	    translit.WithMiddleware(middlewares.RequestID()),
//	)
func New(opts ...Option) *App {
	router := chi.NewRouter()

	a := &App{
		logger:          slog.New(slog.DiscardHandler),
		router:          router,
		translitCfg:     cyrillic.DefaultConfig(),
		shutdownTimeout: defaultShutdownTimeout,
		done:            make(chan struct{}),
		server: &http.Server{
			Addr:              defaultAddress,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
		},
	}

	for _, opt := range opts {
		opt(a)
	}

	// One transliterator per known system, sharing the configured folding
	// mode, so ?system= overrides need no per-request construction.
	a.translit = cyrillic.New(a.translitCfg, a.translitOpts...)
	a.bySystem = make(map[cyrillic.System]*cyrillic.Transliterator, len(cyrillic.Systems()))
	for _, s := range cyrillic.Systems() {
		cfg := a.translitCfg
		cfg.System = s
		a.bySystem[s] = cyrillic.New(cfg, a.translitOpts...)
	}

	a.setupRoutes()

	return a
}

// Addr returns the server's listening address.
// Returns empty string if the server hasn't started yet.
func (a *App) Addr() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.listener == nil {
		return ""
	}
	return a.listener.Addr().String()
}

// Handler returns the application's HTTP handler with all middleware and
// routes applied.
func (a *App) Handler() http.Handler {
	return a.router
}

// Transliterator returns the transliterator built from the configured system.
func (a *App) Transliterator() *cyrillic.Transliterator {
	return a.translit
}
