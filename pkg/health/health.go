package health

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultTimeout = 5 * time.Second

	// StatusHealthy indicates all checks passed.
	StatusHealthy = "healthy"
	// StatusUnhealthy indicates one or more checks failed.
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports a dependency's health. A nil error means healthy.
// Checks must return once ctx is done: Run stops waiting at the timeout,
// but a check that ignores ctx keeps its goroutine alive until it returns.
type CheckFunc func(ctx context.Context) error

// Checks is a map of named health check functions.
type Checks map[string]CheckFunc

// Response represents a health check response.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check represents the status of a single health check.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type config struct {
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures health check behavior.
type Option func(*config)

// WithTimeout sets the timeout shared by all checks.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger for failed checks.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Run executes checks concurrently and aggregates the results.
// Checks that outlive the timeout are reported with ErrCheckTimeout.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	cfg := &config{timeout: defaultTimeout, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(checks) == 0 {
		return &Response{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		g       errgroup.Group
		results = make(map[string]Check, len(checks))
	)

	for name, check := range checks {
		g.Go(func() error {
			err := runOne(ctx, check)

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				results[name] = Check{Status: StatusHealthy}
				return nil
			}

			results[name] = Check{Status: StatusUnhealthy, Error: err.Error()}
			cfg.logger.WarnContext(ctx, "health check failed",
				slog.String("check", name),
				slog.String("error", err.Error()),
			)
			return errors.Join(ErrCheckFailed, err)
		})
	}

	status := StatusHealthy
	if err := g.Wait(); err != nil {
		status = StatusUnhealthy
	}

	return &Response{Status: status, Checks: results}
}

// runOne runs check, returning ErrCheckTimeout if ctx expires first.
func runOne(ctx context.Context, check CheckFunc) error {
	if check == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- check(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ErrCheckTimeout
	}
}
