package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// Timeout returns middleware that bounds each request's context by timeout.
// A handler that returns after the deadline without writing a response
// results in 503 with a JSON error body. Long operations should watch
// ctx.Done().
func Timeout(timeout time.Duration, log *slog.Logger) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{ResponseWriter: w}
			next.ServeHTTP(tw, r.WithContext(ctx))

			if errors.Is(ctx.Err(), context.DeadlineExceeded) && !tw.wroteHeader {
				log.WarnContext(ctx, "request timeout", slog.String("timeout", timeout.String()))
				writeError(w, http.StatusServiceUnavailable, "request timeout")
			}
		})
	}
}

// timeoutWriter records whether the wrapped handler has started a response.
type timeoutWriter struct {
	http.ResponseWriter
	wroteHeader bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
