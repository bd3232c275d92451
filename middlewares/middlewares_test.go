package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translit/middlewares"
	"github.com/dmitrymomot/translit/pkg/logger"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates new request ID when not present", func(t *testing.T) {
		t.Parallel()

		var captured string
		h := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured = middlewares.GetRequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, captured)
		assert.Len(t, captured, 36)
		assert.Equal(t, captured, rec.Header().Get("X-Request-ID"))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "corr-123")
		rec := httptest.NewRecorder()
		middlewares.RequestID()(http.HandlerFunc(ok)).ServeHTTP(rec, req)

		assert.Equal(t, "corr-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("custom generator and headers", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.RequestID(
			middlewares.WithRequestIDHeaders("X-Trace"),
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
		)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "ignored")
		rec := httptest.NewRecorder()
		mw(http.HandlerFunc(ok)).ServeHTTP(rec, req)

		assert.Equal(t, "fixed", rec.Header().Get("X-Request-ID"))
	})

	t.Run("missing ID yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, middlewares.GetRequestID(context.Background()))
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, logger.Config{Level: "info", Format: "json"}, middlewares.RequestIDExtractor())

	h := middlewares.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.InfoContext(r.Context(), "inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		h := middlewares.Recover(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("kaboom")
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
		assert.Contains(t, buf.String(), "kaboom")
		assert.Contains(t, buf.String(), "stack=")
	})

	t.Run("stack can be disabled", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(slog.NewTextHandler(&buf, nil))
		h := middlewares.Recover(log, middlewares.WithRecoverDisablePrintStack())(
			http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("quiet") }),
		)

		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotContains(t, buf.String(), "stack=")
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		middlewares.Recover(nil)(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Recover(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))
		assert.Panics(t, func() {
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}

func TestTimeout(t *testing.T) {
	t.Parallel()

	t.Run("slow handler without response", func(t *testing.T) {
		t.Parallel()

		h := middlewares.Timeout(10*time.Millisecond, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":"request timeout"}`, rec.Body.String())
	})

	t.Run("fast handler untouched", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		middlewares.Timeout(time.Second, nil)(http.HandlerFunc(ok)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", rec.Body.String())
	})

	t.Run("handler sees deadline", func(t *testing.T) {
		t.Parallel()

		var hasDeadline bool
		h := middlewares.Timeout(0, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasDeadline = r.Context().Deadline()
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, hasDeadline)
	})
}

func TestLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"success is info", http.StatusOK, "INFO"},
		{"client error is warn", http.StatusBadRequest, "WARN"},
		{"server error is error", http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, nil))
			h := middlewares.Logger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/segments", strings.NewReader("{}")))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, "POST", entry["method"])
			assert.Equal(t, "/v1/segments", entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 4, entry["bytes"])
		})
	}
}
