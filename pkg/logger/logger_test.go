package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/translit/pkg/logger"
)

type ctxKey struct{}

func extractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func TestNewWithWriter(t *testing.T) {
	t.Parallel()

	t.Run("json with extractor", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "info"}, extractor, nil)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc-123")
		log.InfoContext(ctx, "converted", slog.String("system", "iso9"))

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Equal(t, "converted", rec["msg"])
		assert.Equal(t, "iso9", rec["system"])
		assert.Equal(t, "abc-123", rec["request_id"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "warn"})
		log.Info("hidden")
		assert.Empty(t, buf.String())
		log.Warn("shown")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "debug", Format: "TEXT"})
		log.Debug("hello", slog.Int("n", 1))
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "n=1")
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{Level: "loud"})
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("shown")
		assert.NotEmpty(t, buf.String())
	})

	t.Run("attrs and groups keep extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.NewWithWriter(&buf, logger.Config{}, extractor).
			With(slog.String("component", "api")).
			WithGroup("req")

		ctx := context.WithValue(context.Background(), ctxKey{}, "r1")
		log.InfoContext(ctx, "done")
		assert.Contains(t, buf.String(), `"component":"api"`)
		assert.Contains(t, buf.String(), `"request_id":"r1"`)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := logger.ParseLevel(" debug ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = logger.ParseLevel("ERROR")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, level)

	_, err = logger.ParseLevel("verbose")
	require.ErrorIs(t, err, logger.ErrInvalidLevel)
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
