package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"pitstop/config"
	deliverycontext "pitstop/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func lines(buf *bytes.Buffer) []map[string]any {
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		if json.Unmarshal([]byte(line), &record) == nil {
			out = append(out, record)
		}
	}

	return out
}

func TestGormSlogLogger_TraceErrorCarriesRequestID(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	records := lines(buf)
	require.Len(t, records, 1)
	assert.Equal(t, "GORM query failed", records[0]["msg"])
	assert.Equal(t, "req-123", records[0]["request_id"])
	assert.Equal(t, "SELECT 1", records[0]["sql"])
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)

	assert.Empty(t, lines(buf))
}

func TestGormSlogLogger_SlowAndDebugQueries(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now().Add(-time.Second), func() (string, int64) { return "SELECT pg_sleep(1)", 1 }, nil)
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)

	records := lines(buf)
	require.Len(t, records, 1, "fast queries are only logged in debug mode")
	assert.Equal(t, "GORM slow query", records[0]["msg"])

	debugLogger, debugBuf := newBufferedGormLogger(true)
	debugLogger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, nil)
	require.Len(t, lines(debugBuf), 1)
}

func TestGormSlogLogger_PrefersRequestLogger(t *testing.T) {
	l, baseBuf := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewJSONHandler(&reqBuf, nil)).With(slog.String("request_id", "from-request-logger"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Warn(ctx, "careful %d", 1)

	assert.Empty(t, lines(baseBuf))
	records := lines(&reqBuf)
	require.Len(t, records, 1)
	assert.Equal(t, "careful 1", records[0]["message"])
	assert.Equal(t, "from-request-logger", records[0]["request_id"])
}
