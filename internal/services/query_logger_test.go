package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*bytes.Buffer, QueryLoggerInterface) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return buf, NewQueryLogger(slog.New(handler))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestQueryLogger_RedactsSearchTerms(t *testing.T) {
	buf, logger := newBufferLogger()

	logger.LogSearchApplied(context.Background(), "joão silva", 3)

	entry := decodeLine(t, buf)
	assert.Equal(t, "search_applied", entry["event_type"])
	assert.Equal(t, RedactedValue, entry["term"])
	assert.NotContains(t, buf.String(), "joão")
}

func TestQueryLogger_EmptyTermIsNotMasked(t *testing.T) {
	buf, logger := newBufferLogger()

	logger.LogSearchApplied(context.Background(), "", 10)

	assert.Equal(t, "", decodeLine(t, buf)["term"])
}

func TestQueryLogger_CarriesRequestID(t *testing.T) {
	buf, logger := newBufferLogger()
	ctx := WithRequestID(context.Background(), "trace-42")

	logger.LogSessionCreated(ctx, "jti-1")

	entry := decodeLine(t, buf)
	assert.Equal(t, "session_created", entry["event_type"])
	assert.Equal(t, "trace-42", entry["request_id"])
	assert.Equal(t, "jti-1", entry["session_id"])
}

func TestNewQueryLogger_NilFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewQueryLogger(nil))
}
