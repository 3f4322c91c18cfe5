package services

import (
	"context"
	"log/slog"
	"time"

	"finance-dashboard/internal/models"
)

const (
	// RedactedValue masks free text typed by the user, such as search terms
	RedactedValue = "***REDACTED***"
)

// QueryLogger provides structured logging for query engine events
type QueryLogger struct {
	logger *slog.Logger
}

// NewQueryLogger creates a new query logger
func NewQueryLogger(logger *slog.Logger) QueryLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryLogger{
		logger: logger,
	}
}

// LogRecordsFetched logs a completed record store read
func (ql *QueryLogger) LogRecordsFetched(ctx context.Context, query models.RecordQuery, count int, duration time.Duration) {
	ql.logger.DebugContext(ctx, "records fetched",
		slog.String("event_type", "records_fetched"),
		slog.Any("range", query.Range),
		slog.Int("types", len(query.Types)),
		slog.Int("count", count),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogFetchFailed logs a record store read that failed; the previous records stay in use
func (ql *QueryLogger) LogFetchFailed(ctx context.Context, query models.RecordQuery, err error) {
	ql.logger.WarnContext(ctx, "record fetch failed",
		slog.String("event_type", "records_fetch_failed"),
		slog.Any("range", query.Range),
		slog.String("error", err.Error()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRecomputed logs one view recomputation
func (ql *QueryLogger) LogRecomputed(ctx context.Context, trigger string, total int, granularity models.Granularity, duration time.Duration) {
	ql.logger.DebugContext(ctx, "view recomputed",
		slog.String("event_type", "view_recomputed"),
		slog.String("trigger", trigger),
		slog.Int("total", total),
		slog.String("granularity", string(granularity)),
		slog.Int64("duration_us", duration.Microseconds()),
	)
}

func (ql *QueryLogger) LogSearchScheduled(ctx context.Context, term string, delay time.Duration) {
	ql.logger.DebugContext(ctx, "search scheduled",
		slog.String("event_type", "search_scheduled"),
		slog.String("term", redact(term)),
		slog.Duration("delay", delay),
	)
}

func (ql *QueryLogger) LogSearchApplied(ctx context.Context, term string, matches int) {
	ql.logger.InfoContext(ctx, "search applied",
		slog.String("event_type", "search_applied"),
		slog.String("term", redact(term)),
		slog.Int("matches", matches),
	)
}

func (ql *QueryLogger) LogSessionCreated(ctx context.Context, sessionID string) {
	ql.logger.InfoContext(ctx, "query session created",
		slog.String("event_type", "session_created"),
		slog.String("session_id", sessionID),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (ql *QueryLogger) LogSessionClosed(ctx context.Context, sessionID string, reason string) {
	ql.logger.InfoContext(ctx, "query session closed",
		slog.String("event_type", "session_closed"),
		slog.String("session_id", sessionID),
		slog.String("reason", reason),
	)
}

func redact(term string) string {
	if term == "" {
		return ""
	}
	return RedactedValue
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(RequestIDContextKey).(string); ok {
		return requestID
	}
	return ""
}
