package logger

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type ctxKey int

const (
	logContextKey ctxKey = iota
	correlationKey
)

// Field names used across the canonical log lines.
const (
	FieldRequestID   = "request_id"
	FieldOperation   = "operation"
	FieldProtocol    = "protocol"
	FieldSuccess     = "success"
	FieldRunID       = "run_id"
	FieldTicker      = "ticker"
	FieldCIK         = "cik"
	FieldFilingType  = "filing_type"
	FieldLimit       = "limit"
	FieldAccession   = "accession_number"
	FieldArtifactCnt = "artifact_count"
	FieldPreviousCnt = "previous_artifact_count"
	FieldURL         = "url"
)

// LogContext collects fields while a request or run is in flight. The owner
// emits them once, on a single canonical line, when the unit of work ends.
// A nil *LogContext discards everything.
type LogContext struct {
	mu     sync.Mutex
	fields []zap.Field
}

func NewLogContext() *LogContext {
	return &LogContext{fields: make([]zap.Field, 0, 8)}
}

func (lc *LogContext) AddField(field zap.Field) {
	lc.AddFields(field)
}

func (lc *LogContext) AddFields(fields ...zap.Field) {
	if lc == nil || len(fields) == 0 {
		return
	}
	lc.mu.Lock()
	lc.fields = append(lc.fields, fields...)
	lc.mu.Unlock()
}

// Fields returns a copy of the collected fields.
func (lc *LogContext) Fields() []zap.Field {
	if lc == nil {
		return nil
	}
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return append([]zap.Field(nil), lc.fields...)
}

func WithLogContext(ctx context.Context, lc *LogContext) context.Context {
	return context.WithValue(ctx, logContextKey, lc)
}

func GetLogContext(ctx context.Context) *LogContext {
	if ctx == nil {
		return nil
	}
	lc, _ := ctx.Value(logContextKey).(*LogContext)
	return lc
}

// AddToContext appends fields to the LogContext carried by ctx, if any.
func AddToContext(ctx context.Context, fields ...zap.Field) {
	GetLogContext(ctx).AddFields(fields...)
}

// WithCorrelationID stores the id of the current request or run.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey, id)
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationKey).(string)
	return id
}
