package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/commons/errors"
)

// Fold run statuses.
const (
	StatusOK       = "ok"
	StatusConflict = "conflict"
	StatusError    = "error"
)

// FoldRun holds the observability context of one fold.
type FoldRun struct {
	RunID     string
	Mode      string
	Order     string
	StartTime time.Time
	Metrics   *FoldMetrics
}

// NewFoldRun creates a fold run. If metrics is nil, metric recording is
// skipped.
func NewFoldRun(runID, mode, order string, metrics *FoldMetrics) *FoldRun {
	return &FoldRun{
		RunID:     runID,
		Mode:      mode,
		Order:     order,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type foldRunKey struct{}

// WithFoldRun stores a FoldRun in the context.
func WithFoldRun(ctx context.Context, run *FoldRun) context.Context {
	return context.WithValue(ctx, foldRunKey{}, run)
}

// FoldRunFromContext retrieves the FoldRun from context, or nil.
func FoldRunFromContext(ctx context.Context) *FoldRun {
	if run, ok := ctx.Value(foldRunKey{}).(*FoldRun); ok {
		return run
	}
	return nil
}

// Start opens the fold.collect span and stores the run in the returned
// context.
func (r *FoldRun) Start(ctx context.Context, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := StartSpan(ctx, SpanFoldCollect)
	span.SetAttributes(
		attribute.String(AttrRunID, r.RunID),
		attribute.String(AttrMode, r.Mode),
		attribute.String(AttrOrder, r.Order),
	)
	span.SetAttributes(attrs...)
	return WithFoldRun(ctx, r), span
}

// End closes the span and records the run. It returns the status recorded:
// StatusOK, StatusConflict for colliding elements, or StatusError.
func (r *FoldRun) End(ctx context.Context, span trace.Span, partitions int, err error) string {
	duration := r.Duration()
	status := Status(err)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
		if appErr, ok := errors.AsAppError(err); ok {
			span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
		}
	}
	span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int(AttrPartitions, partitions),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if r.Metrics != nil {
		r.Metrics.RecordRun(ctx, r.Mode, r.Order, status, partitions, duration)
		if status == StatusConflict {
			appErr, _ := errors.AsAppError(err)
			r.Metrics.RecordConflict(ctx, string(appErr.Code))
		}
	}
	return status
}

// Duration returns the elapsed time since the run started.
func (r *FoldRun) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// Status classifies the outcome of a fold.
func Status(err error) string {
	if err == nil {
		return StatusOK
	}
	if appErr, ok := errors.AsAppError(err); ok && errors.IsConflictCode(appErr.Code) {
		return StatusConflict
	}
	return StatusError
}
