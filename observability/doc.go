// Package observability provides OpenTelemetry tracing and metrics for
// reductions run by the pipeline package.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("reporter"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("reporter"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewFoldMetrics(observability.Meter("reporter"))
//
// Each fold is tracked by a FoldRun, which opens a "fold.collect" span and
// records run, partition and conflict metrics when it ends.
package observability
