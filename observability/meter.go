package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/commons/config"
	"github.com/kbukum/commons/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name" validate:"required"`
	// ServiceVersion is the version of the service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint" validate:"required"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval" validate:"gte=0"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// Validate validates the meter configuration.
func (c *MeterConfig) Validate() error {
	return config.Validate(c)
}

// InitMeter initializes the OpenTelemetry meter provider and installs it
// globally. The caller shuts the returned provider down on exit.
func InitMeter(ctx context.Context, cfg MeterConfig) (*sdkmetric.MeterProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if cfg.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(cfg.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Get(logger.ComponentObservability).Info("meter initialized", logger.Fields(
		"service", cfg.ServiceName,
		"endpoint", cfg.Endpoint,
		"interval", cfg.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metric instrument names.
const (
	MetricFoldTotal      = "fold.total"
	MetricFoldDuration   = "fold.duration"
	MetricFoldPartitions = "fold.partitions"
	MetricConflictTotal  = "fold.conflict.total"
)

// FoldMetrics holds the instruments recorded for every fold run.
type FoldMetrics struct {
	runTotal       metric.Int64Counter
	runDuration    metric.Float64Histogram
	partitionTotal metric.Int64Counter
	conflictTotal  metric.Int64Counter
}

// NewFoldMetrics creates fold instruments on the given meter.
func NewFoldMetrics(meter metric.Meter) (*FoldMetrics, error) {
	runTotal, err := meter.Int64Counter(MetricFoldTotal,
		metric.WithDescription("Total number of fold runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFoldTotal, err)
	}

	runDuration, err := meter.Float64Histogram(MetricFoldDuration,
		metric.WithDescription("Duration of fold runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricFoldDuration, err)
	}

	partitionTotal, err := meter.Int64Counter(MetricFoldPartitions,
		metric.WithDescription("Total number of partitions folded"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFoldPartitions, err)
	}

	conflictTotal, err := meter.Int64Counter(MetricConflictTotal,
		metric.WithDescription("Fold runs that failed on colliding elements, by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricConflictTotal, err)
	}

	return &FoldMetrics{
		runTotal:       runTotal,
		runDuration:    runDuration,
		partitionTotal: partitionTotal,
		conflictTotal:  conflictTotal,
	}, nil
}

// RecordRun records a finished fold run.
func (m *FoldMetrics) RecordRun(ctx context.Context, mode, order, status string, partitions int, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("order", order),
	)
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("order", order),
		attribute.String("status", status),
	))
	m.runDuration.Record(ctx, duration.Seconds(), attrs)
	m.partitionTotal.Add(ctx, int64(partitions), attrs)
}

// RecordConflict counts a run that failed on colliding elements.
func (m *FoldMetrics) RecordConflict(ctx context.Context, code string) {
	m.conflictTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
	))
}
