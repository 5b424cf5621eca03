package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/commons/collectors"
	"github.com/kbukum/commons/config"
	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/logger"
	"github.com/kbukum/commons/observability"
)

// DefaultPartitionSize is the number of elements per partition when
// FoldConfig.PartitionSize is unset.
const DefaultPartitionSize = 1024

const (
	modeSequential = "sequential"
	modeParallel   = "parallel"
)

// FoldConfig configures ParallelCollect.
type FoldConfig struct {
	// Parallelism is the number of worker goroutines folding partitions.
	Parallelism int `yaml:"parallelism" mapstructure:"parallelism" validate:"gte=1"`
	// PartitionSize is the number of consecutive elements per partition.
	PartitionSize int `yaml:"partition_size" mapstructure:"partition_size" validate:"gte=1"`
}

// DefaultFoldConfig returns one worker per CPU and DefaultPartitionSize.
func DefaultFoldConfig() FoldConfig {
	return FoldConfig{
		Parallelism:   runtime.GOMAXPROCS(0),
		PartitionSize: DefaultPartitionSize,
	}
}

// ApplyDefaults fills unset fields from DefaultFoldConfig.
func (c *FoldConfig) ApplyDefaults() {
	d := DefaultFoldConfig()
	if c.Parallelism == 0 {
		c.Parallelism = d.Parallelism
	}
	if c.PartitionSize == 0 {
		c.PartitionSize = d.PartitionSize
	}
}

// Validate validates the fold configuration.
func (c *FoldConfig) Validate() error {
	return config.Validate(c)
}

// FoldOption customizes a single fold.
type FoldOption func(*foldOptions)

type foldOptions struct {
	log     *logger.Logger
	metrics *observability.FoldMetrics
	runID   string
}

// WithLogger sets the logger used for fold events. The default is the
// "pipeline" logger from the registry.
func WithLogger(l *logger.Logger) FoldOption {
	return func(o *foldOptions) { o.log = l }
}

// WithMetrics records the fold in m.
func WithMetrics(m *observability.FoldMetrics) FoldOption {
	return func(o *foldOptions) { o.metrics = m }
}

// WithRunID sets the run ID instead of generating a random one.
func WithRunID(id string) FoldOption {
	return func(o *foldOptions) { o.runID = id }
}

func newFoldOptions(opts []FoldOption) foldOptions {
	var o foldOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get(logger.ComponentPipeline)
	}
	if o.runID == "" {
		o.runID = uuid.NewString()
	}
	return o
}

// CollectWith folds every value of p with c on the calling goroutine, as a
// single partition.
func CollectWith[E, A, R any](ctx context.Context, p *Pipeline[E], c collectors.Collector[E, A, R], opts ...FoldOption) (R, error) {
	o := newFoldOptions(opts)
	return instrument(ctx, modeSequential, c.Order(), o, nil, func(ctx context.Context) (A, int, error) {
		acc := c.Supply()
		err := ForEach(ctx, p, func(_ context.Context, e E) error {
			return c.Accumulate(acc, e)
		})
		return acc, 1, err
	}, c.Finish)
}

// ParallelCollect folds p with c across cfg.Parallelism workers.
//
// The source is cut into partitions of cfg.PartitionSize consecutive
// elements. Each partition is folded into its own accumulator, and partial
// accumulators are combined as they complete: in partition order when c is
// Ordered, in completion order otherwise. The first error from the source,
// an accumulation, or a combine cancels the remaining work and is returned.
func ParallelCollect[E, A, R any](ctx context.Context, p *Pipeline[E], c collectors.Collector[E, A, R], cfg FoldConfig, opts ...FoldOption) (R, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		var zero R
		return zero, err
	}
	o := newFoldOptions(opts)
	attrs := []attribute.KeyValue{
		attribute.Int(observability.AttrWorkers, cfg.Parallelism),
		attribute.Int(observability.AttrPartitionSize, cfg.PartitionSize),
	}
	return instrument(ctx, modeParallel, c.Order(), o, attrs, func(ctx context.Context) (A, int, error) {
		return forkJoin(ctx, p, c, cfg)
	}, c.Finish)
}

// instrument wraps a fold in a FoldRun span, run-scoped logging and metrics.
func instrument[A, R any](
	ctx context.Context,
	mode string,
	order collectors.Order,
	o foldOptions,
	attrs []attribute.KeyValue,
	fold func(context.Context) (A, int, error),
	finish func(A) (R, error),
) (R, error) {
	run := observability.NewFoldRun(o.runID, mode, order.String(), o.metrics)
	ctx, span := run.Start(ctx, attrs...)
	ctx = logger.ContextWithRunID(ctx, run.RunID)
	log := o.log.WithContext(ctx)

	log.Debug("fold started", logger.Fields(
		logger.FieldOperation, mode,
		logger.FieldOrder, run.Order,
	))

	var result R
	acc, partitions, err := fold(ctx)
	if err == nil {
		result, err = finish(acc)
	}

	status := run.End(ctx, span, partitions, err)
	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldOperation, mode,
		logger.FieldPartitions, partitions,
	), run.Duration())

	switch status {
	case observability.StatusOK:
		log.Debug("fold finished", fields)
		return result, nil
	case observability.StatusConflict:
		appErr, _ := errors.AsAppError(err)
		fields[logger.FieldCode] = string(appErr.Code)
		log.Warn("fold conflict", logger.MergeWithError(fields, err))
	default:
		log.Debug("fold failed", logger.MergeWithError(fields, err))
	}
	var zero R
	return zero, err
}

type partition[E any] struct {
	index int
	items []E
}

type partial[A any] struct {
	index int
	acc   A
	err   error
}

// forkJoin folds the partitions of p on a worker pool and combines the
// partial accumulators. It returns the combined accumulator and the number
// of partitions folded.
func forkJoin[E, A, R any](ctx context.Context, p *Pipeline[E], c collectors.Collector[E, A, R], cfg FoldConfig) (A, int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan partition[E], cfg.Parallelism)
	results := make(chan partial[A], cfg.Parallelism)

	// Producer: the source iterator is pulled from this goroutine only.
	var sourceErr error
	produced := make(chan struct{})
	go func() {
		defer close(produced)
		defer close(jobs)
		it := Chunk(p, cfg.PartitionSize).create(ctx)
		defer it.Close()
		for i := 0; ; i++ {
			items, ok, err := it.Next(ctx)
			if err != nil {
				sourceErr = err
				cancel()
				return
			}
			if !ok {
				return
			}
			select {
			case jobs <- partition[E]{index: i, items: items}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for range cfg.Parallelism {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				r := partial[A]{index: job.index, acc: c.Supply()}
				for _, e := range job.items {
					if r.err = ctx.Err(); r.err != nil {
						break
					}
					if r.err = c.Accumulate(r.acc, e); r.err != nil {
						break
					}
				}
				select {
				case results <- r:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	acc := c.Supply()
	var (
		firstErr error
		folded   int
		next     int
		pending  = make(map[int]A)
	)
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
			cancel()
		}
	}

	for r := range results {
		if firstErr != nil {
			continue
		}
		if r.err != nil {
			fail(r.err)
			continue
		}
		folded++

		if !c.Ordered() {
			var err error
			if acc, err = c.Combine(acc, r.acc); err != nil {
				fail(err)
			}
			continue
		}

		pending[r.index] = r.acc
		for {
			part, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			var err error
			if acc, err = c.Combine(acc, part); err != nil {
				fail(err)
				break
			}
		}
	}
	<-produced

	// A source failure cancels the workers, so their context errors must not
	// mask it.
	if sourceErr != nil {
		return acc, folded, sourceErr
	}
	if firstErr != nil {
		return acc, folded, firstErr
	}
	// Cancellation from the caller can stop the producer without an error.
	if err := ctx.Err(); err != nil {
		return acc, folded, err
	}
	return acc, folded, nil
}
