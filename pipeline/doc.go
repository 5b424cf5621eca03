// Package pipeline provides composable, pull-based data pipelines and the
// engine that reduces them with collectors.
//
// Pipelines are lazy: no work happens until values are pulled by a terminal.
// Each stage pulls from the previous stage on demand.
//
// # Operators
//
//   - Map: transform each value
//   - FlatMap: transform each value into multiple values
//   - Filter: keep values matching a predicate
//   - KeyBy: pair each value with a computed key
//   - Concat: join pipelines sequentially
//   - Chunk: group consecutive values into fixed-size slices
//
// # Folds
//
// CollectWith reduces a pipeline with a collectors.Collector on the calling
// goroutine. ParallelCollect cuts the source into partitions, folds them on a
// worker pool and combines the partial accumulators. Ordered collectors are
// combined in partition order, so the result matches a sequential fold;
// unordered collectors are combined as partitions complete.
//
// Every fold gets a run ID, a "fold.collect" span, and optional metrics
// through observability.FoldMetrics.
//
// # Usage
//
//	src := pipeline.FromSlice(orders)
//	paid := pipeline.Filter(src, func(o Order) bool { return o.Paid })
//	byID, err := pipeline.ParallelCollect(ctx, paid,
//	    collectors.ToMap(Order.ID, Order.Total),
//	    pipeline.FoldConfig{Parallelism: 8, PartitionSize: 512})
package pipeline
