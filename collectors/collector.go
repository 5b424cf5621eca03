package collectors

import (
	"iter"

	"github.com/kbukum/commons/errors"
)

// Order declares whether the combine order of a collector affects its result.
type Order int

const (
	// Unordered collectors may combine partial accumulators in any order.
	Unordered Order = iota
	// Ordered collectors must combine partial accumulators left-to-right in
	// the order their partitions occurred in the source.
	Ordered
)

// String returns "ordered" or "unordered".
func (o Order) String() string {
	switch o {
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	default:
		return "invalid"
	}
}

// Collector describes a reduction of elements E into a result R through a
// mutable accumulator A. A is a reference type (a pointer to a builder):
// Accumulate mutates it in place.
type Collector[E, A, R any] struct {
	supplier    func() A
	accumulator func(A, E) error
	combiner    func(A, A) (A, error)
	finisher    func(A) (R, error)
	order       Order
}

// Of builds a collector from its four operations.
// It panics with an UNEXPECTED_BRANCH error if an operation is nil or order is
// not a declared Order.
func Of[E, A, R any](
	supplier func() A,
	accumulator func(A, E) error,
	combiner func(A, A) (A, error),
	finisher func(A) (R, error),
	order Order,
) Collector[E, A, R] {
	if supplier == nil || accumulator == nil || combiner == nil || finisher == nil {
		panic(errors.UnexpectedBranch("collectors: Of called with a nil operation"))
	}
	if order != Ordered && order != Unordered {
		panic(errors.UnexpectedBranch("collectors: Of called with an invalid order"))
	}
	return Collector[E, A, R]{
		supplier:    supplier,
		accumulator: accumulator,
		combiner:    combiner,
		finisher:    finisher,
		order:       order,
	}
}

// Supply creates an empty accumulator.
func (c Collector[E, A, R]) Supply() A { return c.supplier() }

// Accumulate absorbs e into acc.
func (c Collector[E, A, R]) Accumulate(acc A, e E) error { return c.accumulator(acc, e) }

// Combine merges right into left. Both arguments are consumed: neither may be
// used after the call, only the returned accumulator.
func (c Collector[E, A, R]) Combine(left, right A) (A, error) { return c.combiner(left, right) }

// Finish converts acc into the result.
func (c Collector[E, A, R]) Finish(acc A) (R, error) { return c.finisher(acc) }

// Order returns the declared order sensitivity.
func (c Collector[E, A, R]) Order() Order { return c.order }

// Ordered reports whether the collector must be combined in partition order.
func (c Collector[E, A, R]) Ordered() bool { return c.order == Ordered }

// AndThen returns a collector that applies fn to the result of c.
func AndThen[E, A, R, S any](c Collector[E, A, R], fn func(R) (S, error)) Collector[E, A, S] {
	return Collector[E, A, S]{
		supplier:    c.supplier,
		accumulator: c.accumulator,
		combiner:    c.combiner,
		finisher: func(acc A) (S, error) {
			r, err := c.finisher(acc)
			if err != nil {
				var zero S
				return zero, err
			}
			return fn(r)
		},
		order: c.order,
	}
}

// Collect folds seq sequentially with c.
func Collect[E, A, R any](seq iter.Seq[E], c Collector[E, A, R]) (R, error) {
	acc := c.Supply()
	for e := range seq {
		if err := c.Accumulate(acc, e); err != nil {
			var zero R
			return zero, err
		}
	}
	return c.Finish(acc)
}

// CollectSlice folds items sequentially with c.
func CollectSlice[E, A, R any](items []E, c Collector[E, A, R]) (R, error) {
	acc := c.Supply()
	for _, e := range items {
		if err := c.Accumulate(acc, e); err != nil {
			var zero R
			return zero, err
		}
	}
	return c.Finish(acc)
}

// FoldPartitions folds each partition into its own accumulator and combines
// the partial results left-to-right. It is the sequential reference for what
// a parallel engine computes.
func FoldPartitions[E, A, R any](partitions [][]E, c Collector[E, A, R]) (R, error) {
	var zero R
	acc := c.Supply()
	for _, part := range partitions {
		partial := c.Supply()
		for _, e := range part {
			if err := c.Accumulate(partial, e); err != nil {
				return zero, err
			}
		}
		var err error
		if acc, err = c.Combine(acc, partial); err != nil {
			return zero, err
		}
	}
	return c.Finish(acc)
}

func noFail[A, E any](fn func(A, E)) func(A, E) error {
	return func(acc A, e E) error {
		fn(acc, e)
		return nil
	}
}
