// Package collectors provides associative reductions that fold a sequence of
// elements into an immutable result.
//
// A Collector is described by four operations: a supplier creating an empty
// accumulator, an accumulator absorbing one element, a combiner merging two
// partial accumulators, and a finisher producing the result. A fork/join
// engine such as pipeline.ParallelCollect may fold disjoint partitions into
// separate accumulators and combine them pairwise; the combiner is associative,
// so every partitioning yields the same result.
//
// Each collector declares its Order at construction. Ordered collectors
// (ToOrderedMap, ToOrderedSet, ToList) must only be combined left-to-right in
// partition order; Unordered collectors may be combined in any order and the
// finished result has the same entries, possibly in a different iteration
// order.
//
// # Conflicts
//
// Uniqueness-enforcing collectors fail the whole reduction instead of
// dropping input:
//
//	SingleOrNone, Single    MULTIPLE_VALUES on two or more elements
//	Single                  NO_VALUE on zero elements
//	ToMap, ToOrderedMap     DUPLICATE_KEY
//	ToBiMap                 DUPLICATE_KEY or DUPLICATE_VALUE
//	ToTable                 DUPLICATE_KEY on a repeated (row, column)
//
// Multimaps, sets and lists never fail.
//
// # Usage
//
//	byID, err := collectors.CollectSlice(users, collectors.ToMap(
//	    func(u User) string { return u.ID },
//	    func(u User) User { return u },
//	))
//
// Accumulators are not safe for concurrent use: each belongs to one partition
// and a combine consumes both of its arguments.
package collectors
