package collectors

import (
	"iter"
	"strings"

	"github.com/kbukum/commons/util"
)

// Set is an immutable set that remembers the order in which elements were
// first seen. The zero Set is empty.
type Set[E comparable] struct {
	items []E
	index map[E]struct{}
}

// Len returns the number of elements.
func (s Set[E]) Len() int { return len(s.items) }

// Contains reports whether e is a member.
func (s Set[E]) Contains(e E) bool {
	_, ok := s.index[e]
	return ok
}

// All iterates over the elements in order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.items {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns the elements in order.
func (s Set[E]) Slice() []E {
	out := make([]E, len(s.items))
	copy(out, s.items)
	return out
}

// Equal reports whether both sets have the same members, ignoring order.
func (s Set[E]) Equal(other Set[E]) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, e := range s.items {
		if !other.Contains(e) {
			return false
		}
	}
	return true
}

// Debug returns "[a, b, ...]" in iteration order.
func (s Set[E]) Debug() string { return debugList(s.items) }

// SetBuilder accumulates distinct elements in first-seen order.
type SetBuilder[E comparable] struct {
	items []E
	index map[E]struct{}
}

// NewSetBuilder creates an empty builder.
func NewSetBuilder[E comparable]() *SetBuilder[E] {
	return &SetBuilder[E]{index: make(map[E]struct{})}
}

// Add adds e and reports whether it was new.
func (b *SetBuilder[E]) Add(e E) bool {
	if _, dup := b.index[e]; dup {
		return false
	}
	b.index[e] = struct{}{}
	b.items = append(b.items, e)
	return true
}

// AddAll adds the elements of other not yet present, in other's order.
func (b *SetBuilder[E]) AddAll(other *SetBuilder[E]) {
	for _, e := range other.items {
		b.Add(e)
	}
}

// Len returns the number of distinct elements added so far.
func (b *SetBuilder[E]) Len() int { return len(b.items) }

// Build returns an immutable snapshot of the builder.
func (b *SetBuilder[E]) Build() Set[E] {
	items := make([]E, len(b.items))
	copy(items, b.items)
	index := make(map[E]struct{}, len(items))
	for _, e := range items {
		index[e] = struct{}{}
	}
	return Set[E]{items: items, index: index}
}

// ToSet collects distinct elements. Iteration order of the result is
// unspecified across parallel folds.
func ToSet[E comparable]() Collector[E, *SetBuilder[E], Set[E]] {
	return setCollector[E](Unordered)
}

// ToOrderedSet collects distinct elements in first-seen order.
func ToOrderedSet[E comparable]() Collector[E, *SetBuilder[E], Set[E]] {
	return setCollector[E](Ordered)
}

func setCollector[E comparable](order Order) Collector[E, *SetBuilder[E], Set[E]] {
	return Of(
		NewSetBuilder[E],
		noFail(func(b *SetBuilder[E], e E) { b.Add(e) }),
		func(left, right *SetBuilder[E]) (*SetBuilder[E], error) {
			left.AddAll(right)
			return left, nil
		},
		func(b *SetBuilder[E]) (Set[E], error) { return b.Build(), nil },
		order,
	)
}

func debugList[E any](items []E) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(util.Debug(e))
	}
	sb.WriteByte(']')
	return sb.String()
}
