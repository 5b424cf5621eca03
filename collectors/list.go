package collectors

import "iter"

// List is an immutable sequence. The zero List is empty.
type List[E any] struct {
	items []E
}

// Len returns the number of elements.
func (l List[E]) Len() int { return len(l.items) }

// At returns the element at index i. It panics if i is out of range, like
// slice indexing.
func (l List[E]) At(i int) E { return l.items[i] }

// All iterates over the index and element pairs in order.
func (l List[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range l.items {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (l List[E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range l.items {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice returns the elements in order.
func (l List[E]) Slice() []E {
	out := make([]E, len(l.items))
	copy(out, l.items)
	return out
}

// Debug returns "[a, b, ...]".
func (l List[E]) Debug() string { return debugList(l.items) }

// ListBuilder accumulates elements in insertion order.
type ListBuilder[E any] struct {
	items []E
}

// NewListBuilder creates an empty builder.
func NewListBuilder[E any]() *ListBuilder[E] {
	return &ListBuilder[E]{}
}

// Add appends e.
func (b *ListBuilder[E]) Add(e E) { b.items = append(b.items, e) }

// AddAll appends the elements of other.
func (b *ListBuilder[E]) AddAll(other *ListBuilder[E]) {
	b.items = append(b.items, other.items...)
}

// Len returns the number of elements added so far.
func (b *ListBuilder[E]) Len() int { return len(b.items) }

// Build returns an immutable snapshot of the builder.
func (b *ListBuilder[E]) Build() List[E] {
	items := make([]E, len(b.items))
	copy(items, b.items)
	return List[E]{items: items}
}

// ToList collects every element in encounter order.
func ToList[E any]() Collector[E, *ListBuilder[E], List[E]] {
	return Of(
		NewListBuilder[E],
		noFail(func(b *ListBuilder[E], e E) { b.Add(e) }),
		func(left, right *ListBuilder[E]) (*ListBuilder[E], error) {
			left.AddAll(right)
			return left, nil
		},
		func(b *ListBuilder[E]) (List[E], error) { return b.Build(), nil },
		Ordered,
	)
}
