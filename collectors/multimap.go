package collectors

import (
	"iter"
	"strings"

	"github.com/kbukum/commons/util"
)

// SetMultimap is an immutable map from keys to sets of distinct values.
type SetMultimap[K, V comparable] struct {
	keys   []K
	values map[K]Set[V]
	size   int
}

// Len returns the number of distinct (key, value) entries.
func (m SetMultimap[K, V]) Len() int { return m.size }

// KeyCount returns the number of distinct keys.
func (m SetMultimap[K, V]) KeyCount() int { return len(m.keys) }

// Get returns the values stored under k, or an empty Set.
func (m SetMultimap[K, V]) Get(k K) Set[V] { return m.values[k] }

// ContainsKey reports whether k has at least one value.
func (m SetMultimap[K, V]) ContainsKey(k K) bool {
	_, ok := m.values[k]
	return ok
}

// ContainsEntry reports whether v is stored under k.
func (m SetMultimap[K, V]) ContainsEntry(k K, v V) bool {
	return m.values[k].Contains(v)
}

// Keys returns the keys in first-seen order.
func (m SetMultimap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates over every (key, value) entry, grouped by key.
func (m SetMultimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			for v := range m.values[k].All() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// AsMap returns a copy as a built-in map of slices.
func (m SetMultimap[K, V]) AsMap() map[K][]V {
	out := make(map[K][]V, len(m.keys))
	for k, s := range m.values {
		out[k] = s.Slice()
	}
	return out
}

// Debug returns "{k=[v, ...], ...}".
func (m SetMultimap[K, V]) Debug() string {
	return debugMultimap(m.keys, func(k K) string { return m.values[k].Debug() })
}

// SetMultimapBuilder accumulates distinct values per key.
type SetMultimapBuilder[K, V comparable] struct {
	keys   []K
	values map[K]*SetBuilder[V]
}

// NewSetMultimapBuilder creates an empty builder.
func NewSetMultimapBuilder[K, V comparable]() *SetMultimapBuilder[K, V] {
	return &SetMultimapBuilder[K, V]{values: make(map[K]*SetBuilder[V])}
}

// Put adds v under k. A repeated (k, v) entry collapses into one.
func (b *SetMultimapBuilder[K, V]) Put(k K, v V) {
	set, ok := b.values[k]
	if !ok {
		set = NewSetBuilder[V]()
		b.values[k] = set
		b.keys = append(b.keys, k)
	}
	set.Add(v)
}

// PutAll adds every entry of other.
func (b *SetMultimapBuilder[K, V]) PutAll(other *SetMultimapBuilder[K, V]) {
	for _, k := range other.keys {
		for _, v := range other.values[k].items {
			b.Put(k, v)
		}
	}
}

// Build returns an immutable snapshot of the builder.
func (b *SetMultimapBuilder[K, V]) Build() SetMultimap[K, V] {
	m := SetMultimap[K, V]{
		keys:   make([]K, len(b.keys)),
		values: make(map[K]Set[V], len(b.keys)),
	}
	copy(m.keys, b.keys)
	for k, set := range b.values {
		m.values[k] = set.Build()
		m.size += set.Len()
	}
	return m
}

// ToSetMultimap groups values by key, dropping repeated (key, value) entries.
func ToSetMultimap[E any, K, V comparable](keyFn func(E) K, valueFn func(E) V) Collector[E, *SetMultimapBuilder[K, V], SetMultimap[K, V]] {
	return Of(
		NewSetMultimapBuilder[K, V],
		noFail(func(b *SetMultimapBuilder[K, V], e E) { b.Put(keyFn(e), valueFn(e)) }),
		func(left, right *SetMultimapBuilder[K, V]) (*SetMultimapBuilder[K, V], error) {
			left.PutAll(right)
			return left, nil
		},
		func(b *SetMultimapBuilder[K, V]) (SetMultimap[K, V], error) { return b.Build(), nil },
		Unordered,
	)
}

// PairsToSetMultimap is ToSetMultimap over pairs.
func PairsToSetMultimap[K, V comparable]() Collector[util.Pair[K, V], *SetMultimapBuilder[K, V], SetMultimap[K, V]] {
	return ToSetMultimap(util.Pair[K, V].Key, util.Pair[K, V].Value)
}

// ListMultimap is an immutable map from keys to lists of values.
type ListMultimap[K comparable, V any] struct {
	keys   []K
	values map[K]List[V]
	size   int
}

// Len returns the number of (key, value) entries, repeats included.
func (m ListMultimap[K, V]) Len() int { return m.size }

// KeyCount returns the number of distinct keys.
func (m ListMultimap[K, V]) KeyCount() int { return len(m.keys) }

// Get returns the values stored under k in insertion order, or an empty List.
func (m ListMultimap[K, V]) Get(k K) List[V] { return m.values[k] }

// ContainsKey reports whether k has at least one value.
func (m ListMultimap[K, V]) ContainsKey(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Keys returns the keys in first-seen order.
func (m ListMultimap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// All iterates over every (key, value) entry, grouped by key.
func (m ListMultimap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			for v := range m.values[k].Values() {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// AsMap returns a copy as a built-in map of slices.
func (m ListMultimap[K, V]) AsMap() map[K][]V {
	out := make(map[K][]V, len(m.keys))
	for k, l := range m.values {
		out[k] = l.Slice()
	}
	return out
}

// Debug returns "{k=[v, ...], ...}".
func (m ListMultimap[K, V]) Debug() string {
	return debugMultimap(m.keys, func(k K) string { return m.values[k].Debug() })
}

// ListMultimapBuilder accumulates values per key in insertion order.
type ListMultimapBuilder[K comparable, V any] struct {
	keys   []K
	values map[K]*ListBuilder[V]
}

// NewListMultimapBuilder creates an empty builder.
func NewListMultimapBuilder[K comparable, V any]() *ListMultimapBuilder[K, V] {
	return &ListMultimapBuilder[K, V]{values: make(map[K]*ListBuilder[V])}
}

// Put appends v under k.
func (b *ListMultimapBuilder[K, V]) Put(k K, v V) {
	list, ok := b.values[k]
	if !ok {
		list = NewListBuilder[V]()
		b.values[k] = list
		b.keys = append(b.keys, k)
	}
	list.Add(v)
}

// PutAll appends every entry of other, after the values already under each key.
func (b *ListMultimapBuilder[K, V]) PutAll(other *ListMultimapBuilder[K, V]) {
	for _, k := range other.keys {
		for _, v := range other.values[k].items {
			b.Put(k, v)
		}
	}
}

// Build returns an immutable snapshot of the builder.
func (b *ListMultimapBuilder[K, V]) Build() ListMultimap[K, V] {
	m := ListMultimap[K, V]{
		keys:   make([]K, len(b.keys)),
		values: make(map[K]List[V], len(b.keys)),
	}
	copy(m.keys, b.keys)
	for k, list := range b.values {
		m.values[k] = list.Build()
		m.size += list.Len()
	}
	return m
}

// ToListMultimap groups values by key, keeping every value in insertion order
// per key.
func ToListMultimap[E any, K comparable, V any](keyFn func(E) K, valueFn func(E) V) Collector[E, *ListMultimapBuilder[K, V], ListMultimap[K, V]] {
	return Of(
		NewListMultimapBuilder[K, V],
		noFail(func(b *ListMultimapBuilder[K, V], e E) { b.Put(keyFn(e), valueFn(e)) }),
		func(left, right *ListMultimapBuilder[K, V]) (*ListMultimapBuilder[K, V], error) {
			left.PutAll(right)
			return left, nil
		},
		func(b *ListMultimapBuilder[K, V]) (ListMultimap[K, V], error) { return b.Build(), nil },
		Unordered,
	)
}

// PairsToListMultimap is ToListMultimap over pairs.
func PairsToListMultimap[K comparable, V any]() Collector[util.Pair[K, V], *ListMultimapBuilder[K, V], ListMultimap[K, V]] {
	return ToListMultimap(util.Pair[K, V].Key, util.Pair[K, V].Value)
}

func debugMultimap[K comparable](keys []K, render func(K) string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(util.Debug(k))
		sb.WriteByte('=')
		sb.WriteString(render(k))
	}
	sb.WriteByte('}')
	return sb.String()
}
