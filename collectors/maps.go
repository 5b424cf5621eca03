package collectors

import (
	"iter"
	"strings"

	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/util"
)

// Map is an immutable map that remembers the order in which keys were added.
// The zero Map is empty.
type Map[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// Len returns the number of entries.
func (m Map[K, V]) Len() int { return len(m.keys) }

// Get returns the value stored under k.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// ContainsKey reports whether k is present.
func (m Map[K, V]) ContainsKey(k K) bool {
	_, ok := m.values[k]
	return ok
}

// Keys returns the keys in iteration order.
func (m Map[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values returns the values in iteration order.
func (m Map[K, V]) Values() []V {
	vals := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		vals = append(vals, m.values[k])
	}
	return vals
}

// All iterates over the entries in order.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// ToMap returns a copy as a built-in map.
func (m Map[K, V]) ToMap() map[K]V {
	out := make(map[K]V, len(m.keys))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}

// Debug returns "{k=v, ...}" in iteration order.
func (m Map[K, V]) Debug() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(util.Debug(k))
		sb.WriteByte('=')
		sb.WriteString(util.Debug(m.values[k]))
	}
	sb.WriteByte('}')
	return sb.String()
}

// MapBuilder accumulates entries with unique keys.
type MapBuilder[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewMapBuilder creates an empty builder.
func NewMapBuilder[K comparable, V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{values: make(map[K]V)}
}

// Put adds an entry, failing with DUPLICATE_KEY if k is already present.
func (b *MapBuilder[K, V]) Put(k K, v V) error {
	if _, dup := b.values[k]; dup {
		return errors.DuplicateKey(k)
	}
	b.keys = append(b.keys, k)
	b.values[k] = v
	return nil
}

// PutAll adds every entry of other after the entries of b.
func (b *MapBuilder[K, V]) PutAll(other *MapBuilder[K, V]) error {
	for _, k := range other.keys {
		if err := b.Put(k, other.values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of entries added so far.
func (b *MapBuilder[K, V]) Len() int { return len(b.keys) }

// Build returns an immutable snapshot of the builder.
func (b *MapBuilder[K, V]) Build() Map[K, V] {
	keys := make([]K, len(b.keys))
	copy(keys, b.keys)
	values := make(map[K]V, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return Map[K, V]{keys: keys, values: values}
}

// ToMap collects into a Map keyed by keyFn, failing with DUPLICATE_KEY when
// two elements share a key. Iteration order of the result is unspecified
// across parallel folds.
func ToMap[E any, K comparable, V any](keyFn func(E) K, valueFn func(E) V) Collector[E, *MapBuilder[K, V], Map[K, V]] {
	return mapCollector(keyFn, valueFn, Unordered)
}

// ToOrderedMap is ToMap preserving the encounter order of the source.
func ToOrderedMap[E any, K comparable, V any](keyFn func(E) K, valueFn func(E) V) Collector[E, *MapBuilder[K, V], Map[K, V]] {
	return mapCollector(keyFn, valueFn, Ordered)
}

// PairsToMap is ToMap over pairs, keyed by their first element.
func PairsToMap[K comparable, V any]() Collector[util.Pair[K, V], *MapBuilder[K, V], Map[K, V]] {
	return ToMap(util.Pair[K, V].Key, util.Pair[K, V].Value)
}

// PairsToOrderedMap is ToOrderedMap over pairs, keyed by their first element.
func PairsToOrderedMap[K comparable, V any]() Collector[util.Pair[K, V], *MapBuilder[K, V], Map[K, V]] {
	return ToOrderedMap(util.Pair[K, V].Key, util.Pair[K, V].Value)
}

func mapCollector[E any, K comparable, V any](keyFn func(E) K, valueFn func(E) V, order Order) Collector[E, *MapBuilder[K, V], Map[K, V]] {
	return Of(
		NewMapBuilder[K, V],
		func(b *MapBuilder[K, V], e E) error { return b.Put(keyFn(e), valueFn(e)) },
		func(left, right *MapBuilder[K, V]) (*MapBuilder[K, V], error) {
			if err := left.PutAll(right); err != nil {
				return nil, err
			}
			return left, nil
		},
		func(b *MapBuilder[K, V]) (Map[K, V], error) { return b.Build(), nil },
		order,
	)
}
