package collectors

import (
	"iter"

	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/util"
)

// BiMap is an immutable one-to-one map: keys and values are both unique, so
// it can be looked up in either direction.
type BiMap[K, V comparable] struct {
	forward Map[K, V]
	inverse map[V]K
}

// Len returns the number of entries.
func (m BiMap[K, V]) Len() int { return m.forward.Len() }

// Get returns the value stored under k.
func (m BiMap[K, V]) Get(k K) (V, bool) { return m.forward.Get(k) }

// GetKey returns the key stored for v.
func (m BiMap[K, V]) GetKey(v V) (K, bool) {
	k, ok := m.inverse[v]
	return k, ok
}

// ContainsKey reports whether k is present.
func (m BiMap[K, V]) ContainsKey(k K) bool { return m.forward.ContainsKey(k) }

// ContainsValue reports whether v is present.
func (m BiMap[K, V]) ContainsValue(v V) bool {
	_, ok := m.inverse[v]
	return ok
}

// Keys returns the keys in iteration order.
func (m BiMap[K, V]) Keys() []K { return m.forward.Keys() }

// Values returns the values in iteration order.
func (m BiMap[K, V]) Values() []V { return m.forward.Values() }

// All iterates over the entries in order.
func (m BiMap[K, V]) All() iter.Seq2[K, V] { return m.forward.All() }

// Inverse returns the same entries with keys and values swapped.
func (m BiMap[K, V]) Inverse() BiMap[V, K] {
	b := NewBiMapBuilder[V, K]()
	for k, v := range m.forward.All() {
		errors.Check(b.Put(v, k))
	}
	return b.Build()
}

// ToMap returns a copy of the forward direction as a built-in map.
func (m BiMap[K, V]) ToMap() map[K]V { return m.forward.ToMap() }

// Debug returns "{k=v, ...}" in iteration order.
func (m BiMap[K, V]) Debug() string { return m.forward.Debug() }

// BiMapBuilder accumulates entries with unique keys and unique values.
type BiMapBuilder[K, V comparable] struct {
	forward *MapBuilder[K, V]
	inverse map[V]K
}

// NewBiMapBuilder creates an empty builder.
func NewBiMapBuilder[K, V comparable]() *BiMapBuilder[K, V] {
	return &BiMapBuilder[K, V]{forward: NewMapBuilder[K, V](), inverse: make(map[V]K)}
}

// Put adds an entry. It fails with DUPLICATE_KEY if k is present and with
// DUPLICATE_VALUE if v is present under another key.
func (b *BiMapBuilder[K, V]) Put(k K, v V) error {
	if _, dup := b.forward.values[k]; dup {
		return errors.DuplicateKey(k)
	}
	if prev, dup := b.inverse[v]; dup {
		return errors.DuplicateValue(v).WithDetail("key", prev)
	}
	b.inverse[v] = k
	return b.forward.Put(k, v)
}

// PutAll adds every entry of other after the entries of b.
func (b *BiMapBuilder[K, V]) PutAll(other *BiMapBuilder[K, V]) error {
	for _, k := range other.forward.keys {
		if err := b.Put(k, other.forward.values[k]); err != nil {
			return err
		}
	}
	return nil
}

// Build returns an immutable snapshot of the builder.
func (b *BiMapBuilder[K, V]) Build() BiMap[K, V] {
	inverse := make(map[V]K, len(b.inverse))
	for v, k := range b.inverse {
		inverse[v] = k
	}
	return BiMap[K, V]{forward: b.forward.Build(), inverse: inverse}
}

// ToBiMap collects into a BiMap, failing with DUPLICATE_KEY or
// DUPLICATE_VALUE on either collision.
func ToBiMap[E any, K, V comparable](keyFn func(E) K, valueFn func(E) V) Collector[E, *BiMapBuilder[K, V], BiMap[K, V]] {
	return Of(
		NewBiMapBuilder[K, V],
		func(b *BiMapBuilder[K, V], e E) error { return b.Put(keyFn(e), valueFn(e)) },
		func(left, right *BiMapBuilder[K, V]) (*BiMapBuilder[K, V], error) {
			if err := left.PutAll(right); err != nil {
				return nil, err
			}
			return left, nil
		},
		func(b *BiMapBuilder[K, V]) (BiMap[K, V], error) { return b.Build(), nil },
		Unordered,
	)
}

// PairsToBiMap is ToBiMap over pairs.
func PairsToBiMap[K, V comparable]() Collector[util.Pair[K, V], *BiMapBuilder[K, V], BiMap[K, V]] {
	return ToBiMap(util.Pair[K, V].Key, util.Pair[K, V].Value)
}
