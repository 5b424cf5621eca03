package optional

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/util"
)

// Value holds either exactly one value of type T or nothing. The zero Value
// is empty.
type Value[T any] struct {
	value   T
	present bool
}

var _ util.Debuggable = Value[int]{}

// Of returns a present Value. It panics if v is nil; use From for sources that
// may be nil.
func Of[T any](v T) Value[T] {
	if isNil(v) {
		panic(errors.UnexpectedBranch("optional: Of called with a nil value"))
	}
	return Value[T]{value: v, present: true}
}

// Empty returns an empty Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// From returns an empty Value if v is nil and a present one otherwise.
func From[T any](v T) Value[T] {
	if isNil(v) {
		return Empty[T]()
	}
	return Value[T]{value: v, present: true}
}

// FromPtr returns the value p points to, or an empty Value if p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Empty[T]()
	}
	return From(*p)
}

// FromOK adapts the comma-ok idiom: v is present iff ok is true.
func FromOK[T any](v T, ok bool) Value[T] {
	if !ok {
		return Empty[T]()
	}
	return From(v)
}

// Cast returns v as a T if it holds a non-nil T, and an empty Value otherwise.
func Cast[T any](v any) Value[T] {
	t, ok := v.(T)
	if !ok {
		return Empty[T]()
	}
	return From(t)
}

// IsPresent reports whether the Value holds a value.
func (o Value[T]) IsPresent() bool { return o.present }

// Value returns the held value and whether it is present.
func (o Value[T]) Value() (T, bool) { return o.value, o.present }

// Get returns the held value, or an EMPTY_VALUE error.
func (o Value[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, errors.EmptyValue()
	}
	return o.value, nil
}

// MustGet returns the held value and panics with an EMPTY_VALUE error if there
// is none.
func (o Value[T]) MustGet() T {
	if !o.present {
		panic(errors.EmptyValue())
	}
	return o.value
}

// GetOrDefault returns the held value, or fallback if there is none.
func (o Value[T]) GetOrDefault(fallback T) T {
	if !o.present {
		return fallback
	}
	return o.value
}

// GetOrCompute returns the held value, or the result of supplier if there is
// none. supplier is only called when needed.
func (o Value[T]) GetOrCompute(supplier func() T) T {
	if !o.present {
		return supplier()
	}
	return o.value
}

// GetOrFail returns the held value, or the error built by errFn if there is
// none. errFn is only called when needed, so every failure gets its own error.
func (o Value[T]) GetOrFail(errFn func() error) (T, error) {
	if !o.present {
		var zero T
		return zero, errFn()
	}
	return o.value, nil
}

// Filter keeps the held value only if predicate holds for it.
func (o Value[T]) Filter(predicate func(T) bool) Value[T] {
	if !o.present || !predicate(o.value) {
		return Empty[T]()
	}
	return o
}

// Or returns o if it is present and the Value produced by alternative
// otherwise. alternative is only called when needed.
func (o Value[T]) Or(alternative func() Value[T]) Value[T] {
	if o.present {
		return o
	}
	return alternative()
}

// All returns a sequence of zero or one element. It can be ranged over any
// number of times.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// Slice returns the held value as a one-element slice, or an empty slice.
func (o Value[T]) Slice() []T {
	if !o.present {
		return []T{}
	}
	return []T{o.value}
}

// EqualsFunc reports whether o holds a value equal to other under eq.
func (o Value[T]) EqualsFunc(other T, eq func(a, b T) bool) bool {
	return o.present && eq(o.value, other)
}

// Debug returns "SOME(v)" or "NONE".
func (o Value[T]) Debug() string {
	if !o.present {
		return "NONE"
	}
	return fmt.Sprintf("SOME(%s)", util.Debug(o.value))
}

// String returns the same representation as Debug.
func (o Value[T]) String() string { return o.Debug() }

// EqualsValue reports whether o holds a value equal to other.
func EqualsValue[T comparable](o Value[T], other T) bool {
	return o.present && o.value == other
}

// Map applies f to the held value. f must always produce a value; a nil result
// panics. Use FlatMap when f may have nothing to return.
func Map[T, U any](o Value[T], f func(T) U) Value[U] {
	if !o.present {
		return Empty[U]()
	}
	return Of(f(o.value))
}

// FlatMap applies f to the held value and returns its result.
func FlatMap[T, U any](o Value[T], f func(T) Value[U]) Value[U] {
	if !o.present {
		return Empty[U]()
	}
	return f(o.value)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
