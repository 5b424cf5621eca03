package collectors

import (
	"github.com/kbukum/commons/errors"
	"github.com/kbukum/commons/optional"
)

// SingleHolder accumulates at most one element.
type SingleHolder[E any] struct {
	value E
	set   bool
}

// Set stores e, failing with MULTIPLE_VALUES if an element is already held.
func (h *SingleHolder[E]) Set(e E) error {
	if h.set {
		return errors.MultipleValues()
	}
	h.value, h.set = e, true
	return nil
}

// SingleOrNone collects zero or one element into an optional value and fails
// with MULTIPLE_VALUES on a second element.
func SingleOrNone[E any]() Collector[E, *SingleHolder[E], optional.Value[E]] {
	return Of(
		func() *SingleHolder[E] { return &SingleHolder[E]{} },
		func(h *SingleHolder[E], e E) error { return h.Set(e) },
		func(left, right *SingleHolder[E]) (*SingleHolder[E], error) {
			switch {
			case !left.set:
				return right, nil
			case right.set:
				return nil, errors.MultipleValues()
			default:
				return left, nil
			}
		},
		func(h *SingleHolder[E]) (optional.Value[E], error) {
			return optional.FromOK(h.value, h.set), nil
		},
		Unordered,
	)
}

// Single collects exactly one element. It fails with NO_VALUE on empty input
// and with MULTIPLE_VALUES on a second element.
func Single[E any]() Collector[E, *SingleHolder[E], E] {
	return AndThen(SingleOrNone[E](), func(v optional.Value[E]) (E, error) {
		return v.GetOrFail(func() error { return errors.NoValue() })
	})
}
