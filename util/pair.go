package util

import (
	"fmt"

	"github.com/kbukum/commons/errors"
)

// Pair holds two values of possibly different types. Pairs of comparable
// types compare structurally with ==.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf creates a Pair.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Key returns the first element. It lets a Pair act as a map entry.
func (p Pair[A, B]) Key() A { return p.First }

// Value returns the second element.
func (p Pair[A, B]) Value() B { return p.Second }

// Debug returns "(first, second)".
func (p Pair[A, B]) Debug() string {
	return fmt.Sprintf("(%s, %s)", Debug(p.First), Debug(p.Second))
}

// String returns the same representation as Debug.
func (p Pair[A, B]) String() string {
	return p.Debug()
}

// Zip pairs up as and bs index by index. The slices must have equal length.
func Zip[A, B any](as []A, bs []B) ([]Pair[A, B], error) {
	if len(as) != len(bs) {
		return nil, errors.InvalidInput("bs", fmt.Sprintf("length %d does not match length %d", len(bs), len(as))).
			WithDetail("left", len(as)).
			WithDetail("right", len(bs))
	}
	pairs := make([]Pair[A, B], len(as))
	for i := range as {
		pairs[i] = PairOf(as[i], bs[i])
	}
	return pairs, nil
}

// Unzip splits pairs into their first and second elements.
func Unzip[A, B any](pairs []Pair[A, B]) ([]A, []B) {
	as := make([]A, len(pairs))
	bs := make([]B, len(pairs))
	for i, p := range pairs {
		as[i], bs[i] = p.First, p.Second
	}
	return as, bs
}
