package optional

import (
	stderrors "errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/kbukum/commons/errors"
)

type shape interface{ Area() float64 }

type square struct{ side float64 }

func (s square) Area() float64 { return s.side * s.side }

func TestFrom_NilNormalizesToEmpty(t *testing.T) {
	var nilPtr *int
	var nilShape shape
	var nilFunc func()
	n := 3

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"nil pointer", From(nilPtr).IsPresent(), false},
		{"nil interface", From(nilShape).IsPresent(), false},
		{"nil func", From(nilFunc).IsPresent(), false},
		{"non-nil pointer", From(&n).IsPresent(), true},
		{"non-nil interface", From[shape](square{2}).IsPresent(), true},
		{"zero int", From(0).IsPresent(), true},
		{"empty string", From("").IsPresent(), true},
		{"nil slice", From([]int(nil)).IsPresent(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("IsPresent = %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestFromPtr(t *testing.T) {
	n := 5
	if got := FromPtr(&n); !EqualsValue(got, 5) {
		t.Errorf("expected SOME(5), got %v", got)
	}
	if FromPtr[int](nil).IsPresent() {
		t.Error("expected nil pointer to be empty")
	}
	var inner *int
	if FromPtr(&inner).IsPresent() {
		t.Error("expected pointer to nil pointer to be empty")
	}
}

func TestFromOK(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if got := FromOK(v, ok); !EqualsValue(got, 1) {
		t.Errorf("expected SOME(1), got %v", got)
	}
	v, ok = m["z"]
	if FromOK(v, ok).IsPresent() {
		t.Error("expected missing key to be empty")
	}
}

func TestOf_PanicsOnNil(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !stderrors.Is(err, errors.ErrUnexpectedBranch) {
			t.Errorf("expected UNEXPECTED_BRANCH panic, got %v", err)
		}
	}()
	var p *int
	Of(p)
	t.Fatal("Of(nil) should panic")
}

func TestCast(t *testing.T) {
	var v any = square{3}
	if got := Cast[shape](v); !got.IsPresent() || got.MustGet().Area() != 9 {
		t.Errorf("expected square to cast to shape, got %v", got)
	}
	if Cast[string](v).IsPresent() {
		t.Error("expected cast to unrelated type to be empty")
	}
	if Cast[shape](nil).IsPresent() {
		t.Error("expected nil to cast to empty")
	}
	var nilPtr *int
	if Cast[*int](nilPtr).IsPresent() {
		t.Error("expected typed nil to cast to empty")
	}
}

func TestGet(t *testing.T) {
	v, err := Of(7).Get()
	if err != nil || v != 7 {
		t.Errorf("expected (7, nil), got (%d, %v)", v, err)
	}

	_, err = Empty[int]().Get()
	if !stderrors.Is(err, errors.ErrEmptyValue) {
		t.Errorf("expected EMPTY_VALUE, got %v", err)
	}
}

func TestMustGet_PanicsOnEmpty(t *testing.T) {
	defer func() {
		if err, _ := recover().(error); !stderrors.Is(err, errors.ErrEmptyValue) {
			t.Errorf("expected EMPTY_VALUE panic, got %v", err)
		}
	}()
	Empty[string]().MustGet()
}

func TestGetOrDefault(t *testing.T) {
	if got := Of(1).GetOrDefault(9); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := Empty[int]().GetOrDefault(9); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
}

func TestGetOrCompute_IsLazy(t *testing.T) {
	calls := 0
	supplier := func() int { calls++; return 9 }

	if got := Of(1).GetOrCompute(supplier); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if calls != 0 {
		t.Errorf("supplier called %d times for a present value", calls)
	}
	if got := Empty[int]().GetOrCompute(supplier); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
	if calls != 1 {
		t.Errorf("expected supplier to be called once, got %d", calls)
	}
}

func TestGetOrFail_BuildsFreshErrors(t *testing.T) {
	calls := 0
	errFn := func() error {
		calls++
		return fmt.Errorf("missing #%d", calls)
	}

	if v, err := Of("x").GetOrFail(errFn); err != nil || v != "x" {
		t.Errorf("expected (x, nil), got (%q, %v)", v, err)
	}
	if calls != 0 {
		t.Error("errFn should not run for a present value")
	}

	empty := Empty[string]()
	_, err1 := empty.GetOrFail(errFn)
	_, err2 := empty.GetOrFail(errFn)
	if err1 == nil || err2 == nil {
		t.Fatal("expected errors for empty value")
	}
	if err1 == err2 {
		t.Error("expected a distinct error per call")
	}
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	if got := Of(2).Filter(even); !EqualsValue(got, 2) {
		t.Errorf("expected SOME(2), got %v", got)
	}
	if got := Of(3).Filter(even); got.IsPresent() {
		t.Errorf("expected NONE, got %v", got)
	}
	if got := Of(3).Filter(even); got != Empty[int]() {
		t.Error("filtered-out value should equal Empty")
	}
	called := false
	Empty[int]().Filter(func(int) bool { called = true; return true })
	if called {
		t.Error("predicate should not run on an empty value")
	}
}

func TestOr_IsLazy(t *testing.T) {
	calls := 0
	alt := func() Value[int] { calls++; return Of(9) }

	if got := Of(1).Or(alt); !EqualsValue(got, 1) {
		t.Errorf("expected SOME(1), got %v", got)
	}
	if calls != 0 {
		t.Error("alternative should not run for a present value")
	}
	if got := Empty[int]().Or(alt); !EqualsValue(got, 9) {
		t.Errorf("expected SOME(9), got %v", got)
	}
	if got := Empty[int]().Or(Empty[int]); got.IsPresent() {
		t.Errorf("expected NONE when alternative is empty, got %v", got)
	}
}

func TestMap(t *testing.T) {
	got := Map(Of(21), func(n int) string { return strconv.Itoa(n * 2) })
	if !EqualsValue(got, "42") {
		t.Errorf("expected SOME(42), got %v", got)
	}

	called := false
	none := Map(Empty[int](), func(n int) string { called = true; return "" })
	if none.IsPresent() || called {
		t.Error("mapping an empty value should neither call f nor produce a value")
	}
}

func TestMap_NilResultPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Map to reject a nil result")
		}
	}()
	Map(Of(1), func(int) *int { return nil })
}

func TestFlatMap(t *testing.T) {
	parse := func(s string) Value[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Empty[int]()
		}
		return Of(n)
	}
	if got := FlatMap(Of("12"), parse); !EqualsValue(got, 12) {
		t.Errorf("expected SOME(12), got %v", got)
	}
	if got := FlatMap(Of("x"), parse); got.IsPresent() {
		t.Errorf("expected NONE, got %v", got)
	}

	called := false
	FlatMap(Empty[string](), func(string) Value[int] { called = true; return Of(0) })
	if called {
		t.Error("FlatMap should short-circuit on an empty value")
	}
}

func TestMonadLaws(t *testing.T) {
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 10 }
	id := func(n int) int { return n }

	for _, o := range []Value[int]{Of(0), Of(5), Empty[int]()} {
		t.Run(o.String(), func(t *testing.T) {
			if Map(o, id) != o {
				t.Errorf("map(id) changed %v", o)
			}
			if FlatMap(o, Of[int]) != o {
				t.Errorf("flatMap(present) changed %v", o)
			}
			if Map(Map(o, f), g) != Map(o, func(n int) int { return g(f(n)) }) {
				t.Errorf("map composition does not hold for %v", o)
			}
		})
	}

	// Left identity: flatMap over a fresh present value is plain application.
	h := func(n int) Value[int] { return Of(n).Filter(func(m int) bool { return m > 2 }) }
	for _, n := range []int{1, 3} {
		if FlatMap(Of(n), h) != h(n) {
			t.Errorf("left identity fails for %d", n)
		}
	}
}

func TestAllIsRestartable(t *testing.T) {
	seq := Of("a").All()
	for range 2 {
		var got []string
		for v := range seq {
			got = append(got, v)
		}
		if len(got) != 1 || got[0] != "a" {
			t.Errorf("expected [a], got %v", got)
		}
	}

	for range Empty[string]().All() {
		t.Error("empty value should yield nothing")
	}
}

func TestSlice(t *testing.T) {
	if got := Of(4).Slice(); len(got) != 1 || got[0] != 4 {
		t.Errorf("expected [4], got %v", got)
	}
	if got := Empty[int]().Slice(); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestEquals(t *testing.T) {
	if !EqualsValue(Of("a"), "a") {
		t.Error("expected SOME(a) to equal a")
	}
	if EqualsValue(Of("a"), "b") {
		t.Error("expected SOME(a) not to equal b")
	}
	if EqualsValue(Empty[string](), "") {
		t.Error("empty value must never equal a raw value")
	}

	sameLen := func(a, b []int) bool { return len(a) == len(b) }
	if !Of([]int{1, 2}).EqualsFunc([]int{3, 4}, sameLen) {
		t.Error("expected EqualsFunc to use eq")
	}
	if Empty[[]int]().EqualsFunc(nil, sameLen) {
		t.Error("empty value must never be equal")
	}
}

func TestDebug(t *testing.T) {
	if got := Of(3).Debug(); got != "SOME(3)" {
		t.Errorf("expected SOME(3), got %q", got)
	}
	if got := Empty[int]().String(); got != "NONE" {
		t.Errorf("expected NONE, got %q", got)
	}
	if got := fmt.Sprint(Of(Of(1))); got != "SOME(SOME(1))" {
		t.Errorf("expected nested rendering, got %q", got)
	}
}
