package opt

import (
	"strconv"
	"testing"
)

func TestMap_Present(t *testing.T) {
	t.Parallel()

	out := Map(Present(5), func(v int) int { return v * 2 }).OrElse(0)
	if out != 10 {
		t.Fatalf("expected 10, got: %v", out)
	}
}

func TestMap_TypeChange(t *testing.T) {
	t.Parallel()

	o := Map(Present(5), strconv.Itoa)
	if v, ok := o.Get(); !ok || v != "5" {
		t.Fatalf("expected Present(\"5\"), got: %v", o)
	}
}

func TestMap_ShortCircuitOnAbsent(t *testing.T) {
	t.Parallel()
	calls := 0

	out := Map(Absent[int](), func(v int) int {
		calls++
		return v * 2
	}).OrElse(0)

	if out != 0 || calls != 0 {
		t.Fatalf("transform must not run on absent: out=%v, calls=%v", out, calls)
	}
}

func TestFlatMap_NoDoubleWrap(t *testing.T) {
	t.Parallel()

	o := FlatMap(Present(5), func(v int) Optional[string] {
		return Present(strconv.Itoa(v))
	})

	// result is Optional[string], not Optional[Optional[string]]
	if v, ok := o.Get(); !ok || v != "5" {
		t.Fatalf("expected Present(\"5\"), got: %v", o)
	}
}

func TestFlatMap_TransformReturnsAbsent(t *testing.T) {
	t.Parallel()

	o := FlatMap(Present(5), func(v int) Optional[int] { return Absent[int]() })
	if !o.IsAbsent() {
		t.Fatalf("expected absent, got: %v", o)
	}
}

func TestFlatMap_ShortCircuitOnAbsent(t *testing.T) {
	t.Parallel()
	calls := 0

	o := FlatMap(Absent[int](), func(v int) Optional[int] {
		calls++
		return Present(v)
	})

	if !o.IsAbsent() || calls != 0 {
		t.Fatalf("transform must not run on absent: absent=%v, calls=%v", o.IsAbsent(), calls)
	}
}

func TestFold_InvokesExactlyOneBranch(t *testing.T) {
	t.Parallel()
	presentCalls, absentCalls := 0, 0

	out := Fold(Present(5),
		func(v int) string { presentCalls++; return strconv.Itoa(v) },
		func() string { absentCalls++; return "none" })

	if out != "5" || presentCalls != 1 || absentCalls != 0 {
		t.Fatalf("expected present branch only: out=%v, present=%v, absent=%v", out, presentCalls, absentCalls)
	}

	presentCalls, absentCalls = 0, 0
	out = Fold(Absent[int](),
		func(v int) string { presentCalls++; return strconv.Itoa(v) },
		func() string { absentCalls++; return "none" })

	if out != "none" || presentCalls != 0 || absentCalls != 1 {
		t.Fatalf("expected absent branch only: out=%v, present=%v, absent=%v", out, presentCalls, absentCalls)
	}
}

func TestCombinatorChain(t *testing.T) {
	t.Parallel()

	out := Map(Present(3), func(v int) int { return v + 1 }).
		Filter(func(v int) bool { return v%2 == 0 }).
		OrElse(-1)

	if out != 4 {
		t.Fatalf("expected 4, got: %v", out)
	}
}
