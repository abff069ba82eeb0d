package curryfunc_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/curry"
	"github.com/rogpeppe/curry/curryfunc"
)

func TestFrom0(t *testing.T) {
	w, err := curry.New(curryfunc.From0(func() string { return "done" }))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, "done"))
}

func TestFrom1(t *testing.T) {
	w, err := curry.New(curryfunc.From1(func(x int) int { return x + 1 }, "x"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call(41)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 42))

	r, err = w.CallNamed(nil, map[string]any{"x": 1})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 2))
}

func TestFrom2Partial(t *testing.T) {
	w, err := curry.New(curryfunc.From2(func(x, y int) bool { return x > y }, "x", "y"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call(40)
	qt.Assert(t, qt.IsNil(err))
	ltForty, ok := r.(*curry.Wrapper)
	qt.Assert(t, qt.IsTrue(ok))

	r, err = ltForty.Call(39)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, true))

	r, err = ltForty.Call(50)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, false))
}

func TestFrom2NamedArguments(t *testing.T) {
	w, err := curry.New(curryfunc.From2(func(x, y int) int { return x - y }, "x", "y"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.CallNamed(nil, map[string]any{"y": 3})
	qt.Assert(t, qt.IsNil(err))
	partial := r.(*curry.Wrapper)

	r, err = partial.CallNamed(nil, map[string]any{"x": 10})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 7))
}

func TestFrom3(t *testing.T) {
	w, err := curry.New(curryfunc.From3(func(a, b, c string) string {
		return a + b + c
	}, "a", "b", "c"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call("x")
	qt.Assert(t, qt.IsNil(err))
	r, err = r.(*curry.Wrapper).Call("y")
	qt.Assert(t, qt.IsNil(err))
	r, err = r.(*curry.Wrapper).Call("z")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, "xyz"))
}

func TestFrom4(t *testing.T) {
	w, err := curry.New(curryfunc.From4(func(a, b, c, d int) int {
		return a*1000 + b*100 + c*10 + d
	}, "a", "b", "c", "d"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call(1, 2)
	qt.Assert(t, qt.IsNil(err))
	r, err = r.(*curry.Wrapper).Call(3, 4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 1234))
}

func TestFromEPropagatesError(t *testing.T) {
	errDivZero := errors.New("division by zero")
	w, err := curry.New(curryfunc.From2E(func(x, y int) (int, error) {
		if y == 0 {
			return 0, errDivZero
		}
		return x / y, nil
	}, "x", "y"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call(12, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 4))

	_, err = w.Call(12, 0)
	qt.Assert(t, qt.ErrorIs(err, errDivZero))
}

func TestFrom1E(t *testing.T) {
	w, err := curry.New(curryfunc.From1E(func(s string) (int, error) {
		if s == "" {
			return 0, errors.New("empty")
		}
		return len(s), nil
	}, "s"))
	qt.Assert(t, qt.IsNil(err))

	r, err := w.Call("four")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals[any](r, 4))

	_, err = w.Call("")
	qt.Assert(t, qt.ErrorMatches(err, "empty"))
}

func TestTypeMismatch(t *testing.T) {
	w, err := curry.New(curryfunc.From2(func(x, y int) int { return x + y }, "x", "y"))
	qt.Assert(t, qt.IsNil(err))

	_, err = w.Call("a", "b")
	qt.Assert(t, qt.ErrorMatches(err, `argument x: cannot use string as int`))
}

func TestMissingArgumentWithCountChecker(t *testing.T) {
	target, _ := curryfunc.From2(func(x, y int) int { return x + y }, "x", "y")

	// A count checker can fire before every parameter has a
	// binding; the adapter reports which one is missing.
	w := curry.NewWithChecker(target, curry.CountChecker(1))
	_, err := w.Call(1)
	qt.Assert(t, qt.ErrorMatches(err, `missing argument y`))
}
