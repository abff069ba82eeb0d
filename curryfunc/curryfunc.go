// Package curryfunc provides statically typed adapters from ordinary
// Go functions to the curry package's calling convention.
//
// Each FromN function converts a func with N parameters into a
// curry.Target along with a Signature carrying the parameter names
// given by the caller, so the two can be passed straight to curry.New:
//
//	w, err := curry.New(curryfunc.From2(func(x, y int) bool { return x > y }, "x", "y"))
//
// The E-suffixed variants adapt functions whose final result is an
// error, which the target returns as its own error result.
//
// Unlike curry.NewFunc, the adapters here do no reflection and keep the
// real parameter names. They stop at four parameters; beyond that, use
// curry.NewFunc or write a curry.Target directly.
package curryfunc

import (
	"fmt"

	"github.com/rogpeppe/curry"
)

// From0 adapts a niladic function.
func From0[R any](f func() R) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		return f(), nil
	}, curry.Signature{}
}

// From0E adapts a niladic error-returning function.
func From0E[R any](f func() (R, error)) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		return f()
	}, curry.Signature{}
}

// From1 adapts a one-parameter function whose parameter is named p0.
func From1[A0, R any](f func(A0) R, p0 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		return f(a0), nil
	}, sig(p0)
}

// From1E adapts a one-parameter error-returning function.
func From1E[A0, R any](f func(A0) (R, error), p0 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		return f(a0)
	}, sig(p0)
}

// From2 adapts a two-parameter function.
func From2[A0, A1, R any](f func(A0, A1) R, p0, p1 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		return f(a0, a1), nil
	}, sig(p0, p1)
}

// From2E adapts a two-parameter error-returning function.
func From2E[A0, A1, R any](f func(A0, A1) (R, error), p0, p1 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		return f(a0, a1)
	}, sig(p0, p1)
}

// From3 adapts a three-parameter function.
func From3[A0, A1, A2, R any](f func(A0, A1, A2) R, p0, p1, p2 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		a2, err := arg[A2](args, named, 2, p2)
		if err != nil {
			return nil, err
		}
		return f(a0, a1, a2), nil
	}, sig(p0, p1, p2)
}

// From3E adapts a three-parameter error-returning function.
func From3E[A0, A1, A2, R any](f func(A0, A1, A2) (R, error), p0, p1, p2 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		a2, err := arg[A2](args, named, 2, p2)
		if err != nil {
			return nil, err
		}
		return f(a0, a1, a2)
	}, sig(p0, p1, p2)
}

// From4 adapts a four-parameter function.
func From4[A0, A1, A2, A3, R any](f func(A0, A1, A2, A3) R, p0, p1, p2, p3 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		a2, err := arg[A2](args, named, 2, p2)
		if err != nil {
			return nil, err
		}
		a3, err := arg[A3](args, named, 3, p3)
		if err != nil {
			return nil, err
		}
		return f(a0, a1, a2, a3), nil
	}, sig(p0, p1, p2, p3)
}

// From4E adapts a four-parameter error-returning function.
func From4E[A0, A1, A2, A3, R any](f func(A0, A1, A2, A3) (R, error), p0, p1, p2, p3 string) (curry.Target, curry.Signature) {
	return func(args []any, named map[string]any) (any, error) {
		a0, err := arg[A0](args, named, 0, p0)
		if err != nil {
			return nil, err
		}
		a1, err := arg[A1](args, named, 1, p1)
		if err != nil {
			return nil, err
		}
		a2, err := arg[A2](args, named, 2, p2)
		if err != nil {
			return nil, err
		}
		a3, err := arg[A3](args, named, 3, p3)
		if err != nil {
			return nil, err
		}
		return f(a0, a1, a2, a3)
	}, sig(p0, p1, p2, p3)
}

func sig(params ...string) curry.Signature {
	return curry.Signature{Params: params}
}

// arg fetches the i'th argument, falling back to its named binding.
func arg[T any](args []any, named map[string]any, i int, name string) (T, error) {
	var zero T
	x, ok := any(nil), false
	if i < len(args) {
		x, ok = args[i], true
	} else {
		x, ok = named[name]
	}
	if !ok {
		return zero, fmt.Errorf("missing argument %s", name)
	}
	v, ok := x.(T)
	if !ok {
		return zero, fmt.Errorf("argument %s: cannot use %T as %T", name, x, zero)
	}
	return v, nil
}
