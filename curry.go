// Package curry implements function currying: a wrapped callable can be
// invoked with any subset of its arguments at a time, yielding either
// the final result (once enough arguments have been supplied) or a new
// partially applied callable awaiting the rest.
//
// Arguments are positional or named. The decision of whether enough
// have accumulated is made by a Checker; the default one is derived
// from a Signature describing the callable's declared parameters, and
// CountChecker gives a simple positional threshold instead.
//
// Wrappers are immutable values: applying one never changes it, so a
// partially applied wrapper can be completed any number of times, from
// any number of goroutines, with independent results each time:
//
//	gt, _ := curry.NewFunc(func(x, y int) bool { return x > y })
//	w, _ := gt.Call(40)
//	ltForty := w.(*curry.Wrapper)
//	ltForty.Call(39) // true
//	ltForty.Call(50) // false
//
// The constructor is itself curried: see Wrap.
package curry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Target is the underlying callable wrapped by a Wrapper. It receives
// all accumulated positional and named arguments once the wrapper's
// checker decides evaluation can proceed. An error returned by a Target
// passes through the wrapper unchanged.
type Target func(args []any, named map[string]any) (any, error)

// ErrUnrecognizedArg is wrapped by the error returned when a named
// argument does not correspond to any remaining declared parameter of a
// target that doesn't accept arbitrary named arguments.
var ErrUnrecognizedArg = errors.New("unrecognized named argument")

// Wrapper is a curried callable: a target paired with a checker that
// decides when enough arguments have accumulated, plus the arguments
// collected so far.
//
// A Wrapper is never mutated after construction. Calling one with
// insufficient arguments returns a new independent Wrapper holding the
// merged arguments, leaving the original untouched.
type Wrapper struct {
	target Target
	check  Checker
	name   string
	args   []any
	named  map[string]any
}

// New returns a Wrapper for target whose readiness is decided by the
// arity checker derived from sig. It returns an error if sig is
// malformed. The target is not called.
func New(target Target, sig Signature) (*Wrapper, error) {
	check, err := sig.Checker()
	if err != nil {
		return nil, err
	}
	return &Wrapper{target: target, check: check, name: sig.Name}, nil
}

// NewWithChecker returns a Wrapper for target that uses the given
// checker instead of one derived from a Signature.
func NewWithChecker(target Target, check Checker) *Wrapper {
	return &Wrapper{target: target, check: check}
}

// Call invokes the wrapper with positional arguments only.
// It's equivalent to w.CallNamed(args, nil).
func (w *Wrapper) Call(args ...any) (any, error) {
	return w.CallNamed(args, nil)
}

// CallNamed invokes the wrapper with positional and named arguments.
// The arguments are merged with those accumulated so far: positional
// arguments are appended in order and named arguments overlay earlier
// bindings with the same name.
//
// If the merged arguments satisfy the wrapper's checker, the target is
// called and its result and error are returned directly. Otherwise the
// result is a new *Wrapper holding the merged arguments. A usage error
// reported by the checker (see ErrUnrecognizedArg) aborts the call
// without evaluating the target.
func (w *Wrapper) CallNamed(args []any, named map[string]any) (any, error) {
	mergedArgs := slices.Concat(w.args, args)
	mergedNamed := mergeNamed(w.named, named)
	ok, err := w.check(mergedArgs, mergedNamed)
	if err != nil {
		return nil, err
	}
	if ok {
		return w.target(mergedArgs, mergedNamed)
	}
	return &Wrapper{
		target: w.target,
		check:  w.check,
		name:   w.name,
		args:   mergedArgs,
		named:  mergedNamed,
	}, nil
}

// Name returns the wrapper's display name, usually taken from the
// Signature it was built with. It may be empty.
func (w *Wrapper) Name() string {
	return w.name
}

// Args returns a copy of the positional arguments accumulated so far.
func (w *Wrapper) Args() []any {
	return slices.Clone(w.args)
}

// Named returns a copy of the named arguments accumulated so far.
func (w *Wrapper) Named() map[string]any {
	return maps.Clone(w.named)
}

func (w *Wrapper) String() string {
	if w.name == "" {
		return "<curry.Wrapper>"
	}
	return fmt.Sprintf("<curry.Wrapper of %s>", w.name)
}

// mergeNamed overlays m1 onto m0; m1 wins on conflicting keys. The
// result never aliases either map: it may be handed to the target,
// which is free to scribble on it.
func mergeNamed(m0, m1 map[string]any) map[string]any {
	if len(m0)+len(m1) == 0 {
		return nil
	}
	m := make(map[string]any, len(m0)+len(m1))
	maps.Copy(m, m0)
	maps.Copy(m, m1)
	return m
}
