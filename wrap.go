package curry

import (
	"fmt"
	"maps"
	"slices"
)

// Wrap is the constructor in curried form: it is itself a Wrapper, so
// it can be partially applied just like the wrappers it builds. Its
// parameters are, in order:
//
//	fn      the callable to wrap: an ordinary Go function (arity
//	        inferred as for NewFunc) or a Target (which requires an
//	        explicit checker or sig).
//	checker optional: a Checker, or a Signature to derive one from.
//	args    optional: initial positional arguments ([]any).
//	named   optional: initial named arguments (map[string]any).
//
// Calling Wrap with a callable returns a *Wrapper for it. Calling it
// with only a checker returns a factory awaiting the callable, which is
// what makes decorator-style use possible:
//
//	f, _ := curry.Wrap.CallNamed(nil, map[string]any{"checker": curry.CountChecker(2)})
//	factory := f.(*curry.Wrapper)
//	w, _ := factory.Call(myFunc) // w is a *curry.Wrapper
var Wrap = mustNew(wrapTarget, Signature{
	Name:     "curry.Wrap",
	Params:   []string{"fn", "checker", "args", "named"},
	Defaults: 3,
})

func mustNew(target Target, sig Signature) *Wrapper {
	w, err := New(target, sig)
	if err != nil {
		panic(err)
	}
	return w
}

// wrapTarget builds a Wrapper from the arguments accumulated by Wrap,
// mirroring the construction contract of New/NewFunc/NewWithChecker.
func wrapTarget(args []any, named map[string]any) (any, error) {
	get := func(i int, name string) any {
		if i < len(args) {
			return args[i]
		}
		return named[name]
	}

	var (
		target   Target
		sig      Signature
		haveSig  bool
		fallback Checker
	)
	switch fn := get(0, "fn").(type) {
	case nil:
		return nil, fmt.Errorf("curry.Wrap: no callable supplied")
	case Target:
		target = fn
	case func(args []any, named map[string]any) (any, error):
		target = fn
	case *Wrapper:
		// Wrapping a wrapper layers a new accumulator in front of
		// it; without an explicit checker it keeps the old one.
		target = fn.CallNamed
		fallback = fn.check
		sig.Name = fn.name
	default:
		t, s, err := Func(fn)
		if err != nil {
			return nil, fmt.Errorf("curry.Wrap: %w", err)
		}
		target, sig, haveSig = t, s, true
	}

	var check Checker
	switch c := get(1, "checker").(type) {
	case nil:
	case Checker:
		check = c
	case func(args []any, named map[string]any) (bool, error):
		check = c
	case Signature:
		cc, err := c.Checker()
		if err != nil {
			return nil, err
		}
		check, sig, haveSig = cc, c, true
	default:
		return nil, fmt.Errorf("curry.Wrap: checker must be a Checker or Signature, got %T", c)
	}
	if check == nil {
		switch {
		case fallback != nil:
			check = fallback
		case haveSig:
			cc, err := sig.Checker()
			if err != nil {
				return nil, err
			}
			check = cc
		default:
			return nil, fmt.Errorf("curry.Wrap: cannot infer arity of a Target; supply a checker or Signature")
		}
	}

	var initArgs []any
	if x := get(2, "args"); x != nil {
		a, ok := x.([]any)
		if !ok {
			return nil, fmt.Errorf("curry.Wrap: args must be []any, got %T", x)
		}
		initArgs = slices.Clone(a)
	}
	var initNamed map[string]any
	if x := get(3, "named"); x != nil {
		m, ok := x.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("curry.Wrap: named must be map[string]any, got %T", x)
		}
		initNamed = maps.Clone(m)
	}

	return &Wrapper{
		target: target,
		check:  check,
		name:   sig.Name,
		args:   initArgs,
		named:  initNamed,
	}, nil
}
