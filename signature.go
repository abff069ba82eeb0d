package curry

import (
	"fmt"
	"slices"
)

// Signature describes a target's declared parameters. It stands in for
// the parameter introspection available in dynamic runtimes: the caller
// states the ordered parameter names, how many of the trailing ones
// have default values, and whether the target accepts named arguments
// beyond those declared.
type Signature struct {
	// Name optionally names the target for diagnostics.
	Name string

	// Params holds the declared parameter names in order.
	Params []string

	// Defaults is the number of trailing parameters in Params that
	// have default values and so need not be supplied.
	Defaults int

	// Variadic reports whether the target accepts arbitrary named
	// arguments beyond those in Params.
	Variadic bool

	// Recv marks the first entry of Params as an implicit receiver
	// supplied by the call machinery rather than by the caller, as
	// with a constructor. The checker disregards it.
	Recv bool
}

// Checker derives the arity evaluation checker for s: it is satisfied
// when every declared parameter without a default has been covered by a
// positional argument or a named binding. When s is not Variadic, a
// named argument that matches no remaining parameter makes the checker
// fail with an error wrapping ErrUnrecognizedArg.
//
// Checker returns an error if s is malformed.
func (s Signature) Checker() (Checker, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	params := s.Params
	if s.Recv {
		params = params[1:]
	}
	// Detach from the caller's slice so later changes can't affect us.
	params = slices.Clone(params)
	defaults, variadic := s.Defaults, s.Variadic
	return func(args []any, named map[string]any) (bool, error) {
		remaining := params[min(len(args), len(params)):]
		if !variadic {
			var unknown []string
			for name := range named {
				if !slices.Contains(remaining, name) {
					unknown = append(unknown, name)
				}
			}
			if len(unknown) > 0 {
				slices.Sort(unknown)
				return false, fmt.Errorf("%w: %v", ErrUnrecognizedArg, unknown)
			}
		}
		required := remaining[:max(0, len(remaining)-defaults)]
		for _, name := range required {
			if _, ok := named[name]; !ok {
				return false, nil
			}
		}
		return true, nil
	}, nil
}

func (s Signature) validate() error {
	seen := make(map[string]bool, len(s.Params))
	for _, name := range s.Params {
		if name == "" {
			return fmt.Errorf("signature %s: empty parameter name", s.describe())
		}
		if seen[name] {
			return fmt.Errorf("signature %s: duplicate parameter %q", s.describe(), name)
		}
		seen[name] = true
	}
	if s.Defaults < 0 || s.Defaults > len(s.Params) {
		return fmt.Errorf("signature %s: %d defaults for %d parameters", s.describe(), s.Defaults, len(s.Params))
	}
	if s.Recv {
		if len(s.Params) == 0 {
			return fmt.Errorf("signature %s: receiver with no parameters", s.describe())
		}
		if s.Defaults == len(s.Params) {
			return fmt.Errorf("signature %s: receiver cannot have a default", s.describe())
		}
	}
	return nil
}

func (s Signature) describe() string {
	if s.Name == "" {
		return "(unnamed)"
	}
	return s.Name
}
