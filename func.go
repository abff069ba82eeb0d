package curry

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// NewFunc returns a Wrapper for an ordinary Go function, deriving the
// checker from the function's type. Go reflection does not expose
// declared parameter names, so they are synthesized as a0, a1, ... in
// declaration order unless names are given, in which case there must be
// exactly one per parameter. A variadic final parameter is treated as a
// single trailing optional parameter.
//
// NewFunc returns an error if fn is not a non-nil function.
func NewFunc(fn any, names ...string) (*Wrapper, error) {
	target, sig, err := Func(fn)
	if err != nil {
		return nil, err
	}
	if len(names) > 0 {
		if len(names) != len(sig.Params) {
			return nil, fmt.Errorf("curry %s: %d names for %d parameters", sig.Name, len(names), len(sig.Params))
		}
		// Copy in place: the target resolves named arguments
		// against the same backing array.
		copy(sig.Params, names)
	}
	return New(target, sig)
}

// Func adapts an ordinary Go function to a Target and derives its
// Signature. The target supplies parameters positionally first, then by
// the names in the Signature; it checks argument count and types and
// reports a descriptive error rather than panicking.
//
// If fn's final result is an error, the target returns it as its own
// error result. Multiple non-error results are returned as a []any.
func Func(fn any) (Target, Signature, error) {
	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		return nil, Signature{}, fmt.Errorf("cannot curry %T: not a function", fn)
	}
	if fv.IsNil() {
		return nil, Signature{}, fmt.Errorf("cannot curry a nil function")
	}
	ft := fv.Type()
	sig := Signature{
		Name:   funcName(fv),
		Params: make([]string, ft.NumIn()),
	}
	for i := range sig.Params {
		sig.Params[i] = fmt.Sprintf("a%d", i)
	}
	if ft.IsVariadic() {
		sig.Defaults = 1
	}
	params := sig.Params
	target := func(args []any, named map[string]any) (any, error) {
		return callFunc(fv, params, args, named)
	}
	return target, sig, nil
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func callFunc(fv reflect.Value, params []string, args []any, named map[string]any) (any, error) {
	ft := fv.Type()
	numIn := ft.NumIn()
	fixed := numIn
	if ft.IsVariadic() {
		fixed = numIn - 1
	} else if len(args) > numIn {
		return nil, fmt.Errorf("too many arguments: got %d, want %d", len(args), numIn)
	}
	in := make([]reflect.Value, 0, max(len(args), numIn))
	for i := 0; i < fixed; i++ {
		var x any
		switch {
		case i < len(args):
			x = args[i]
		default:
			v, ok := named[params[i]]
			if !ok {
				return nil, fmt.Errorf("missing argument %s", params[i])
			}
			x = v
		}
		v, err := argValue(x, ft.In(i), params[i])
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}
	if ft.IsVariadic() {
		elem := ft.In(numIn - 1).Elem()
		for i := fixed; i < len(args); i++ {
			v, err := argValue(args[i], elem, fmt.Sprintf("a%d", i))
			if err != nil {
				return nil, err
			}
			in = append(in, v)
		}
	}
	out := fv.Call(in)
	var err error
	if n := len(out); n > 0 && ft.Out(n-1) == errType {
		if !out[n-1].IsNil() {
			err = out[n-1].Interface().(error)
		}
		out = out[:n-1]
	}
	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	rs := make([]any, len(out))
	for i, v := range out {
		rs[i] = v.Interface()
	}
	return rs, err
}

func argValue(x any, t reflect.Type, name string) (reflect.Value, error) {
	if x == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("argument %s: cannot use nil as %s", name, t)
	}
	v := reflect.ValueOf(x)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("argument %s: cannot use %T as %s", name, x, t)
	}
	return v, nil
}

// funcName returns a short name for a function value,
// like "curry_test.TestNewFunc.func1".
func funcName(fv reflect.Value) string {
	f := runtime.FuncForPC(fv.Pointer())
	if f == nil {
		return ""
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
