package curry_test

import (
	"fmt"

	"github.com/rogpeppe/curry"
)

func ExampleWrapper() {
	gt, _ := curry.NewFunc(func(x, y int) bool { return x > y }, "x", "y")

	r, _ := gt.Call(40)
	ltForty := r.(*curry.Wrapper)

	r1, _ := ltForty.Call(39)
	r2, _ := ltForty.Call(50)
	fmt.Println(r1, r2)
	// Output: true false
}

func ExampleWrap() {
	// Supplying only a checker yields a reusable factory
	// awaiting the callable to wrap.
	r, _ := curry.Wrap.CallNamed(nil, map[string]any{
		"checker": curry.CountChecker(3),
	})
	factory := r.(*curry.Wrapper)

	sum := curry.Target(func(args []any, named map[string]any) (any, error) {
		total := 0
		for _, a := range args {
			total += a.(int)
		}
		return total, nil
	})
	r, _ = factory.Call(sum)
	w := r.(*curry.Wrapper)

	r, _ = w.Call(1, 2)
	r, _ = r.(*curry.Wrapper).Call(3)
	fmt.Println(r)
	// Output: 6
}

func ExampleWrapper_Bind() {
	greet := func(args []any, named map[string]any) (any, error) {
		return args[1].(string) + ", " + args[0].(string), nil
	}
	w, _ := curry.New(greet, curry.Signature{
		Name:   "greet",
		Params: []string{"self", "greeting"},
	})

	bound := w.Bind("world")
	r, _ := bound.Call("hello")
	fmt.Println(r)
	// Output: hello, world
}
