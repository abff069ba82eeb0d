package curry

// Checker reports whether the arguments accumulated by a Wrapper are
// sufficient to call its target now. A non-nil error indicates a usage
// error at the offending call, such as a named argument the target
// cannot accept; it stops the call without evaluating the target.
type Checker func(args []any, named map[string]any) (bool, error)

// CountChecker returns a checker that is satisfied once n positional
// arguments have accumulated. Named arguments play no part in the
// decision but are still forwarded to the target on evaluation.
func CountChecker(n int) Checker {
	return func(args []any, named map[string]any) (bool, error) {
		return len(args) >= n, nil
	}
}
