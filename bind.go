package curry

import (
	"reflect"
	"slices"
	"sync"
)

// Bind returns a wrapper bound to recv: a new Wrapper whose accumulated
// positional arguments start with recv. For a target whose first
// parameter is the receiver, this gives conventional bound-method
// semantics; the bound wrapper then needs only the remaining arguments.
func (w *Wrapper) Bind(recv any) *Wrapper {
	return &Wrapper{
		target: w.target,
		check:  w.check,
		name:   w.name,
		args:   slices.Concat([]any{recv}, w.args),
		named:  w.named,
	}
}

// A BindCache hands out bound wrappers with a stable identity: repeated
// calls with the same receiver and name return the same *Wrapper. It
// replaces stashing the bound wrapper on the receiver itself, which
// risks colliding with unrelated attributes of the receiver.
//
// The zero value is ready to use. A BindCache may be used concurrently.
type BindCache struct {
	mu      sync.Mutex
	entries map[bindKey]*Wrapper
}

type bindKey struct {
	recv any
	name string
}

// Bind returns w bound to recv, caching the result under (recv, name).
// A receiver of a non-comparable type cannot be used as a cache key, so
// it gets a fresh bound wrapper each time instead.
func (c *BindCache) Bind(recv any, name string, w *Wrapper) *Wrapper {
	if recv != nil && !reflect.TypeOf(recv).Comparable() {
		return w.Bind(recv)
	}
	key := bindKey{recv, name}
	c.mu.Lock()
	defer c.mu.Unlock()
	if bound, ok := c.entries[key]; ok {
		return bound
	}
	bound := w.Bind(recv)
	if c.entries == nil {
		c.entries = make(map[bindKey]*Wrapper)
	}
	c.entries[key] = bound
	return bound
}
