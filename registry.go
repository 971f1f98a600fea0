package pdf

import (
	"math"
	"sync/atomic"
)

// A Registry hands out object numbers. Numbers start at 1 and strictly
// increase; no two calls to Next ever return the same number, whichever
// goroutines make them. Documents that share a Registry never share an
// object number.
//
// The zero value is ready to use.
type Registry struct {
	last atomic.Uint32
}

// NewRegistry returns a registry whose first number is 1.
func NewRegistry() *Registry {
	return &Registry{}
}

// Next returns the next unused object number. Once math.MaxUint32 has
// been handed out it fails with ErrIdentitySpaceExhausted.
func (r *Registry) Next() (uint32, error) {
	for {
		n := r.last.Load()
		if n == math.MaxUint32 {
			return 0, ErrIdentitySpaceExhausted
		}
		if r.last.CompareAndSwap(n, n+1) {
			return n + 1, nil
		}
	}
}
