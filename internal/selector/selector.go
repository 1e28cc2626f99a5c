// Package selector provides memoized derivations over grid state.
//
// A selector is a pure function from a state container to a view of it.
// Derived selectors declare their input selectors and only recompute when at
// least one input changed by reference. Slices and maps are compared by their
// backing storage, pointers by address, and everything else with ==.
//
//	visible := selector.Create2(allColumns, visibilityModel,
//	    func(cols []*columns.ColDef, model columns.VisibilityModel) []*columns.ColDef {
//	        ...
//	    })
//	cols := visible.Select(state)
//
// Each Selector owns its memo. Selectors are safe for concurrent use, but
// they are normally read under the owning grid's lock.
package selector

import (
	"reflect"
	"sync"
)

// Func reads a value out of a state container S.
type Func[S, R any] func(S) R

// Selector is a memoized derivation.
type Selector[S, R any] struct {
	mu      sync.Mutex
	inputs  []func(S) any
	combine func(args []any) R

	valid    bool
	lastArgs []any
	last     R
	computes int
}

// Select returns the derived value, recomputing only when an input changed.
func (s *Selector[S, R]) Select(state S) R {
	args := make([]any, len(s.inputs))
	for i, in := range s.inputs {
		args[i] = in(state)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.valid && sameArgs(s.lastArgs, args) {
		return s.last
	}
	s.last = s.combine(args)
	s.lastArgs = args
	s.valid = true
	s.computes++
	return s.last
}

// Func returns the selector as a plain function so it can feed other selectors.
func (s *Selector[S, R]) Func() Func[S, R] {
	return s.Select
}

// Recomputations reports how many times the combiner ran.
func (s *Selector[S, R]) Recomputations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computes
}

// Reset drops the memo.
func (s *Selector[S, R]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid = false
	s.lastArgs = nil
	var zero R
	s.last = zero
}

func erase[S, A any](f Func[S, A]) func(S) any {
	return func(s S) any { return f(s) }
}

// Create1 builds a selector with one input.
func Create1[S, A, R any](a Func[S, A], fn func(A) R) *Selector[S, R] {
	return &Selector[S, R]{
		inputs: []func(S) any{erase(a)},
		combine: func(args []any) R {
			return fn(cast[A](args[0]))
		},
	}
}

// Create2 builds a selector with two inputs.
func Create2[S, A, B, R any](a Func[S, A], b Func[S, B], fn func(A, B) R) *Selector[S, R] {
	return &Selector[S, R]{
		inputs: []func(S) any{erase(a), erase(b)},
		combine: func(args []any) R {
			return fn(cast[A](args[0]), cast[B](args[1]))
		},
	}
}

// Create3 builds a selector with three inputs.
func Create3[S, A, B, C, R any](a Func[S, A], b Func[S, B], c Func[S, C], fn func(A, B, C) R) *Selector[S, R] {
	return &Selector[S, R]{
		inputs: []func(S) any{erase(a), erase(b), erase(c)},
		combine: func(args []any) R {
			return fn(cast[A](args[0]), cast[B](args[1]), cast[C](args[2]))
		},
	}
}

// Create4 builds a selector with four inputs.
func Create4[S, A, B, C, D, R any](a Func[S, A], b Func[S, B], c Func[S, C], d Func[S, D], fn func(A, B, C, D) R) *Selector[S, R] {
	return &Selector[S, R]{
		inputs: []func(S) any{erase(a), erase(b), erase(c), erase(d)},
		combine: func(args []any) R {
			return fn(cast[A](args[0]), cast[B](args[1]), cast[C](args[2]), cast[D](args[3]))
		},
	}
}

// cast converts an erased argument back, tolerating nil interfaces.
func cast[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

func sameArgs(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Identical(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Identical reports whether a and b are the same value by reference.
// Slices match when they share backing storage and length, maps and pointers
// when they share the same address. Other comparable values use ==.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	if !va.Comparable() {
		return false
	}
	return a == b
}
