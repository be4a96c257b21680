// Package fdvar provides finite-domain constraint variables.
// This file implements the fixed-size variable containers a search or
// branching layer iterates over: an owned sequence (VarArray) and a view of
// externally owned variables re-expressed as indexes into a shared arena
// (VarRefs), both behind the Array access contract.
package fdvar

import (
	"fmt"
	"iter"
)

// Cloner is satisfied by every variable type in this package. Deep cloning
// is what makes clone-to-branch search possible: each branch duplicates its
// whole variable set instead of sharing mutable domains.
type Cloner[V any] interface {
	Clone() V
}

// Array is the shared access contract over a fixed-size sequence of
// variables. Constraints written against Array work over owned sequences
// and arena views alike.
type Array[V any] interface {
	// Get returns the variable at position i, or false when i is out of
	// bounds.
	Get(i int) (V, bool)

	// At returns the variable at position i without a bounds check. The
	// caller must have established validity of i through Get or Len;
	// violating the contract panics with the usual slice semantics.
	At(i int) V

	// Len returns the number of variables.
	Len() int

	// All returns a forward sequence over positions and variables.
	All() iter.Seq2[int, V]
}

// VarArray owns a fixed-size sequence of variables.
type VarArray[V Cloner[V]] struct {
	vars []V
}

// NewVarArray creates an array of n variables, each an independent clone of
// the prototype. Returns an error if n is not positive.
func NewVarArray[V Cloner[V]](n int, prototype V) (*VarArray[V], error) {
	if n <= 0 {
		return nil, fmt.Errorf("array requires at least one variable, got %d", n)
	}
	vars := make([]V, n)
	for i := range vars {
		vars[i] = prototype.Clone()
	}
	return &VarArray[V]{vars: vars}, nil
}

// NewVarArrayFromSlice creates an array taking ownership of vars. Returns
// an error if vars is empty.
func NewVarArrayFromSlice[V Cloner[V]](vars []V) (*VarArray[V], error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("array requires at least one variable")
	}
	return &VarArray[V]{vars: vars}, nil
}

// Get returns the variable at position i, or false when out of bounds.
func (a *VarArray[V]) Get(i int) (V, bool) {
	if i < 0 || i >= len(a.vars) {
		var zero V
		return zero, false
	}
	return a.vars[i], true
}

// At returns the variable at position i without a bounds check.
func (a *VarArray[V]) At(i int) V {
	return a.vars[i]
}

// Len returns the number of variables.
func (a *VarArray[V]) Len() int {
	return len(a.vars)
}

// All returns a forward sequence over positions and variables.
func (a *VarArray[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range a.vars {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy: every variable is cloned, so mutating the copy
// never touches the original branch.
func (a *VarArray[V]) Clone() *VarArray[V] {
	vars := make([]V, len(a.vars))
	for i, v := range a.vars {
		vars[i] = v.Clone()
	}
	return &VarArray[V]{vars: vars}
}

// VarRefs is a view over variables owned elsewhere. Instead of holding
// pointers into foreign storage it holds indexes into a shared arena, so a
// constraint can operate over a subset or permutation of the arena without
// copying and without unchecked dereference. The view borrows the arena:
// it must not outlive it, and cloning the arena requires building a new
// view against the clone.
type VarRefs[V any] struct {
	arena []V
	index []int
}

// NewVarRefs creates a view selecting arena positions index, in order.
// Returns an error if index is empty or any position is out of range.
func NewVarRefs[V any](arena []V, index []int) (*VarRefs[V], error) {
	if len(index) == 0 {
		return nil, fmt.Errorf("view requires at least one variable")
	}
	for _, pos := range index {
		if pos < 0 || pos >= len(arena) {
			return nil, fmt.Errorf("arena position %d out of range [0, %d)", pos, len(arena))
		}
	}
	return &VarRefs[V]{arena: arena, index: index}, nil
}

// Get returns the variable at view position i, or false when out of bounds.
func (r *VarRefs[V]) Get(i int) (V, bool) {
	if i < 0 || i >= len(r.index) {
		var zero V
		return zero, false
	}
	return r.arena[r.index[i]], true
}

// At returns the variable at view position i without a bounds check.
func (r *VarRefs[V]) At(i int) V {
	return r.arena[r.index[i]]
}

// Len returns the number of variables in the view.
func (r *VarRefs[V]) Len() int {
	return len(r.index)
}

// All returns a forward sequence over view positions and variables.
func (r *VarRefs[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, pos := range r.index {
			if !yield(i, r.arena[pos]) {
				return
			}
		}
	}
}

// Compile-time contract checks.
var (
	_ Array[*IntVar[int]]  = (*VarArray[*IntVar[int]])(nil)
	_ Array[*IntVar[int]]  = (*VarRefs[*IntVar[int]])(nil)
	_ Array[*BoolVar]      = (*VarArray[*BoolVar])(nil)
	_ Cloner[*IntVar[int]] = (*IntVar[int])(nil)
	_ Cloner[*BoolVar]     = (*BoolVar)(nil)
)
