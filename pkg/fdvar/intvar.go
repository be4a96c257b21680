// Package fdvar provides finite-domain constraint variables.
// This file implements IntVar, the sorted value-set domain representation:
// an ascending, duplicate-free slice with binary-search bound pruning and
// merge-intersection equality joins.
package fdvar

import (
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// IntVar is a finite-domain variable backed by an ascending, duplicate-free
// value slice. It is the reference implementation of the domain capability
// interfaces; bound-pair, bitset, and interval run-list encodings satisfy
// the same contract with different cost profiles.
//
// Cost profile: bound pruning is O(log n) to locate the cut plus O(1) to
// truncate (dropped elements are released lazily); single-value existence
// and removal are O(log n) searches; equality joins and predicate pruning
// scan the whole sequence in O(n).
//
// IntVar mutates in place and is exclusively owned by its holder. Parallel
// search must clone the whole variable set per branch (Clone is a deep
// copy) rather than share one instance across branches.
type IntVar[T constraints.Integer] struct {
	// values is always ascending and duplicate-free. An empty slice is the
	// explicit invalid marker left behind after a wipeout.
	values []T
}

// NewIntVar creates a variable whose domain is the closed interval
// [min, max]. Returns an error if min > max.
func NewIntVar[T constraints.Integer](min, max T) (*IntVar[T], error) {
	if min > max {
		return nil, fmt.Errorf("interval [%v, %v] is empty", min, max)
	}
	values := make([]T, 0, int(max-min)+1)
	for v := min; ; v++ {
		values = append(values, v)
		if v == max {
			break
		}
	}
	return &IntVar[T]{values: values}, nil
}

// NewIntVarFromValues creates a variable whose domain holds the given
// values, sorted and deduplicated. Returns an error if values is empty.
func NewIntVarFromValues[T constraints.Integer](values []T) (*IntVar[T], error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("domain requires at least one value")
	}
	vs := slices.Clone(values)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	return &IntVar[T]{values: vs}, nil
}

// Size returns the number of remaining admissible values.
func (v *IntVar[T]) Size() int {
	return len(v.values)
}

// IsBound returns true if the domain contains exactly one value.
func (v *IntVar[T]) IsBound() bool {
	return len(v.values) == 1
}

// Value returns the single admissible value if the variable is bound.
func (v *IntVar[T]) Value() (T, bool) {
	if len(v.values) != 1 {
		var zero T
		return zero, false
	}
	return v.values[0], true
}

// Min returns the current minimum, or false when the domain is empty.
func (v *IntVar[T]) Min() (T, bool) {
	if len(v.values) == 0 {
		var zero T
		return zero, false
	}
	return v.values[0], true
}

// Max returns the current maximum, or false when the domain is empty.
func (v *IntVar[T]) Max() (T, bool) {
	if len(v.values) == 0 {
		var zero T
		return zero, false
	}
	return v.values[len(v.values)-1], true
}

// Has returns true if value is currently admissible. O(log n).
func (v *IntVar[T]) Has(value T) bool {
	_, found := slices.BinarySearch(v.values, value)
	return found
}

// Values returns a restartable ascending sequence over the current domain.
// The sequence is a snapshot: later mutation of the variable does not
// affect it.
func (v *IntVar[T]) Values() iter.Seq[T] {
	snapshot := slices.Clone(v.values)
	return func(yield func(T) bool) {
		for _, val := range snapshot {
			if !yield(val) {
				return
			}
		}
	}
}

// ToSlice returns the current domain as a fresh ascending slice.
func (v *IntVar[T]) ToSlice() []T {
	return slices.Clone(v.values)
}

// Clone returns a deep copy sharing no storage with the receiver. Search
// layers clone the whole variable set before branching.
func (v *IntVar[T]) Clone() *IntVar[T] {
	return &IntVar[T]{values: slices.Clone(v.values)}
}

// SameDomain returns true if both variables currently admit exactly the
// same values.
func (v *IntVar[T]) SameDomain(other *IntVar[T]) bool {
	return slices.Equal(v.values, other.values)
}

// invalidate clears the representation so any subsequent read is
// unambiguously empty.
func (v *IntVar[T]) invalidate() {
	v.values = nil
}

// classify compares the post-mutation domain against pre-operation size and
// bounds, invalidating on wipeout. Every mutating operation that cannot
// name its classification directly funnels through here.
func (v *IntVar[T]) classify(prevMin, prevMax T, prevSize int) (Change, error) {
	if len(v.values) == 0 {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	if len(v.values) == prevSize {
		return NoChange, nil
	}
	minMoved := v.values[0] != prevMin
	maxMoved := v.values[len(v.values)-1] != prevMax
	switch {
	case minMoved && maxMoved:
		return BothBoundsChange, nil
	case minMoved:
		return MinBoundChange, nil
	case maxMoved:
		return MaxBoundChange, nil
	default:
		return ValuesChange, nil
	}
}

// SetValue restricts the domain to exactly {value}. Returns NoChange if the
// domain already was {value}; ErrDomainWipeout if value is not admissible.
func (v *IntVar[T]) SetValue(value T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if bound, ok := v.Value(); ok && bound == value {
		return NoChange, nil
	}
	if value < v.values[0] || value > v.values[len(v.values)-1] {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	if _, found := slices.BinarySearch(v.values, value); !found {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	v.values = []T{value}
	return BothBoundsChange, nil
}

// StrictUpperBound removes every value >= ub. Returns NoChange if the bound
// already held, MaxBoundChange otherwise, ErrDomainWipeout if no value lies
// below ub.
func (v *IntVar[T]) StrictUpperBound(ub T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if v.values[len(v.values)-1] < ub {
		return NoChange, nil
	}
	if v.values[0] >= ub {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	cut := sort.Search(len(v.values), func(i int) bool { return v.values[i] >= ub })
	v.values = v.values[:cut]
	return MaxBoundChange, nil
}

// WeakUpperBound removes every value > ub.
func (v *IntVar[T]) WeakUpperBound(ub T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if v.values[len(v.values)-1] <= ub {
		return NoChange, nil
	}
	if v.values[0] > ub {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	cut := sort.Search(len(v.values), func(i int) bool { return v.values[i] > ub })
	v.values = v.values[:cut]
	return MaxBoundChange, nil
}

// StrictLowerBound removes every value <= lb. Returns NoChange if the bound
// already held, MinBoundChange otherwise, ErrDomainWipeout if no value lies
// above lb.
func (v *IntVar[T]) StrictLowerBound(lb T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if v.values[0] > lb {
		return NoChange, nil
	}
	if v.values[len(v.values)-1] <= lb {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	cut := sort.Search(len(v.values), func(i int) bool { return v.values[i] > lb })
	v.values = v.values[cut:]
	return MinBoundChange, nil
}

// WeakLowerBound removes every value < lb.
func (v *IntVar[T]) WeakLowerBound(lb T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if v.values[0] >= lb {
		return NoChange, nil
	}
	if v.values[len(v.values)-1] < lb {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	cut := sort.Search(len(v.values), func(i int) bool { return v.values[i] >= lb })
	v.values = v.values[cut:]
	return MinBoundChange, nil
}

// intersectSorted merge-intersects two ascending duplicate-free slices.
func intersectSorted[T constraints.Integer](a, b []T) []T {
	out := make([]T, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// changeAgainst classifies replacing the current domain with next, which
// must be a non-empty subset of it.
func (v *IntVar[T]) changeAgainst(next []T) Change {
	if len(v.values) == len(next) {
		return NoChange
	}
	minMoved := v.values[0] != next[0]
	maxMoved := v.values[len(v.values)-1] != next[len(next)-1]
	switch {
	case minMoved && maxMoved:
		return BothBoundsChange
	case minMoved:
		return MinBoundChange
	case maxMoved:
		return MaxBoundChange
	default:
		return ValuesChange
	}
}

// Equal destructively intersects both domains, leaving each equal to the
// intersection. Returns one classification per side; both sides fail with
// ErrDomainWipeout when the intersection is empty.
func (v *IntVar[T]) Equal(other *IntVar[T]) (Change, Change, error) {
	if len(v.values) == 0 || len(other.values) == 0 {
		v.invalidate()
		other.invalidate()
		return NoChange, NoChange, ErrDomainWipeout
	}
	joined := intersectSorted(v.values, other.values)
	if len(joined) == 0 {
		v.invalidate()
		other.invalidate()
		return NoChange, NoChange, ErrDomainWipeout
	}
	chSelf := v.changeAgainst(joined)
	chOther := other.changeAgainst(joined)
	v.values = joined
	other.values = slices.Clone(joined)
	return chSelf, chOther, nil
}

// NotEqual removes the bound value of either singleton side from the other
// side. When neither side is a singleton yet, both classifications are
// NoChange: the disequality is deferred until one side narrows. The check
// is deliberately one-directional per call and not iterated to a fixpoint;
// full disequality propagation belongs to the layer above.
func (v *IntVar[T]) NotEqual(other *IntVar[T]) (Change, Change, error) {
	if value, ok := v.Value(); ok {
		ch, err := other.RemoveValue(value)
		return NoChange, ch, err
	}
	if value, ok := other.Value(); ok {
		ch, err := v.RemoveValue(value)
		return ch, NoChange, err
	}
	return NoChange, NoChange, nil
}

// InValues restricts the domain to its intersection with values, which may
// be unsorted and contain duplicates.
func (v *IntVar[T]) InValues(values []T) (Change, error) {
	vs := slices.Clone(values)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	return v.InSortedValues(vs)
}

// InSortedValues restricts the domain to its intersection with values,
// which must already be ascending and duplicate-free.
func (v *IntVar[T]) InSortedValues(values []T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	joined := intersectSorted(v.values, values)
	if len(joined) == 0 {
		v.invalidate()
		return NoChange, ErrDomainWipeout
	}
	ch := v.changeAgainst(joined)
	v.values = joined
	return ch, nil
}

// RemoveValue deletes value if present. Values outside the current bound
// range are fast-rejected with NoChange before any search. Removing the
// last value fails with ErrDomainWipeout.
func (v *IntVar[T]) RemoveValue(value T) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	if value < v.values[0] || value > v.values[len(v.values)-1] {
		return NoChange, nil
	}
	idx, found := slices.BinarySearch(v.values, value)
	if !found {
		return NoChange, nil
	}
	v.values = slices.Delete(v.values, idx, idx+1)
	switch {
	case len(v.values) == 0:
		v.invalidate()
		return NoChange, ErrDomainWipeout
	case idx == 0:
		return MinBoundChange, nil
	case idx == len(v.values):
		return MaxBoundChange, nil
	default:
		return ValuesChange, nil
	}
}

// RemoveIf deletes every value satisfying pred, classifying the net effect
// against pre-operation size and bounds in one pass.
func (v *IntVar[T]) RemoveIf(pred func(T) bool) (Change, error) {
	if len(v.values) == 0 {
		return NoChange, ErrDomainWipeout
	}
	prevMin, prevMax, prevSize := v.values[0], v.values[len(v.values)-1], len(v.values)
	v.values = slices.DeleteFunc(v.values, pred)
	return v.classify(prevMin, prevMax, prevSize)
}

// RetainIf deletes every value not satisfying pred.
func (v *IntVar[T]) RetainIf(pred func(T) bool) (Change, error) {
	return v.RemoveIf(func(value T) bool { return !pred(value) })
}

// String returns a human-readable representation such as "{1..9}" for
// consecutive domains, "{2,4,7}" otherwise, and "{}" after a wipeout.
func (v *IntVar[T]) String() string {
	n := len(v.values)
	if n == 0 {
		return "{}"
	}
	if n == 1 {
		return fmt.Sprintf("{%v}", v.values[0])
	}
	if int(v.values[n-1]-v.values[0]) == n-1 {
		return fmt.Sprintf("{%v..%v}", v.values[0], v.values[n-1])
	}
	var b strings.Builder
	b.WriteString("{")
	for i, val := range v.values {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%v", val)
		if i >= 19 && n > 20 {
			fmt.Fprintf(&b, ",...+%d more", n-20)
			break
		}
	}
	b.WriteString("}")
	return b.String()
}
