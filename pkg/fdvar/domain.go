// Package fdvar provides finite-domain constraint variables.
// This file defines the capability interfaces a domain representation must
// satisfy, enabling propagators to be agnostic to the underlying encoding
// (value list, bound pair, bitset, interval run-list).
package fdvar

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Variable represents a decision variable: an identity owning exactly one
// domain of admissible values. A variable is bound when its domain is a
// singleton. Variables are never destroyed explicitly; whatever structure
// holds them duplicates them wholesale when a search branches.
type Variable[T any] interface {
	// IsBound returns true if the domain contains exactly one value.
	IsBound() bool

	// Value returns the single admissible value if the variable is bound.
	// The second result is false when the domain holds zero or several
	// values.
	Value() (T, bool)
}

// FiniteDomain is a domain with a countable number of remaining values.
// Every domain in this package is finite.
type FiniteDomain[T any] interface {
	Variable[T]

	// Size returns the cardinality of the remaining admissible values.
	Size() int
}

// IterableDomain is a domain whose values can be enumerated in ascending
// order. The returned sequence is a snapshot: mutating the domain after
// Values is called does not affect a sequence already produced, and the
// sequence may be ranged over more than once.
type IterableDomain[T any] interface {
	FiniteDomain[T]

	// Values returns a restartable sequence over the current admissible
	// values in ascending order.
	Values() iter.Seq[T]
}

// AssignableDomain is a domain that can be restricted to a single value.
type AssignableDomain[T any] interface {
	// SetValue restricts the domain to exactly {value}. It returns
	// NoChange if the domain already was {value}, BothBoundsChange on a
	// successful restriction, and ErrDomainWipeout if value is not
	// currently admissible.
	SetValue(value T) (Change, error)
}

// OrderedDomain is a domain over a totally ordered type, exposing its
// bounds and bound-pruning operations. Each pruning operation returns
// NoChange if the bound already held, the bound-change classification for
// the pruned side otherwise, and ErrDomainWipeout if applying the bound
// would empty the domain.
//
// Binary relations between two variables (precedence and the like) are
// built by invoking one bound operation on each side and merging the two
// classifications; see LessThan and its siblings. The interface itself
// never couples two variables.
type OrderedDomain[T constraints.Ordered] interface {
	FiniteDomain[T]

	// Min returns the current minimum, or false when the domain is empty.
	Min() (T, bool)

	// Max returns the current maximum, or false when the domain is empty.
	Max() (T, bool)

	// StrictUpperBound removes every value >= ub.
	StrictUpperBound(ub T) (Change, error)

	// WeakUpperBound removes every value > ub.
	WeakUpperBound(ub T) (Change, error)

	// StrictLowerBound removes every value <= lb.
	StrictLowerBound(lb T) (Change, error)

	// WeakLowerBound removes every value < lb.
	WeakLowerBound(lb T) (Change, error)
}

// EqualDomain couples two domains through equality reasoning. Other is the
// concrete collaborating type; pair operations return one classification
// per side.
type EqualDomain[T any, Other any] interface {
	// Equal destructively intersects both domains, leaving each equal to
	// the intersection. Classifications are computed per side against that
	// side's pre-operation size and bounds. Both sides fail with
	// ErrDomainWipeout when the intersection is empty.
	Equal(other Other) (Change, Change, error)

	// NotEqual removes the bound value of either singleton side from the
	// other side. When neither side is a singleton yet, both
	// classifications are NoChange and the constraint is deferred until
	// one side narrows to a single value. The check is one-directional
	// per call; it is not iterated to a fixpoint.
	NotEqual(other Other) (Change, Change, error)
}

// PrunableDomain is a domain supporting arbitrary value removal.
type PrunableDomain[T any] interface {
	FiniteDomain[T]

	// InValues restricts the domain to its intersection with the supplied
	// collection, which may be unsorted and contain duplicates.
	InValues(values []T) (Change, error)

	// RemoveValue deletes value if present. Values outside the current
	// bound range are fast-rejected with NoChange and no search.
	RemoveValue(value T) (Change, error)

	// RemoveIf deletes every value satisfying pred, classifying the net
	// effect in one pass over pre/post size, min, and max.
	RemoveIf(pred func(T) bool) (Change, error)

	// RetainIf deletes every value not satisfying pred.
	RetainIf(pred func(T) bool) (Change, error)
}

// Compile-time contract checks for the concrete representations.
var (
	_ IterableDomain[int]              = (*IntVar[int])(nil)
	_ AssignableDomain[int]            = (*IntVar[int])(nil)
	_ OrderedDomain[int]               = (*IntVar[int])(nil)
	_ EqualDomain[int, *IntVar[int]]   = (*IntVar[int])(nil)
	_ PrunableDomain[int]              = (*IntVar[int])(nil)
	_ IterableDomain[bool]             = (*BoolVar)(nil)
	_ AssignableDomain[bool]           = (*BoolVar)(nil)
	_ EqualDomain[bool, *BoolVar]      = (*BoolVar)(nil)
	_ PrunableDomain[bool]             = (*BoolVar)(nil)
	_ OrderedDomain[int]               = (*Observed[int])(nil)
	_ EqualDomain[int, *Observed[int]] = (*Observed[int])(nil)
	_ PrunableDomain[int]              = (*Observed[int])(nil)
)
