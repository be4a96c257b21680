// Package fdvar provides finite-domain constraint variables.
// This file defines the Change classification algebra describing how a
// domain mutation altered a variable's domain, with a commutative merge
// and a subsumption order used by propagation schedulers.
package fdvar

// Change classifies the effect of a single domain mutation.
//
// Classifications form three tiers. The concrete tier orders by
// informational strength: a bound change tells a propagator exactly which
// bound moved, BothBoundsChange that both moved, and ValuesChange that only
// interior values were removed. NoChange is the neutral element.
// UniversalChange marks an assignment made by an exhaustive brancher that
// enumerates every value; it carries no per-value information and must not
// be combined with concrete classifications — doing so yields
// UniversalError.
type Change uint8

const (
	// NoChange reports that the operation left the domain untouched.
	NoChange Change = iota

	// MinBoundChange reports that only the minimum bound moved.
	MinBoundChange

	// MaxBoundChange reports that only the maximum bound moved.
	MaxBoundChange

	// BothBoundsChange reports that both bounds moved.
	BothBoundsChange

	// ValuesChange reports that interior values were removed while both
	// bounds held.
	ValuesChange

	// UniversalChange reports an assignment performed by a universal
	// (exhaustive) brancher.
	UniversalChange

	// UniversalError reports an improper mix of universal and concrete
	// reasoning over the same variable.
	UniversalError
)

// Merge combines two classifications accumulated for the same variable.
// It is commutative with NoChange as identity: opposite bound changes
// combine to BothBoundsChange, any bound change combines with ValuesChange
// to ValuesChange, and mixing UniversalChange with any concrete
// classification yields UniversalError.
func (c Change) Merge(other Change) Change {
	if c == UniversalError || other == UniversalError {
		return UniversalError
	}
	if c == NoChange {
		return other
	}
	if other == NoChange {
		return c
	}
	if c == UniversalChange || other == UniversalChange {
		if c == other {
			return UniversalChange
		}
		return UniversalError
	}
	// Both concrete and non-neutral.
	if c == ValuesChange || other == ValuesChange {
		return ValuesChange
	}
	if c == other {
		return c
	}
	// Distinct members of {MinBoundChange, MaxBoundChange, BothBoundsChange}.
	return BothBoundsChange
}

// Subsumes reports whether other carries at least as much information as c.
// A scheduler holding a pending notification c for a variable may drop it
// once a stronger notification other is recorded for the same variable.
//
// MinBoundChange and MaxBoundChange are subsumed only by themselves or
// BothBoundsChange; BothBoundsChange by ValuesChange; NoChange by
// everything. Universal classifications are never subsumed: they signal a
// disjoint kind of event that a scheduler must not coalesce away.
func (c Change) Subsumes(other Change) bool {
	switch c {
	case NoChange:
		return true
	case MinBoundChange:
		return other == MinBoundChange || other == BothBoundsChange
	case MaxBoundChange:
		return other == MaxBoundChange || other == BothBoundsChange
	case BothBoundsChange:
		return other == BothBoundsChange || other == ValuesChange
	case ValuesChange:
		return other != NoChange
	default:
		return false
	}
}

// String returns the classification name.
func (c Change) String() string {
	switch c {
	case NoChange:
		return "NoChange"
	case MinBoundChange:
		return "MinBoundChange"
	case MaxBoundChange:
		return "MaxBoundChange"
	case BothBoundsChange:
		return "BothBoundsChange"
	case ValuesChange:
		return "ValuesChange"
	case UniversalChange:
		return "UniversalChange"
	case UniversalError:
		return "UniversalError"
	default:
		return "Change(?)"
	}
}
