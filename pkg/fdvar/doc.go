// Package fdvar provides the variable and domain layer of a finite-domain
// constraint propagation engine.
//
// A decision variable owns a domain: the set of values it may still take.
// Constraint propagators narrow domains through the capability interfaces
// defined here (bound pruning, assignment, value removal, equality joins),
// and every mutation reports a Change classification describing what moved:
// nothing, one bound, both bounds, or interior values only. A propagation
// scheduler uses these classifications to decide which constraints must be
// re-examined, merging pending classifications with Change.Merge and
// dropping subsumed ones with Change.Subsumes.
//
// The reference representation is IntVar, an ascending duplicate-free value
// slice. Bound operations locate their cut point by binary search and
// truncate; single-value tests are binary searches; equality joins are
// merge-intersections over two sorted slices. BoolVar is the degenerate
// two-value variable, and VarArray/VarRefs are the fixed-size containers a
// branching layer iterates over.
//
// A domain that becomes empty is a failure, never a queryable state: the
// mutating operation returns ErrDomainWipeout and clears the representation.
// Recovery belongs to the search layer, which clones variables before
// branching (see Clone on each variable type) rather than sharing mutable
// domains across branches.
//
// Notification is optional and orthogonal: every operation exists in a
// plain form on the variable types and a sink-threading form on Observed,
// which forwards non-NoChange classifications to a Notifier so an external
// scheduler can maintain its worklist without the domain layer knowing
// about scheduling.
package fdvar
