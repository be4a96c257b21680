// Package fdvar provides finite-domain constraint variables.
// This file builds binary bound relations between two variables out of the
// per-side bound operations: precedence in its strict and weak forms, and
// bound equality in lazy and fixpoint variants. Relations never inspect a
// domain's interior; they only move bounds and merge the two resulting
// classifications.
package fdvar

import "golang.org/x/exp/constraints"

// LessThan forces x < y by tightening x's upper bound against y's maximum
// and y's lower bound against x's minimum. Returns one classification per
// side, and ErrDomainWipeout when no value of x lies below y's maximum or
// no value of y above x's minimum.
func LessThan[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	yMax, ok := y.Max()
	if !ok {
		return NoChange, NoChange, ErrDomainWipeout
	}
	chX, err := x.StrictUpperBound(yMax)
	if err != nil {
		return chX, NoChange, err
	}
	xMin, ok := x.Min()
	if !ok {
		return chX, NoChange, ErrDomainWipeout
	}
	chY, err := y.StrictLowerBound(xMin)
	return chX, chY, err
}

// LessOrEqual forces x <= y using the weak bound forms.
func LessOrEqual[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	yMax, ok := y.Max()
	if !ok {
		return NoChange, NoChange, ErrDomainWipeout
	}
	chX, err := x.WeakUpperBound(yMax)
	if err != nil {
		return chX, NoChange, err
	}
	xMin, ok := x.Min()
	if !ok {
		return chX, NoChange, ErrDomainWipeout
	}
	chY, err := y.WeakLowerBound(xMin)
	return chX, chY, err
}

// GreaterThan forces x > y.
func GreaterThan[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	chY, chX, err := LessThan(y, x)
	return chX, chY, err
}

// GreaterOrEqual forces x >= y.
func GreaterOrEqual[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	chY, chX, err := LessOrEqual(y, x)
	return chX, chY, err
}

// EqualBounds forces both variables to share the same bounds, iterating the
// two weak precedence relations to a fixpoint. Sharing bounds does not
// imply sharing domains: interior holes may differ afterwards. Terminates
// because every effective round strictly shrinks at least one finite
// domain.
func EqualBounds[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	chX, chY := NoChange, NoChange
	for {
		x1, y1, err := LessOrEqual(x, y)
		if err != nil {
			return chX.Merge(x1), chY.Merge(y1), err
		}
		y2, x2, err := LessOrEqual(y, x)
		if err != nil {
			return chX.Merge(x1).Merge(x2), chY.Merge(y1).Merge(y2), err
		}
		roundX := x1.Merge(x2)
		roundY := y1.Merge(y2)
		if roundX == NoChange && roundY == NoChange {
			return chX, chY, nil
		}
		chX = chX.Merge(roundX)
		chY = chY.Merge(roundY)
	}
}

// EqualBoundsLazy applies a single round of bound equalization without
// iterating to a fixpoint, for callers that run inside a scheduler which
// will re-invoke the relation on the next notification anyway.
func EqualBoundsLazy[T constraints.Ordered](x, y OrderedDomain[T]) (Change, Change, error) {
	x1, y1, err := LessOrEqual(x, y)
	if err != nil {
		return x1, y1, err
	}
	y2, x2, err := LessOrEqual(y, x)
	return x1.Merge(x2), y1.Merge(y2), err
}
