// Package fdvar provides finite-domain constraint variables.
// This file implements BoolVar, the degenerate two-value variable used by
// reified constraints. It shares the Variable/Assignable/Finite contracts
// with IntVar; equality joins and pruning are not supported on the boolean
// encoding and report errors.ErrUnsupported.
package fdvar

import (
	"errors"
	"iter"
)

// boolDomain enumerates the four reachable states of a boolean domain.
type boolDomain uint8

const (
	boolEmpty boolDomain = iota
	boolFalse
	boolTrue
	boolBoth
)

// BoolVar is a variable over {false, true}. It starts undetermined (both
// values admissible) and narrows through SetValue.
type BoolVar struct {
	domain boolDomain
}

// NewBoolVar creates an undetermined boolean variable.
func NewBoolVar() *BoolVar {
	return &BoolVar{domain: boolBoth}
}

// Size returns the number of remaining admissible values (0, 1, or 2).
func (v *BoolVar) Size() int {
	switch v.domain {
	case boolBoth:
		return 2
	case boolTrue, boolFalse:
		return 1
	default:
		return 0
	}
}

// IsBound returns true if the variable is determined.
func (v *BoolVar) IsBound() bool {
	return v.domain == boolTrue || v.domain == boolFalse
}

// Value returns the determined value, or false when undetermined or empty.
func (v *BoolVar) Value() (bool, bool) {
	switch v.domain {
	case boolTrue:
		return true, true
	case boolFalse:
		return false, true
	default:
		return false, false
	}
}

// Values returns the current admissible values, false before true.
func (v *BoolVar) Values() iter.Seq[bool] {
	snapshot := v.domain
	return func(yield func(bool) bool) {
		if snapshot == boolFalse || snapshot == boolBoth {
			if !yield(false) {
				return
			}
		}
		if snapshot == boolTrue || snapshot == boolBoth {
			yield(true)
		}
	}
}

// Clone returns an independent copy.
func (v *BoolVar) Clone() *BoolVar {
	return &BoolVar{domain: v.domain}
}

// SetValue restricts the domain to exactly {value}. Returns NoChange when
// the variable already holds value, BothBoundsChange when it narrows from
// undetermined, and ErrDomainWipeout when the opposite value is already
// fixed (the domain is cleared).
func (v *BoolVar) SetValue(value bool) (Change, error) {
	switch v.domain {
	case boolBoth:
		if value {
			v.domain = boolTrue
		} else {
			v.domain = boolFalse
		}
		return BothBoundsChange, nil
	case boolTrue:
		if value {
			return NoChange, nil
		}
	case boolFalse:
		if !value {
			return NoChange, nil
		}
	}
	v.domain = boolEmpty
	return NoChange, ErrDomainWipeout
}

// Equal is not supported on the boolean encoding.
func (v *BoolVar) Equal(other *BoolVar) (Change, Change, error) {
	return NoChange, NoChange, errors.ErrUnsupported
}

// NotEqual is not supported on the boolean encoding.
func (v *BoolVar) NotEqual(other *BoolVar) (Change, Change, error) {
	return NoChange, NoChange, errors.ErrUnsupported
}

// InValues is not supported on the boolean encoding.
func (v *BoolVar) InValues(values []bool) (Change, error) {
	return NoChange, errors.ErrUnsupported
}

// RemoveValue is not supported on the boolean encoding.
func (v *BoolVar) RemoveValue(value bool) (Change, error) {
	return NoChange, errors.ErrUnsupported
}

// RemoveIf is not supported on the boolean encoding.
func (v *BoolVar) RemoveIf(pred func(bool) bool) (Change, error) {
	return NoChange, errors.ErrUnsupported
}

// RetainIf is not supported on the boolean encoding.
func (v *BoolVar) RetainIf(pred func(bool) bool) (Change, error) {
	return NoChange, errors.ErrUnsupported
}

// String returns "true", "false", "{true,false}", or "{}".
func (v *BoolVar) String() string {
	switch v.domain {
	case boolTrue:
		return "true"
	case boolFalse:
		return "false"
	case boolBoth:
		return "{true,false}"
	default:
		return "{}"
	}
}
