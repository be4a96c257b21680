// Package fdvar provides finite-domain constraint variables.
// This file implements the notification collaborator: an external sink that
// mutating operations report classifications to, so an event-driven
// scheduler can maintain its worklist without the domain layer depending on
// scheduling concerns. Observed threads a sink through the full operation
// set of IntVar.
package fdvar

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
)

// VarID identifies a variable to the notification layer. IDs are dense
// handles assigned by whatever structure owns the variables, usable as
// array indexes by a scheduler.
type VarID int

// Notifier receives the classification of every effective domain mutation.
// The return value lets the sink apply back-pressure or reject an event; a
// rejected event does not undo the mutation, it only tells the caller the
// scheduler did not record it.
type Notifier interface {
	Notify(id VarID, change Change) bool
}

// FailureSink may additionally be implemented by a Notifier to convert a
// local domain wipeout into a different externally visible failure, for
// example an aggregated first-failure record across many variables. The
// returned error replaces ErrDomainWipeout at the Observed call site.
type FailureSink interface {
	Fail(id VarID, err error) error
}

// AcceptAll is the default sink: it accepts every event and converts
// nothing.
type AcceptAll struct{}

// Notify implements Notifier.
func (AcceptAll) Notify(VarID, Change) bool { return true }

// FirstFailure records the first variable whose domain wiped out and
// reports every failure as ErrInconsistent, letting a caller propagate one
// uniform error while keeping the offending variable for diagnosis.
type FirstFailure struct {
	id     VarID
	failed bool
}

// Notify implements Notifier; every event is accepted.
func (f *FirstFailure) Notify(VarID, Change) bool { return true }

// Fail implements FailureSink.
func (f *FirstFailure) Fail(id VarID, err error) error {
	if !f.failed {
		f.id = id
		f.failed = true
	}
	return ErrInconsistent
}

// First returns the first failed variable, or false if no failure was
// recorded.
func (f *FirstFailure) First() (VarID, bool) {
	return f.id, f.failed
}

// Reset clears the recorded failure so the sink can serve another
// propagation round.
func (f *FirstFailure) Reset() {
	f.id = 0
	f.failed = false
}

// LogNotifier logs every event and failure through zerolog before handing
// it to the next sink. With a nil next sink it accepts everything.
type LogNotifier struct {
	logger zerolog.Logger
	next   Notifier
}

// NewLogNotifier creates a logging sink wrapping next. next may be nil.
func NewLogNotifier(logger zerolog.Logger, next Notifier) *LogNotifier {
	return &LogNotifier{logger: logger, next: next}
}

// Notify implements Notifier.
func (l *LogNotifier) Notify(id VarID, change Change) bool {
	l.logger.Debug().
		Int("var", int(id)).
		Stringer("change", change).
		Msg("domain narrowed")
	if l.next != nil {
		return l.next.Notify(id, change)
	}
	return true
}

// Fail implements FailureSink.
func (l *LogNotifier) Fail(id VarID, err error) error {
	l.logger.Error().
		Int("var", int(id)).
		Err(err).
		Msg("domain wipeout")
	if sink, ok := l.next.(FailureSink); ok {
		return sink.Fail(id, err)
	}
	return err
}

// Observed is the notification-aware form of the IntVar operation set. It
// wraps a variable with its scheduler identity and a sink, forwarding every
// non-NoChange classification after the underlying mutation. There is one
// operation set, not two interface hierarchies: callers that do not need
// notification use IntVar directly.
type Observed[T constraints.Integer] struct {
	id   VarID
	v    *IntVar[T]
	sink Notifier
}

// Observe wraps v with its identity and sink.
func Observe[T constraints.Integer](id VarID, v *IntVar[T], sink Notifier) *Observed[T] {
	return &Observed[T]{id: id, v: v, sink: sink}
}

// ID returns the variable's scheduler identity.
func (o *Observed[T]) ID() VarID { return o.id }

// Var returns the underlying variable.
func (o *Observed[T]) Var() *IntVar[T] { return o.v }

// report forwards a classification to the sink and lets a FailureSink
// convert a wipeout.
func (o *Observed[T]) report(ch Change, err error) (Change, error) {
	if err != nil {
		if sink, ok := o.sink.(FailureSink); ok {
			return ch, sink.Fail(o.id, err)
		}
		return ch, err
	}
	if ch != NoChange {
		o.sink.Notify(o.id, ch)
	}
	return ch, nil
}

// Size returns the number of remaining admissible values.
func (o *Observed[T]) Size() int { return o.v.Size() }

// IsBound returns true if the domain is a singleton.
func (o *Observed[T]) IsBound() bool { return o.v.IsBound() }

// Value returns the single admissible value if the variable is bound.
func (o *Observed[T]) Value() (T, bool) { return o.v.Value() }

// Min returns the current minimum, or false when the domain is empty.
func (o *Observed[T]) Min() (T, bool) { return o.v.Min() }

// Max returns the current maximum, or false when the domain is empty.
func (o *Observed[T]) Max() (T, bool) { return o.v.Max() }

// SetValue restricts the domain to exactly {value}, reporting the result.
func (o *Observed[T]) SetValue(value T) (Change, error) {
	return o.report(o.v.SetValue(value))
}

// StrictUpperBound removes every value >= ub, reporting the result.
func (o *Observed[T]) StrictUpperBound(ub T) (Change, error) {
	return o.report(o.v.StrictUpperBound(ub))
}

// WeakUpperBound removes every value > ub, reporting the result.
func (o *Observed[T]) WeakUpperBound(ub T) (Change, error) {
	return o.report(o.v.WeakUpperBound(ub))
}

// StrictLowerBound removes every value <= lb, reporting the result.
func (o *Observed[T]) StrictLowerBound(lb T) (Change, error) {
	return o.report(o.v.StrictLowerBound(lb))
}

// WeakLowerBound removes every value < lb, reporting the result.
func (o *Observed[T]) WeakLowerBound(lb T) (Change, error) {
	return o.report(o.v.WeakLowerBound(lb))
}

// Equal intersects both domains, reporting each side to its own identity.
func (o *Observed[T]) Equal(other *Observed[T]) (Change, Change, error) {
	chSelf, chOther, err := o.v.Equal(other.v)
	if err != nil {
		if sink, ok := o.sink.(FailureSink); ok {
			err = sink.Fail(o.id, err)
		}
		return chSelf, chOther, err
	}
	if chSelf != NoChange {
		o.sink.Notify(o.id, chSelf)
	}
	if chOther != NoChange {
		other.sink.Notify(other.id, chOther)
	}
	return chSelf, chOther, nil
}

// NotEqual applies the one-directional disequality, reporting each side.
func (o *Observed[T]) NotEqual(other *Observed[T]) (Change, Change, error) {
	chSelf, chOther, err := o.v.NotEqual(other.v)
	if err != nil {
		// The side that shrank is the side that wiped out.
		failed := o.id
		if chSelf == NoChange {
			failed = other.id
		}
		if sink, ok := o.sink.(FailureSink); ok {
			err = sink.Fail(failed, err)
		}
		return chSelf, chOther, err
	}
	if chSelf != NoChange {
		o.sink.Notify(o.id, chSelf)
	}
	if chOther != NoChange {
		other.sink.Notify(other.id, chOther)
	}
	return chSelf, chOther, nil
}

// InValues restricts the domain to its intersection with values, reporting
// the result.
func (o *Observed[T]) InValues(values []T) (Change, error) {
	return o.report(o.v.InValues(values))
}

// RemoveValue deletes value if present, reporting the result.
func (o *Observed[T]) RemoveValue(value T) (Change, error) {
	return o.report(o.v.RemoveValue(value))
}

// RemoveIf deletes every value satisfying pred, reporting the result.
func (o *Observed[T]) RemoveIf(pred func(T) bool) (Change, error) {
	return o.report(o.v.RemoveIf(pred))
}

// RetainIf deletes every value not satisfying pred, reporting the result.
func (o *Observed[T]) RetainIf(pred func(T) bool) (Change, error) {
	return o.report(o.v.RetainIf(pred))
}
