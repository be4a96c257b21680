package fdvar

import "errors"

// Domain errors.
var (
	// ErrDomainWipeout reports that an operation emptied a domain.
	// The variable's representation is cleared at the point of detection;
	// recovery (backtracking to a prior clone) is the caller's concern.
	ErrDomainWipeout = errors.New("domain wipeout: no admissible values remain")

	// ErrInconsistent is the externally visible failure a FailureSink may
	// substitute for a local wipeout when aggregating failures across many
	// variables.
	ErrInconsistent = errors.New("model is inconsistent")
)
