package assembly

import "errors"

var (
	// ErrInvalidBudget reports a ceiling/overhead misconfiguration.
	// Fatal to the assembly call, never retried.
	ErrInvalidBudget = errors.New("invalid budget")

	// ErrMissingRanker reports that a ranking-dependent strategy was
	// invoked without an embedding collaborator. Failing fast here is
	// deliberate: silently falling back to an unranked strategy would
	// hide a configuration bug.
	ErrMissingRanker = errors.New("missing ranker")

	// ErrUnknownStrategy reports an unrecognized strategy name.
	ErrUnknownStrategy = errors.New("unknown strategy")
)
