package reconcile

import (
	"errors"
)

var (
	// ErrNoMatch is returned by automatic matching when no enabled rule
	// fires. It is a regular outcome, not a failure: callers fall back
	// to manual matching.
	ErrNoMatch = errors.New("no enabled rule matches the transaction")

	ErrAlreadyMatched    = errors.New("transaction already has a committed match")
	ErrCandidateNotFound = errors.New("there is no candidate record matching your selection")
	ErrCommit            = errors.New("the match could not be recorded")

	ErrInvalidPercentage = errors.New("action percentages must be between 0 and 100")
	ErrOverAllocated     = errors.New("action percentages must not add up to more than 100")
	ErrDuplicateTarget   = errors.New("two actions must not target the same property, category and entry kind")
)
