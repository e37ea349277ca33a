package sim

import "errors"

// Command errors. All are recoverable: a failed command leaves state
// unchanged, and callers branch on the kind with errors.Is.
var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrAlreadyOwned       = errors.New("already owned")
	ErrPrerequisiteNotMet = errors.New("prerequisite not met")
	ErrConflict           = errors.New("conflicting item owned")
	ErrNotFound           = errors.New("not found")
)
