package readme

import "errors"

// Sentinel errors for formatting operations.
var (
	// Contract violations in the upstream document tree.
	ErrMissingNumber     = errors.New("numbered chapter has no section number")
	ErrMissingSourcePath = errors.New("numbered chapter has no source path")
	ErrUnknownItem       = errors.New("unknown book item")

	// Output errors.
	ErrWrite = errors.New("failed to write output")
)
