package mdbook

import "errors"

// Sentinel errors for book loading.
var (
	ErrDecodeContext   = errors.New("failed to decode render context")
	ErrUnknownBookItem = errors.New("unknown book item")
	ErrInvalidNumber   = errors.New("invalid section number")

	ErrInvalidVersion  = errors.New("invalid mdbook version")
	ErrVersionMismatch = errors.New("mdbook version mismatch")

	ErrManifestParse   = errors.New("failed to parse book.toml")
	ErrSummaryNotFound = errors.New("SUMMARY.md not found")
	ErrSummarySyntax   = errors.New("invalid SUMMARY.md")
	ErrReadChapter     = errors.New("failed to read chapter")
)
