package main

import (
	"errors"
	"os"

	readme "github.com/alnah/go-mdbook-readme"
	"github.com/alnah/go-mdbook-readme/internal/assets"
	"github.com/alnah/go-mdbook-readme/internal/config"
	"github.com/alnah/go-mdbook-readme/internal/fileutil"
	"github.com/alnah/go-mdbook-readme/internal/mdbook"
)

// Exit codes for mdbook-readme CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // README written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, book structure or render context
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitVersion = 4 // mdbook version mismatch
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Version errors (exit 4)
	if errors.Is(err, mdbook.ErrVersionMismatch) ||
		errors.Is(err, mdbook.ErrInvalidVersion) {
		return ExitVersion
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, readme.ErrWrite) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, mdbook.ErrSummaryNotFound) ||
		errors.Is(err, mdbook.ErrReadChapter) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidFilename) ||
		errors.Is(err, config.ErrInvalidStyle) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) ||
		errors.Is(err, fileutil.ErrFilenameEmpty) ||
		errors.Is(err, fileutil.ErrFilenamePathTraversal) ||
		errors.Is(err, fileutil.ErrFilenameExtension) ||
		errors.Is(err, mdbook.ErrDecodeContext) ||
		errors.Is(err, mdbook.ErrUnknownBookItem) ||
		errors.Is(err, mdbook.ErrInvalidNumber) ||
		errors.Is(err, mdbook.ErrManifestParse) ||
		errors.Is(err, mdbook.ErrSummarySyntax) ||
		errors.Is(err, readme.ErrMissingNumber) ||
		errors.Is(err, readme.ErrMissingSourcePath) ||
		errors.Is(err, readme.ErrUnknownItem) {
		return ExitUsage
	}

	return ExitGeneral
}
