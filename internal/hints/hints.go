// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// SkipVersionCheckEnv is the environment variable that downgrades a version
// mismatch to a warning.
const SkipVersionCheckEnv = "MDBOOK_README_SKIP_VERSION_CHECK"

// ForVersionMismatch returns hints for mdbook version mismatch errors.
// Suggests the skip switch unless it is already set.
func ForVersionMismatch(built string) string {
	var hints []string

	if built != "" {
		hints = append(hints, "install mdbook "+built+" or a matching mdbook-readme release")
	}
	if os.Getenv(SkipVersionCheckEnv) == "" {
		hints = append(hints, "set "+SkipVersionCheckEnv+"=1 to continue anyway")
	}

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/mdbook-readme/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable, or pass -o")
}

// ForSummaryNotFound returns hints when a book has no SUMMARY.md.
func ForSummaryNotFound(srcDir string) string {
	if srcDir == "" {
		return format("run from the book root or pass the book directory")
	}
	return format("create " + filepath.Join(srcDir, "SUMMARY.md") + " or set [book] src in book.toml")
}

// ForBackendInput returns hints when the RenderContext on stdin is unusable.
func ForBackendInput() string {
	return format("add [output.readme] to book.toml and run mdbook build, or use mdbook-readme build")
}

// ForMissingSourcePath returns hints for numbered chapters without a file.
func ForMissingSourcePath() string {
	return format("give the chapter a file in SUMMARY.md, or use [Name]() to mark it as a draft")
}

// ForAssetsDirectory returns hints when the preview styles directory is unusable.
func ForAssetsDirectory(dir string) string {
	return format("--assets expects a directory containing styles/<name>.css, got " + dir)
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
