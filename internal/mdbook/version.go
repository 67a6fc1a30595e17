package mdbook

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// CompatibleVersion is the mdbook release this backend is built against.
const CompatibleVersion = "0.4.40"

// CheckVersion fails unless built and book name the same semantic version,
// build metadata included. Versions may be given with or without a leading "v".
func CheckVersion(built, book string) error {
	b, err := canonicalVersion(built)
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	v, err := canonicalVersion(book)
	if err != nil {
		return fmt.Errorf("book: %w", err)
	}
	if semver.Compare(b, v) != 0 || semver.Build(b) != semver.Build(v) {
		return fmt.Errorf("%w: backend built on %s, but mdbook on %s", ErrVersionMismatch, b, v)
	}
	return nil
}

func canonicalVersion(s string) (string, error) {
	v := strings.TrimSpace(s)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	return v, nil
}
