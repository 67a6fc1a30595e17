package main

// Notes:
// - This file contains test helpers shared across command tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-mdbook-readme/internal/mdbook"
)

// fixedNow is the clock used by test environments.
var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// testEnv returns an Environment reading stdin from the given string and
// capturing stdout and stderr.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:        func() time.Time { return fixedNow },
		Stdin:      strings.NewReader(stdin),
		Stdout:     stdout,
		Stderr:     stderr,
		IsTerminal: func() bool { return false },
		NoColor:    true,
	}
	return env, stdout, stderr
}

func strPtr(s string) *string { return &s }

// sampleSections is Ch1 > Ch1.1, a separator, and a draft.
func sampleSections() []mdbook.BookItem {
	return []mdbook.BookItem{
		mdbook.NewChapterItem(&mdbook.Chapter{
			Name:       "Ch1",
			Number:     []int{1},
			Path:       strPtr("ch1.md"),
			SourcePath: strPtr("ch1.md"),
			SubItems: []mdbook.BookItem{
				mdbook.NewChapterItem(&mdbook.Chapter{
					Name:        "Ch1.1",
					Number:      []int{1, 1},
					Path:        strPtr("ch1_1.md"),
					SourcePath:  strPtr("ch1_1.md"),
					ParentNames: []string{"Ch1"},
				}),
			},
		}),
		mdbook.NewSeparatorItem(),
		mdbook.NewChapterItem(&mdbook.Chapter{Name: "Later", Number: []int{2}}),
	}
}

// sampleReadme is the page generated from sampleSections with root ".".
const sampleReadme = "- [Ch1](./ch1.md)\n  - [Ch1.1](./ch1_1.md)\n\n---\n\n"

// renderContextJSON encodes a RenderContext for backend mode.
func renderContextJSON(t *testing.T, version, dest string, cfg map[string]any) string {
	t.Helper()

	rc := mdbook.RenderContext{
		Version:     version,
		Root:        filepath.Dir(dest),
		Destination: dest,
		Book:        mdbook.Book{Sections: sampleSections()},
		Config:      cfg,
	}
	data, err := json.Marshal(rc)
	if err != nil {
		t.Fatalf("encoding render context: %v", err)
	}
	return string(data)
}

// quoteJSON returns s as a JSON string literal.
func quoteJSON(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

// writeFiles creates files (slash-separated names) under dir.
func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
