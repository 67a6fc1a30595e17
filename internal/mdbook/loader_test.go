package mdbook

// Notes:
// - LoadBook: we build small books in t.TempDir() and check chapter contents,
//   custom src directories, and the missing SUMMARY.md / chapter errors.
// - Cancellation is tested with an already-canceled context.
// - Concurrent reads are checked through their result (every chapter gets
//   its own content); scheduling order is not observable.

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	readme "github.com/alnah/go-mdbook-readme"
)

func writeBook(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}
	return dir
}

// ---------------------------------------------------------------------------
// TestLoadBook - Reading a book from disk
// ---------------------------------------------------------------------------

func TestLoadBook(t *testing.T) {
	t.Parallel()

	dir := writeBook(t, map[string]string{
		"book.toml":           "[book]\ntitle = \"Demo\"\n\n[output.readme]\nroot = \"src\"\n",
		"src/SUMMARY.md":      "# Summary\n\n[Intro](intro.md)\n\n- [One](one.md)\n    - [Two](sub/two.md)\n- [Three]()\n",
		"src/intro.md":        "Hello reader",
		"src/one.md":          "# One",
		"src/sub/two.md":      "# Two",
		"src/unreferenced.md": "ignored",
	})

	book, err := LoadBook(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadBook() unexpected error: %v", err)
	}

	if book.Manifest.Title != "Demo" {
		t.Errorf("Manifest.Title = %q, want Demo", book.Manifest.Title)
	}
	if book.Manifest.Root != "src" {
		t.Errorf("Manifest.Root = %q, want src", book.Manifest.Root)
	}

	items := book.Items()
	if len(items) != 4 {
		t.Fatalf("len(Items) = %d, want 4", len(items))
	}

	intro := items[0].(readme.Chapter)
	if intro.Content != "Hello reader" {
		t.Errorf("intro content = %q, want %q", intro.Content, "Hello reader")
	}
	two := items[2].(readme.Chapter)
	if two.Content != "# Two" {
		t.Errorf("nested content = %q, want %q", two.Content, "# Two")
	}
	three := items[3].(readme.Chapter)
	if !three.IsDraft() || three.Content != "" {
		t.Errorf("draft = %+v, want draft with no content", three)
	}

	lines, err := readme.NewFormatter(readme.WithRoot(book.Manifest.Root)).Lines(items)
	if err != nil {
		t.Fatalf("Lines() unexpected error: %v", err)
	}
	want := []string{
		"Hello reader",
		"",
		"- [One](src/one.md)",
		"  - [Two](src/sub/two.md)",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestLoadBook_CustomSrc(t *testing.T) {
	t.Parallel()

	dir := writeBook(t, map[string]string{
		"book.toml":        "[book]\nsrc = \"pages\"\n",
		"pages/SUMMARY.md": "[Only](only.md)\n",
		"pages/only.md":    "content",
	})

	book, err := LoadBook(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadBook() unexpected error: %v", err)
	}
	if got := book.Items()[0].(readme.Chapter).Content; got != "content" {
		t.Errorf("content = %q, want content", got)
	}
}

func TestLoadBook_EncodedSpaces(t *testing.T) {
	t.Parallel()

	dir := writeBook(t, map[string]string{
		"src/SUMMARY.md": "- [My File](my%20file.md)\n",
		"src/my file.md": "spaced",
	})

	book, err := LoadBook(context.Background(), dir)
	if err != nil {
		t.Fatalf("LoadBook() unexpected error: %v", err)
	}
	if got := book.Items()[0].(readme.Chapter).Content; got != "spaced" {
		t.Errorf("content = %q, want spaced", got)
	}
}

func TestLoadBook_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "missing summary",
			files:   map[string]string{"book.toml": "[book]\n"},
			wantErr: ErrSummaryNotFound,
		},
		{
			name:    "missing chapter file",
			files:   map[string]string{"src/SUMMARY.md": "- [Gone](gone.md)\n"},
			wantErr: ErrReadChapter,
		},
		{
			name:    "invalid summary",
			files:   map[string]string{"src/SUMMARY.md": "# Summary\n\nprose\n"},
			wantErr: ErrSummarySyntax,
		},
		{
			name:    "invalid manifest",
			files:   map[string]string{"book.toml": "[[["},
			wantErr: ErrManifestParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := writeBook(t, tt.files)
			_, err := LoadBook(context.Background(), dir)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadBook_Canceled(t *testing.T) {
	t.Parallel()

	dir := writeBook(t, map[string]string{
		"src/SUMMARY.md": "- [A](a.md)\n",
		"src/a.md":       "a",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadBook(ctx, dir)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoadBook_ManyChapters(t *testing.T) {
	t.Parallel()

	const n = 40
	var summary strings.Builder
	files := map[string]string{}
	for i := range n {
		name := fmt.Sprintf("ch%02d.md", i)
		fmt.Fprintf(&summary, "- [Chapter %d](%s)\n    - [Section %d](%s)\n", i, name, i, "sub/"+name)
		files["src/"+name] = "chapter " + name
		files["src/sub/"+name] = "section " + name
	}
	files["src/SUMMARY.md"] = summary.String()

	book, err := LoadBook(context.Background(), writeBook(t, files))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := book.Items()
	if len(items) != 2*n {
		t.Fatalf("got %d items, want %d", len(items), 2*n)
	}
	for _, it := range items {
		ch := it.(readme.Chapter)
		want := "chapter " + filepath.Base(ch.SourcePath)
		if strings.HasPrefix(ch.SourcePath, "sub/") {
			want = "section " + filepath.Base(ch.SourcePath)
		}
		if ch.Content != want {
			t.Errorf("%s content = %q, want %q", ch.SourcePath, ch.Content, want)
		}
	}
}

func TestLoadBook_OneMissingAmongMany(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"src/SUMMARY.md": "- [A](a.md)\n- [B](b.md)\n- [Gone](gone.md)\n- [C](c.md)\n",
		"src/a.md":       "a",
		"src/b.md":       "b",
		"src/c.md":       "c",
	}

	_, err := LoadBook(context.Background(), writeBook(t, files))
	if !errors.Is(err, ErrReadChapter) {
		t.Fatalf("error = %v, want ErrReadChapter", err)
	}
	if !strings.Contains(err.Error(), `"Gone"`) {
		t.Errorf("error %q should name the chapter", err)
	}
}
