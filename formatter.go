package readme

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// DefaultRoot is the link root used when none is configured.
const DefaultRoot = "."

// Fixed page fragments.
const (
	separatorLine   = "---"
	partTitlePrefix = "# "
	listMarker      = "- "
	indentPerLevel  = 2
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithRoot sets the path prepended to every chapter link.
// An empty root falls back to DefaultRoot.
func WithRoot(root string) Option {
	return func(f *Formatter) {
		if root == "" {
			root = DefaultRoot
		}
		f.root = root
	}
}

// Formatter turns a flattened book into the lines of a table-of-contents page.
// A Formatter holds no per-run state and is safe for concurrent use.
type Formatter struct {
	root string
}

// NewFormatter creates a Formatter linking chapters relative to DefaultRoot
// unless WithRoot says otherwise.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{root: DefaultRoot}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Root returns the configured link root.
func (f *Formatter) Root() string {
	return f.root
}

// Lines folds items left to right, starting from Prefix, and returns the
// emitted lines in order. Any contract violation aborts the whole run.
func (f *Formatter) Lines(items []Item) ([]string, error) {
	var out []string
	state := Prefix
	for i, item := range items {
		next, lines, err := Step(item, state, f.root)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, lines...)
		state = next
	}
	return out, nil
}

// Write renders items and writes each line followed by a newline to w.
// Nothing is written when the book violates a contract; a failed write
// aborts immediately with ErrWrite.
func (f *Formatter) Write(w io.Writer, items []Item) error {
	lines, err := f.Lines(items)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}
	return nil
}

// Classify returns the classification of ch given the classification of the
// chapter before it. A missing path always wins and yields Draft.
func Classify(ch Chapter, prev Classification) Classification {
	cur := Numbered
	if !ch.IsNumbered() {
		if prev == Numbered {
			cur = Suffix
		} else {
			cur = Prefix
		}
	}
	if ch.IsDraft() {
		cur = Draft
	}
	return cur
}

// Step processes a single item. It returns the classification to carry to the
// next item and the lines the item emits. Separators and part titles carry
// prev through unchanged.
func Step(item Item, prev Classification, root string) (Classification, []string, error) {
	switch it := item.(type) {
	case Chapter:
		cur := Classify(it, prev)
		lines, err := chapterLines(it, prev, cur, root)
		if err != nil {
			return prev, nil, err
		}
		return cur, lines, nil
	case *Chapter:
		if it == nil {
			return prev, nil, fmt.Errorf("%w: nil %T", ErrUnknownItem, item)
		}
		return Step(*it, prev, root)
	case Separator, *Separator:
		return prev, closeList(prev, separatorLine, ""), nil
	case PartTitle:
		return prev, closeList(prev, partTitlePrefix+it.Title, ""), nil
	case *PartTitle:
		if it == nil {
			return prev, nil, fmt.Errorf("%w: nil %T", ErrUnknownItem, item)
		}
		return Step(*it, prev, root)
	default:
		return prev, nil, fmt.Errorf("%w: %T", ErrUnknownItem, item)
	}
}

// chapterLines emits the lines for a chapter already classified as cur.
func chapterLines(ch Chapter, prev, cur Classification, root string) ([]string, error) {
	var lines []string
	if prev == Numbered && cur == Suffix {
		lines = append(lines, "")
	}

	switch cur {
	case Prefix, Suffix:
		lines = append(lines, ch.Content, "")
	case Numbered:
		item, err := listItem(ch, root)
		if err != nil {
			return nil, err
		}
		lines = append(lines, item)
	case Draft:
	}
	return lines, nil
}

// listItem renders a numbered chapter as an indented Markdown list item.
func listItem(ch Chapter, root string) (string, error) {
	depth := ch.Number.Depth()
	if depth == 0 {
		return "", fmt.Errorf("%w: %q", ErrMissingNumber, ch.Name)
	}
	if ch.SourcePath == "" {
		return "", fmt.Errorf("%w: %q", ErrMissingSourcePath, ch.Name)
	}
	indent := strings.Repeat(" ", (depth-1)*indentPerLevel)
	return fmt.Sprintf("%s%s[%s](%s)", indent, listMarker, ch.Name, LinkTarget(root, ch.SourcePath)), nil
}

// closeList prepends a blank line when the previous chapter was numbered.
func closeList(prev Classification, lines ...string) []string {
	if prev != Numbered {
		return lines
	}
	return append([]string{""}, lines...)
}

// LinkTarget joins root and sourcePath for display in a link.
// The result is not cleaned, so "." and "ch1.md" give "./ch1.md".
// An absolute sourcePath replaces the root. Separators are rendered as "/".
func LinkTarget(root, sourcePath string) string {
	if root == "" {
		root = DefaultRoot
	}
	src := filepath.ToSlash(sourcePath)
	if filepath.IsAbs(sourcePath) || strings.HasPrefix(src, "/") {
		return src
	}
	r := filepath.ToSlash(root)
	if strings.HasSuffix(r, "/") {
		return r + src
	}
	return r + "/" + src
}
