package readme

import (
	"strconv"
	"strings"
)

// Item is one entry of the flattened book: a Chapter, a Separator or a PartTitle.
type Item interface {
	bookItem()
}

// SectionNumber is a hierarchical chapter number, e.g. {2, 1} for "2.1.".
// A nil or empty SectionNumber means the chapter is unnumbered.
type SectionNumber []int

// Depth returns the nesting level of the number.
func (n SectionNumber) Depth() int {
	return len(n)
}

// String renders the number the way mdbook prints it ("2.1.").
func (n SectionNumber) String() string {
	var b strings.Builder
	for _, part := range n {
		b.WriteString(strconv.Itoa(part))
		b.WriteByte('.')
	}
	return b.String()
}

// Chapter is a book chapter.
type Chapter struct {
	Name       string        // Display name, used as link text
	Content    string        // Rendered body, emitted for unnumbered chapters
	Number     SectionNumber // Empty for prefix and suffix chapters
	Path       string        // Rendered path, empty for drafts
	SourcePath string        // Source file relative to the book source, used in links
}

// IsDraft reports whether the chapter has no backing content.
func (c Chapter) IsDraft() bool {
	return c.Path == ""
}

// IsNumbered reports whether the chapter carries a section number.
func (c Chapter) IsNumbered() bool {
	return len(c.Number) > 0
}

// Separator is a horizontal rule between chapter groups.
type Separator struct{}

// PartTitle is a heading that starts a new part of the book.
type PartTitle struct {
	Title string
}

func (Chapter) bookItem()   {}
func (Separator) bookItem() {}
func (PartTitle) bookItem() {}

// Classification is the state carried from one chapter to the next.
type Classification int

// Classification values. Prefix is the zero value and the initial state.
const (
	Prefix Classification = iota
	Numbered
	Suffix
	Draft
)

// String returns the lowercase name of the classification.
func (c Classification) String() string {
	switch c {
	case Prefix:
		return "prefix"
	case Numbered:
		return "numbered"
	case Suffix:
		return "suffix"
	case Draft:
		return "draft"
	default:
		return "classification(" + strconv.Itoa(int(c)) + ")"
	}
}
