package mdbook

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	readme "github.com/alnah/go-mdbook-readme"
)

// ItemKind identifies the variant held by a BookItem.
type ItemKind int

// Book item variants, mirroring mdbook's BookItem enum.
const (
	KindChapter ItemKind = iota
	KindSeparator
	KindPartTitle
)

// String returns the mdbook tag of the variant.
func (k ItemKind) String() string {
	switch k {
	case KindChapter:
		return "Chapter"
	case KindSeparator:
		return "Separator"
	case KindPartTitle:
		return "PartTitle"
	default:
		return fmt.Sprintf("ItemKind(%d)", int(k))
	}
}

// BookItem is one node of the book tree.
type BookItem struct {
	Kind      ItemKind
	Chapter   *Chapter // set when Kind == KindChapter
	PartTitle string   // set when Kind == KindPartTitle
}

// Chapter is a chapter node as serialized by mdbook.
type Chapter struct {
	Name        string     `json:"name"`
	Content     string     `json:"content"`
	Number      []int      `json:"number"`
	SubItems    []BookItem `json:"sub_items"`
	Path        *string    `json:"path"`
	SourcePath  *string    `json:"source_path"`
	ParentNames []string   `json:"parent_names"`
}

// NewChapterItem wraps ch in a BookItem.
func NewChapterItem(ch *Chapter) BookItem {
	return BookItem{Kind: KindChapter, Chapter: ch}
}

// NewSeparatorItem returns a separator BookItem.
func NewSeparatorItem() BookItem {
	return BookItem{Kind: KindSeparator}
}

// NewPartTitleItem returns a part title BookItem.
func NewPartTitleItem(title string) BookItem {
	return BookItem{Kind: KindPartTitle, PartTitle: title}
}

// UnmarshalJSON decodes the externally tagged union mdbook emits:
// {"Chapter": {...}}, "Separator" or {"PartTitle": "..."}.
func (it *BookItem) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		if tag == KindSeparator.String() {
			*it = NewSeparatorItem()
			return nil
		}
		return fmt.Errorf("%w: %q", ErrUnknownBookItem, tag)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	if raw, ok := obj[KindChapter.String()]; ok {
		var ch Chapter
		if err := json.Unmarshal(raw, &ch); err != nil {
			return err
		}
		if err := validateNumber(ch.Number); err != nil {
			return fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		*it = NewChapterItem(&ch)
		return nil
	}

	if raw, ok := obj[KindPartTitle.String()]; ok {
		var title string
		if err := json.Unmarshal(raw, &title); err != nil {
			return err
		}
		*it = NewPartTitleItem(title)
		return nil
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: {%s}", ErrUnknownBookItem, strings.Join(keys, ", "))
}

// MarshalJSON encodes the item in the same tagged form UnmarshalJSON reads.
func (it BookItem) MarshalJSON() ([]byte, error) {
	switch it.Kind {
	case KindChapter:
		return json.Marshal(map[string]*Chapter{KindChapter.String(): it.Chapter})
	case KindSeparator:
		return json.Marshal(KindSeparator.String())
	case KindPartTitle:
		return json.Marshal(map[string]string{KindPartTitle.String(): it.PartTitle})
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBookItem, it.Kind)
	}
}

// validateNumber rejects section numbers containing non-positive parts.
func validateNumber(number []int) error {
	for _, n := range number {
		if n <= 0 {
			return fmt.Errorf("%w: %v", ErrInvalidNumber, number)
		}
	}
	return nil
}

// Flatten walks items depth-first, emitting each chapter before its sub
// items, and converts them to formatter items.
func Flatten(items []BookItem) []readme.Item {
	var out []readme.Item
	var walk func([]BookItem)
	walk = func(items []BookItem) {
		for _, it := range items {
			switch it.Kind {
			case KindChapter:
				if it.Chapter == nil {
					continue
				}
				out = append(out, it.Chapter.toReadme())
				walk(it.Chapter.SubItems)
			case KindSeparator:
				out = append(out, readme.Separator{})
			case KindPartTitle:
				out = append(out, readme.PartTitle{Title: it.PartTitle})
			}
		}
	}
	walk(items)
	return out
}

func (ch *Chapter) toReadme() readme.Chapter {
	return readme.Chapter{
		Name:       ch.Name,
		Content:    ch.Content,
		Number:     readme.SectionNumber(ch.Number),
		Path:       deref(ch.Path),
		SourcePath: deref(ch.SourcePath),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
