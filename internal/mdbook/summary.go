package mdbook

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseSummary builds the book tree described by a SUMMARY.md.
//
// The layout follows mdbook:
//   - an optional leading "# Title" heading is ignored
//   - links in paragraphs are unnumbered chapters (prefix or suffix)
//   - list items are numbered chapters, nested lists are sub chapters
//   - a link with an empty target, [Name](), is a draft
//   - "---" is a separator and later "# Heading" lines start a part
//
// Numbering is hierarchical and continues across parts.
func ParseSummary(src []byte) ([]BookItem, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	p := &summaryParser{src: src}

	first := true
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		isFirst := first
		first = false

		switch node := n.(type) {
		case *ast.Heading:
			if isFirst {
				continue
			}
			if node.Level != 1 {
				return nil, p.errorf(node, "unsupported heading level %d", node.Level)
			}
			p.items = append(p.items, NewPartTitleItem(inlineText(node, src)))
		case *ast.ThematicBreak:
			p.items = append(p.items, NewSeparatorItem())
		case *ast.Paragraph:
			chapters, err := p.unnumbered(node)
			if err != nil {
				return nil, err
			}
			p.items = append(p.items, chapters...)
		case *ast.List:
			chapters, err := p.numbered(node, nil, nil, &p.topLevel)
			if err != nil {
				return nil, err
			}
			p.items = append(p.items, chapters...)
		case *ast.HTMLBlock:
			// comments
		default:
			return nil, p.errorf(n, "unexpected %s block", n.Kind())
		}
	}
	return p.items, nil
}

type summaryParser struct {
	src      []byte
	items    []BookItem
	topLevel int
}

// unnumbered turns every link of a paragraph into a prefix or suffix chapter.
func (p *summaryParser) unnumbered(para *ast.Paragraph) ([]BookItem, error) {
	links := collectLinks(para)
	if len(links) == 0 {
		return nil, p.errorf(para, "expected a link to a chapter")
	}
	items := make([]BookItem, 0, len(links))
	for _, link := range links {
		items = append(items, NewChapterItem(p.chapter(link, nil, nil)))
	}
	return items, nil
}

// numbered converts a list into numbered chapters below parent.
func (p *summaryParser) numbered(list *ast.List, parent []int, parentNames []string, counter *int) ([]BookItem, error) {
	var items []BookItem
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		var ch *Chapter
		for c := li.FirstChild(); c != nil; c = c.NextSibling() {
			switch block := c.(type) {
			case *ast.TextBlock, *ast.Paragraph:
				if ch != nil {
					return nil, p.errorf(block, "list item has more than one chapter")
				}
				links := collectLinks(block)
				if len(links) != 1 {
					return nil, p.errorf(block, "list item must contain exactly one link")
				}
				*counter++
				number := append(append([]int{}, parent...), *counter)
				ch = p.chapter(links[0], number, parentNames)
			case *ast.List:
				if ch == nil {
					return nil, p.errorf(block, "nested list without a parent chapter")
				}
				var nested int
				names := append(append([]string{}, parentNames...), ch.Name)
				sub, err := p.numbered(block, ch.Number, names, &nested)
				if err != nil {
					return nil, err
				}
				ch.SubItems = append(ch.SubItems, sub...)
			default:
				return nil, p.errorf(block, "unexpected %s in list item", block.Kind())
			}
		}
		if ch == nil {
			return nil, p.errorf(li, "empty list item")
		}
		items = append(items, NewChapterItem(ch))
	}
	return items, nil
}

// chapter builds a chapter from a link. An empty destination makes a draft.
// Encoded spaces in the destination are decoded, as mdbook does.
func (p *summaryParser) chapter(link *ast.Link, number []int, parentNames []string) *Chapter {
	ch := &Chapter{
		Name:        inlineText(link, p.src),
		Number:      number,
		ParentNames: parentNames,
	}
	dest := strings.ReplaceAll(strings.TrimSpace(string(link.Destination)), "%20", " ")
	if dest != "" {
		ch.Path = &dest
		source := dest
		ch.SourcePath = &source
	}
	return ch
}

// errorf reports a syntax error with the 1-based line of n when known.
func (p *summaryParser) errorf(n ast.Node, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if line, ok := lineOf(n, p.src); ok {
		return fmt.Errorf("%w: line %d: %s", ErrSummarySyntax, line, msg)
	}
	return fmt.Errorf("%w: %s", ErrSummarySyntax, msg)
}

// lineOf finds the first source line of n, descending into children for
// container blocks that carry no lines of their own.
func lineOf(n ast.Node, src []byte) (int, bool) {
	for cur := n; cur != nil; cur = cur.FirstChild() {
		if cur.Type() != ast.TypeBlock {
			break
		}
		if lines := cur.Lines(); lines != nil && lines.Len() > 0 {
			start := lines.At(0).Start
			return strings.Count(string(src[:start]), "\n") + 1, true
		}
	}
	return 0, false
}

// collectLinks returns the top-level links of an inline container.
func collectLinks(n ast.Node) []*ast.Link {
	var links []*ast.Link
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if link, ok := c.(*ast.Link); ok {
			links = append(links, link)
		}
	}
	return links
}

// inlineText concatenates the text of n's inline descendants.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}
