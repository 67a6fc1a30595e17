package pipeline

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdbook-readme/internal/assets"
)

// Identifiers of the injected stylesheets.
const (
	pageStyleID      = "mdbook-readme-page"
	highlightStyleID = "mdbook-readme-highlight"
)

// Preview turns the generated README Markdown into a standalone HTML page.
type Preview struct {
	converter         HTMLConverter
	pageInjector      CSSInjector
	highlightInjector CSSInjector
	styles            assets.StyleLoader
	pageStyle         string
	style             string
}

// PreviewOption configures a Preview.
type PreviewOption func(*Preview)

// WithConverter replaces the Markdown converter.
func WithConverter(c HTMLConverter) PreviewOption {
	return func(p *Preview) {
		if c != nil {
			p.converter = c
		}
	}
}

// WithStyle selects the chroma style of the highlight stylesheet.
// An empty name disables the stylesheet.
func WithStyle(name string) PreviewOption {
	return func(p *Preview) {
		p.style = name
	}
}

// WithStyleLoader sets where page styles come from. Nil is ignored.
func WithStyleLoader(l assets.StyleLoader) PreviewOption {
	return func(p *Preview) {
		if l != nil {
			p.styles = l
		}
	}
}

// WithPageStyle selects the page style by name.
// An empty name disables the page stylesheet.
func WithPageStyle(name string) PreviewOption {
	return func(p *Preview) {
		p.pageStyle = name
	}
}

// NewPreview creates a Preview using a GoldmarkConverter, the embedded
// default page style and DefaultStyle for highlighting.
func NewPreview(opts ...PreviewOption) *Preview {
	p := &Preview{
		converter:         NewGoldmarkConverter(),
		pageInjector:      &CSSInjection{ID: pageStyleID},
		highlightInjector: &CSSInjection{ID: highlightStyleID},
		styles:            assets.NewEmbeddedLoader(),
		pageStyle:         assets.DefaultStyleName,
		style:             DefaultStyle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render converts markdown, rewrites chapter links and injects the page
// and highlight stylesheets, in that order.
func (p *Preview) Render(ctx context.Context, markdown string) (string, error) {
	doc, err := p.converter.ToHTML(ctx, markdown)
	if err != nil {
		return "", err
	}

	doc, err = RewriteChapterLinks(doc)
	if err != nil {
		return "", fmt.Errorf("%w: rewriting links: %v", ErrHTMLConversion, err)
	}

	if p.pageStyle != "" {
		css, err := p.styles.LoadStyle(p.pageStyle)
		if err != nil {
			return "", fmt.Errorf("loading page style: %w", err)
		}
		doc = p.pageInjector.InjectCSS(ctx, doc, css)
	}

	if p.style == "" {
		return doc, nil
	}
	css, err := HighlightCSS(p.style)
	if err != nil {
		return "", err
	}
	return p.highlightInjector.InjectCSS(ctx, doc, css), nil
}
