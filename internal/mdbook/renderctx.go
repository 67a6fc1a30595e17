package mdbook

import (
	"encoding/json"
	"fmt"
	"io"

	readme "github.com/alnah/go-mdbook-readme"
)

// RendererName is the key of this backend's table in book.toml ([output.readme]).
const RendererName = "readme"

// Keys read from the renderer table.
const (
	rootKey = "root"
	htmlKey = "html"
)

// RenderContext is the payload mdbook sends to an alternative backend.
type RenderContext struct {
	Version     string         `json:"version"`
	Root        string         `json:"root"`
	Destination string         `json:"destination"`
	Book        Book           `json:"book"`
	Config      map[string]any `json:"config"`
}

// Book is the top-level book tree.
type Book struct {
	Sections []BookItem
}

// UnmarshalJSON accepts both the "sections" key used by mdbook 0.4 and the
// "items" key used by later releases.
func (b *Book) UnmarshalJSON(data []byte) error {
	var raw struct {
		Sections []BookItem `json:"sections"`
		Items    []BookItem `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Sections = raw.Sections
	if b.Sections == nil {
		b.Sections = raw.Items
	}
	return nil
}

// MarshalJSON writes the mdbook 0.4 layout.
func (b Book) MarshalJSON() ([]byte, error) {
	sections := b.Sections
	if sections == nil {
		sections = []BookItem{}
	}
	return json.Marshal(struct {
		Sections []BookItem `json:"sections"`
	}{sections})
}

// DecodeRenderContext reads a JSON RenderContext from r.
func DecodeRenderContext(r io.Reader) (*RenderContext, error) {
	var rc RenderContext
	if err := json.NewDecoder(r).Decode(&rc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeContext, err)
	}
	return &rc, nil
}

// Items returns the flattened book in mdbook iteration order.
func (rc *RenderContext) Items() []readme.Item {
	return Flatten(rc.Book.Sections)
}

// ReadmeRoot returns output.readme.root when it is a non-empty string and
// readme.DefaultRoot otherwise.
func (rc *RenderContext) ReadmeRoot() string {
	if s, ok := rc.rendererValue(rootKey).(string); ok && s != "" {
		return s
	}
	return readme.DefaultRoot
}

// ReadmeHTML reports whether output.readme.html is set to true.
func (rc *RenderContext) ReadmeHTML() bool {
	b, ok := rc.rendererValue(htmlKey).(bool)
	return ok && b
}

// BookTitle returns config.book.title, or "" when it is absent.
func (rc *RenderContext) BookTitle() string {
	book, ok := rc.Config["book"].(map[string]any)
	if !ok {
		return ""
	}
	title, _ := book["title"].(string)
	return title
}

// rendererValue looks up config.output.readme.<key>.
func (rc *RenderContext) rendererValue(key string) any {
	output, ok := rc.Config["output"].(map[string]any)
	if !ok {
		return nil
	}
	table, ok := output[RendererName].(map[string]any)
	if !ok {
		return nil
	}
	return table[key]
}
