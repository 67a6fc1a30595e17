package pipeline

import (
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// chapterExtensions lists the source extensions mdbook renders to .html.
var chapterExtensions = []string{".md", ".markdown"}

// RewriteChapterLinks points relative chapter links at the pages mdbook's
// HTML renderer produces: "./ch1.md#intro" becomes "./ch1.html#intro".
//
// Does NOT rewrite:
//   - URLs with a scheme, protocol-relative URLs and anchors
//   - Absolute paths
//   - Links to files that are not Markdown sources
func RewriteChapterLinks(htmlContent string) (string, error) {
	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	rewriteNode(doc)

	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteNode traverses the DOM and rewrites chapter links.
func rewriteNode(n *html.Node) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key == "href" {
				n.Attr[i].Val = chapterHref(attr.Val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c)
	}
}

// chapterHref returns href with a Markdown extension replaced by .html.
// Other values are returned unchanged.
func chapterHref(href string) string {
	if !isRelativeLink(href) {
		return href
	}

	target, fragment := href, ""
	if idx := strings.IndexAny(href, "#?"); idx != -1 {
		target, fragment = href[:idx], href[idx:]
	}

	ext := path.Ext(target)
	for _, md := range chapterExtensions {
		if strings.EqualFold(ext, md) {
			return strings.TrimSuffix(target, ext) + ".html" + fragment
		}
	}
	return href
}

// isRelativeLink returns true if the link should be considered for rewriting.
func isRelativeLink(href string) bool {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "/") {
		return false
	}
	// Scheme ("https:", "mailto:", "file:") or protocol-relative URL
	if idx := strings.Index(href, ":"); idx != -1 && !strings.ContainsAny(href[:idx], "/?#") {
		return false
	}
	return true
}
