// Package pipeline renders the generated README page as a standalone HTML preview.
//
// The preview is built in stages:
//   - Markdown to HTML conversion via Goldmark (GFM, chroma highlighting),
//     with the body sanitized by a bluemonday user-content policy
//   - Chapter link rewriting (.md targets become the .html pages mdbook emits)
//   - Page stylesheet injection, from internal/assets
//   - Highlight stylesheet injection, generated from a chroma style
//
// The Markdown page itself is produced by the root readme package; this
// package only consumes its output.
package pipeline
