// Package mdbook obtains the ordered document tree that the readme formatter
// consumes.
//
// Two sources are supported:
//   - the JSON RenderContext mdbook writes to an alternative backend's stdin
//     (DecodeRenderContext)
//   - a book directory on disk, read from book.toml and src/SUMMARY.md
//     (LoadBook)
//
// Both produce BookItem trees that Flatten turns into the depth-first item
// sequence mdbook itself iterates over.
package mdbook
