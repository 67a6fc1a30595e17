// Package readme renders an mdbook document tree as a single Markdown page.
//
// # Quick Start
//
// Build the ordered item sequence, create a formatter and write the page:
//
//	items := []readme.Item{
//	    readme.Chapter{Name: "Ch1", Number: readme.SectionNumber{1}, Path: "ch1.md", SourcePath: "ch1.md"},
//	    readme.Separator{},
//	    readme.PartTitle{Title: "Reference"},
//	}
//
//	f := readme.NewFormatter(readme.WithRoot("docs"))
//	if err := f.Write(os.Stdout, items); err != nil {
//	    log.Fatal(err)
//	}
//
// Use Formatter.Lines to obtain the page as a slice of lines instead.
//
// # Classification
//
// Items are processed in a single left-to-right pass. Each chapter is
// classified from its own shape and the classification of the chapter
// before it:
//
//   - a chapter with a section number is Numbered
//   - an unnumbered chapter after a Numbered one is Suffix, otherwise Prefix
//   - a chapter without a path is Draft, whatever the rules above say
//
// Separators and part titles never change the carried classification.
//
// # Output
//
//   - Prefix and Suffix chapters emit their content followed by a blank line.
//   - Numbered chapters emit a list item linking to root/source_path,
//     indented two spaces per nesting level.
//   - Draft chapters emit nothing.
//   - Separators emit "---", part titles emit "# Title", each followed by a
//     blank line.
//
// A blank line closes a run of numbered items before a Suffix chapter, a
// separator or a part title.
package readme
