package mdbook

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	readme "github.com/alnah/go-mdbook-readme"
)

// LocalBook is a book read from disk.
type LocalBook struct {
	Dir      string
	Manifest *Manifest
	Sections []BookItem
}

// LoadBook reads book.toml, parses SUMMARY.md and loads the content of every
// non-draft chapter from the source directory.
func LoadBook(ctx context.Context, dir string) (*LocalBook, error) {
	m, err := LoadManifest(dir)
	if err != nil {
		return nil, err
	}

	srcDir := m.SrcDir(dir)
	summaryPath := filepath.Join(srcDir, SummaryFile)
	summary, err := os.ReadFile(summaryPath) // #nosec G304 -- book directory is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSummaryNotFound, summaryPath)
		}
		return nil, fmt.Errorf("reading %s: %w", summaryPath, err)
	}

	sections, err := ParseSummary(summary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", summaryPath, err)
	}

	if err := loadContents(ctx, srcDir, sections); err != nil {
		return nil, err
	}

	return &LocalBook{Dir: dir, Manifest: m, Sections: sections}, nil
}

// Items returns the flattened book in mdbook iteration order.
func (b *LocalBook) Items() []readme.Item {
	return Flatten(b.Sections)
}

// loadContents fills Chapter.Content for every chapter that has a source
// file. Files are read concurrently; the first failure cancels the rest.
func loadContents(ctx context.Context, srcDir string, items []BookItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	chapters := sourcedChapters(items, nil)
	if len(chapters) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), len(chapters)))

	for _, ch := range chapters {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(srcDir, filepath.FromSlash(*ch.SourcePath))
			data, err := os.ReadFile(path) // #nosec G304 -- paths come from the book's SUMMARY.md
			if err != nil {
				return fmt.Errorf("%w: %q: %w", ErrReadChapter, ch.Name, err)
			}
			// Each goroutine owns its chapter.
			ch.Content = string(data)
			return nil
		})
	}

	return g.Wait()
}

// sourcedChapters appends the chapters of items that have a source file,
// depth first.
func sourcedChapters(items []BookItem, out []*Chapter) []*Chapter {
	for _, it := range items {
		if it.Kind != KindChapter || it.Chapter == nil {
			continue
		}
		if it.Chapter.SourcePath != nil {
			out = append(out, it.Chapter)
		}
		out = sourcedChapters(it.Chapter.SubItems, out)
	}
	return out
}
