package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-mdbook-readme/internal/hints"
	"github.com/alnah/go-mdbook-readme/internal/mdbook"
)

// defaultBookDir is used when build gets no book directory.
const defaultBookDir = "."

// runBuild loads a book from disk and writes its README without mdbook.
// The output goes where mdbook would put it: <build-dir>/readme.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: build takes one book directory, got %d", ErrTooManyArgs, len(positional))
	}
	dir := defaultBookDir
	if len(positional) == 1 {
		dir = positional[0]
	}

	p := newPrinter(env, f.common.quiet, f.common.verbose)
	warnUnknownEnvVars(p)

	cfg, err := loadConfig(f.common.config, loadEnvConfig())
	if err != nil {
		return err
	}

	book, err := mdbook.LoadBook(ctx, dir)
	if err != nil {
		if errors.Is(err, mdbook.ErrSummaryNotFound) {
			srcDir := ""
			if m, mErr := mdbook.LoadManifest(dir); mErr == nil {
				srcDir = m.SrcDir(dir)
			}
			return fmt.Errorf("%w%s", err, hints.ForSummaryNotFound(srcDir))
		}
		return err
	}
	p.debugf("loaded %s (src %s)", dir, book.Manifest.SrcDir(dir))

	s, err := resolveSettings(&f.output, cfg, bookDefaults{
		root:        book.Manifest.Root,
		destination: book.Manifest.Destination(dir),
		title:       book.Manifest.Title,
		html:        book.Manifest.HTML,
	})
	if err != nil {
		return err
	}

	return writeReadme(ctx, book.Items(), s, p, env)
}
