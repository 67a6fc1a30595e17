package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	readme "github.com/alnah/go-mdbook-readme"
	"github.com/alnah/go-mdbook-readme/internal/assets"
	"github.com/alnah/go-mdbook-readme/internal/fileutil"
	"github.com/alnah/go-mdbook-readme/internal/hints"
	"github.com/alnah/go-mdbook-readme/internal/pipeline"
)

// writeReadme formats items into the README page at s.outputPath(), then
// writes the HTML preview next to it when s.html is set.
func writeReadme(ctx context.Context, items []readme.Item, s settings, p *printer, env *Environment) error {
	start := env.Now()
	p.debugf("formatting %d items with root %q", len(items), s.root)

	var buf bytes.Buffer
	formatter := readme.NewFormatter(readme.WithRoot(s.root))
	if err := formatter.Write(&buf, items); err != nil {
		if errors.Is(err, readme.ErrMissingSourcePath) {
			return fmt.Errorf("%w%s", err, hints.ForMissingSourcePath())
		}
		return err
	}

	path := s.outputPath()
	if err := fileutil.WriteFileAtomic(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	p.created(path, elapsed(env, start))

	if !s.html {
		return nil
	}

	start = env.Now()
	styles, err := assets.NewAssetResolver(s.assetsDir)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForAssetsDirectory(s.assetsDir))
	}
	if styles.HasCustomLoader() {
		if !fileutil.DirExists(filepath.Join(s.assetsDir, "styles")) {
			p.warnf("%s has no styles directory, using built-in styles", s.assetsDir)
		}
		p.debugf("loading styles from %s", s.assetsDir)
	}
	preview := pipeline.NewPreview(
		pipeline.WithConverter(pipeline.NewGoldmarkConverter(pipeline.WithTitle(s.title))),
		pipeline.WithStyleLoader(styles),
		pipeline.WithPageStyle(s.style),
	)
	doc, err := preview.Render(ctx, buf.String())
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	htmlPath := fileutil.ReplaceExt(path, ".html")
	if err := fileutil.WriteFileAtomic(htmlPath, []byte(doc)); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	p.created(htmlPath, elapsed(env, start))
	return nil
}

func elapsed(env *Environment, start time.Time) time.Duration {
	return env.Now().Sub(start)
}
