package main

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdbook-readme/internal/hints"
	"github.com/alnah/go-mdbook-readme/internal/mdbook"
)

// runBackend reads a RenderContext from stdin, checks the mdbook version
// and writes README.md to the destination mdbook assigned.
func runBackend(ctx context.Context, args []string, env *Environment) error {
	f, err := parseBackendFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	p := newPrinter(env, f.common.quiet, f.common.verbose)
	warnUnknownEnvVars(p)

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(f.common.config, envCfg)
	if err != nil {
		return err
	}

	rc, err := mdbook.DecodeRenderContext(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w%s", err, hints.ForBackendInput())
	}

	s, err := resolveSettings(&f.output, cfg, bookDefaults{
		root:        rc.ReadmeRoot(),
		destination: rc.Destination,
		title:       rc.BookTitle(),
		html:        rc.ReadmeHTML(),
	})
	if err != nil {
		return err
	}
	if f.skipVersionCheck {
		s.skipVersionCheck = true
	}

	if err := checkVersion(rc.Version, s, p); err != nil {
		return err
	}

	return writeReadme(ctx, rc.Items(), s, p, env)
}

// checkVersion compares the book's mdbook version with the one this
// backend targets. A mismatch is only a warning when the check is skipped.
func checkVersion(bookVersion string, s settings, p *printer) error {
	err := mdbook.CheckVersion(mdbook.CompatibleVersion, bookVersion)
	if err == nil {
		return nil
	}
	if s.skipVersionCheck {
		p.warnf("%v", err)
		return nil
	}
	return fmt.Errorf("%w%s", err, hints.ForVersionMismatch(mdbook.CompatibleVersion))
}
