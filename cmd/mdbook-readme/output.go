package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// printer writes human status messages honoring --quiet and --verbose.
// Errors are always printed.
type printer struct {
	stdout  io.Writer
	stderr  io.Writer
	quiet   bool
	verbose bool

	okColor   *color.Color
	warnColor *color.Color
	failColor *color.Color
}

// newPrinter creates a printer for env.
func newPrinter(env *Environment, quiet, verbose bool) *printer {
	p := &printer{
		stdout:    env.Stdout,
		stderr:    env.Stderr,
		quiet:     quiet,
		verbose:   verbose && !quiet,
		okColor:   color.New(color.FgGreen),
		warnColor: color.New(color.FgYellow),
		failColor: color.New(color.FgRed, color.Bold),
	}
	if env.NoColor {
		p.okColor.DisableColor()
		p.warnColor.DisableColor()
		p.failColor.DisableColor()
	} else {
		p.okColor.EnableColor()
		p.warnColor.EnableColor()
		p.failColor.EnableColor()
	}
	return p
}

// created reports a written file. Verbose mode adds the elapsed time.
func (p *printer) created(path string, elapsed time.Duration) {
	if p.quiet {
		return
	}
	if p.verbose {
		fmt.Fprintf(p.stdout, "%s %s (%v)\n", p.okColor.Sprint("Created"), path, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(p.stdout, "%s %s\n", p.okColor.Sprint("Created"), path)
}

// debugf prints details shown only with --verbose.
func (p *printer) debugf(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.stderr, format+"\n", args...)
}

// warnf prints a warning unless --quiet is set.
func (p *printer) warnf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.stderr, "%s %s\n", p.warnColor.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// failed prints an error.
func (p *printer) failed(err error) {
	fmt.Fprintf(p.stderr, "%s %v\n", p.failColor.Sprint("error:"), err)
}
