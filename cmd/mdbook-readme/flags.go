package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds flags that shape the generated page.
type outputFlags struct {
	dir       string
	filename  string
	root      string
	html      bool
	htmlSet   bool // --html or --html=false was given
	style     string
	assetsDir string
}

// backendFlags holds flags for backend mode (invoked by mdbook).
type backendFlags struct {
	common           commonFlags
	output           outputFlags
	skipVersionCheck bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common commonFlags
	output outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show item counts and timing")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.dir, "output", "o", "", "output directory")
	fs.StringVarP(&f.filename, "filename", "f", "", "output file name (default README.md)")
	fs.StringVarP(&f.root, "root", "r", "", "prefix of chapter links (default \".\")")
	fs.BoolVar(&f.html, "html", false, "also write an HTML preview")
	fs.StringVar(&f.style, "style", "", "preview page style (default \"default\")")
	fs.StringVar(&f.assetsDir, "assets", "", "directory with custom styles/{name}.css")
}

// parseBackendFlags parses backend mode flags. Backend mode takes no arguments.
func parseBackendFlags(args []string, w io.Writer) (*backendFlags, error) {
	fs := flag.NewFlagSet("mdbook-readme", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &backendFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	fs.BoolVar(&f.skipVersionCheck, "skip-version-check", false, "warn instead of failing on mdbook version mismatch")

	fs.Usage = func() { printUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrUnknownCommand, fs.Arg(0))
	}
	f.output.htmlSet = fs.Changed("html")

	return f, nil
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, w io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &buildFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printBuildUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	f.output.htmlSet = fs.Changed("html")

	return f, fs.Args(), nil
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string, w io.Writer) (*commonFlags, error) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(w)
	f := &commonFlags{}

	addCommonFlags(fs, f)

	fs.Usage = func() { printConfigUsage(w) }

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: config takes no arguments", ErrTooManyArgs)
	}
	return f, nil
}
