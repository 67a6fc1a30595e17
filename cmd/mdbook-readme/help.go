package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-readme [flags]")
	fmt.Fprintln(w, "       mdbook-readme <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Without a command, runs as an mdbook backend: reads the render")
	fmt.Fprintln(w, "context from stdin and writes README.md to the destination.")
	fmt.Fprintln(w, "Enable it with an [output.readme] table in book.toml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate README.md from a book directory")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Backend flags:")
	printOutputFlags(w)
	fmt.Fprintln(w, "      --skip-version-check  Warn instead of failing on mdbook version mismatch")
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	printEnvVars(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdbook-readme help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-readme build [book-dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate README.md from book.toml and src/SUMMARY.md without mdbook.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  book-dir    Book root containing book.toml (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	printOutputFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	printCommonFlags(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdbook-readme config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after merging the config file and")
	fmt.Fprintln(w, "MDBOOK_README_* environment variables, as YAML.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

func printOutputFlags(w io.Writer) {
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory")
	fmt.Fprintln(w, "  -f, --filename <name>     Output file name (default: README.md)")
	fmt.Fprintln(w, "  -r, --root <path>         Prefix of chapter links (default: .)")
	fmt.Fprintln(w, "      --html                Also write an HTML preview")
	fmt.Fprintln(w, "      --style <name>        Preview page style: default, dark (default: default)")
	fmt.Fprintln(w, "      --assets <dir>        Directory with custom styles/{name}.css")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show item counts and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-readme version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdbook-readme help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
