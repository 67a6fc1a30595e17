package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdbook-readme/internal/mdbook"
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrWriteOutput    = errors.New("failed to write output")
)

// runMain runs the CLI and returns the process exit code.
// args includes the program name, as os.Args does.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) > 0 {
		args = args[1:]
	}

	err := run(ctx, args, env)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}

	newPrinter(env, false, false).failed(err)
	return exitCodeFor(err)
}

// run dispatches to a command. Without a command, or when the first
// argument is a flag, it runs in backend mode.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 || (strings.HasPrefix(args[0], "-") && !isHelpFlag(args[0]) && !isVersionFlag(args[0])) {
		if len(args) == 0 && env.IsTerminal != nil && env.IsTerminal() {
			// Nobody is piping a render context: the user ran us by hand.
			printUsage(env.Stdout)
			return nil
		}
		return runBackend(ctx, args, env)
	}

	switch cmd := args[0]; {
	case cmd == "build":
		return runBuild(ctx, args[1:], env)
	case cmd == "config":
		return runConfig(args[1:], env)
	case cmd == "version" || isVersionFlag(cmd):
		return runVersion(env)
	case cmd == "help" || isHelpFlag(cmd):
		return runHelp(args[1:], env)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
}

func isHelpFlag(s string) bool {
	return s == "-h" || s == "--help"
}

func isVersionFlag(s string) bool {
	return s == "--version"
}

// runVersion prints the CLI version and the mdbook release it targets.
func runVersion(env *Environment) error {
	fmt.Fprintf(env.Stdout, "mdbook-readme %s (mdbook %s)\n", Version, mdbook.CompatibleVersion)
	return nil
}

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	f, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	p := newPrinter(env, f.quiet, f.verbose)
	warnUnknownEnvVars(p)

	cfg, err := loadConfig(f.config, loadEnvConfig())
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("rendering config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
