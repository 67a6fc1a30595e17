package main

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time, and terminal detection.
type Environment struct {
	Now        func() time.Time
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal func() bool // Reports whether Stdin is an interactive terminal
	NoColor    bool        // Disable colored status output
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: stdinIsTerminal,
		NoColor:    color.NoColor,
	}
}

// stdinIsTerminal reports whether os.Stdin is a terminal, including
// Cygwin/MSYS pseudo-terminals on Windows.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
