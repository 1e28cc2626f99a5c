// Package main is the entry point for gridctl, a command line front end to
// the grid engine.
//
// gridctl reads a grid document (TOML or YAML) describing the columns, the
// row source, optional Lua hooks and the initial models, then prints the
// resulting row tree, runs an interactive terminal view or manages saved
// state snapshots.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/m4theushw/material-ui-x/internal/config"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps document problems to user errors and the rest to system
// errors.
func exitCode(err error) int {
	var pe *config.ParseError
	switch {
	case errors.Is(err, config.ErrValidationFailed),
		errors.Is(err, config.ErrUnknownFormat),
		errors.Is(err, config.ErrHooksWithoutScript),
		errors.Is(err, errUsage),
		errors.As(err, &pe):
		return exitUserError
	}
	return exitSysError
}
