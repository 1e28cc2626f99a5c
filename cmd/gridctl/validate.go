package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m4theushw/material-ui-x/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the document, its hooks and its rows",
	Long: `Validate loads the document, binds every Lua hook it names and builds
the grid over its rows. Document problems are reported all at once.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(doc, logger, sessionOptions{})
		if err != nil {
			return err
		}
		defer s.close()
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d columns, %d rows\n", len(s.grid.Columns()), s.grid.RowsCount())
		return nil
	},
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables that override the document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.EnvVars(), "\n"))
		return err
	},
}
