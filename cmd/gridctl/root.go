package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/m4theushw/material-ui-x/internal/config"
)

var errUsage = errors.New("usage")

// Global flag values.
var (
	flagConfig   string
	flagRows     string
	flagLogLevel string
)

// Set by PersistentPreRunE for every subcommand.
var (
	doc    *config.Document
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "gridctl",
	Short:         "gridctl drives a data grid from a document",
	Version:       version + " (" + commit + ")",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDocument(flagConfig)
		if err != nil {
			return err
		}
		if flagRows != "" {
			d.Source.Path = flagRows
		}
		if flagLogLevel != "" {
			d.Logging.Level = flagLogLevel
			if err := d.Validate(); err != nil {
				return err
			}
		}
		doc = d
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: d.LogLevel()}))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "grid document (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&flagRows, "rows", "", "JSON row file, overriding source.path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(envCmd)
}

// loadDocument loads path, or builds the default document overridden by
// the environment when path is empty.
func loadDocument(path string) (*config.Document, error) {
	if path != "" {
		return config.Load(path)
	}
	d := config.Default()
	if err := config.ApplyEnv(d, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return d, nil
}
