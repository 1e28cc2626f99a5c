package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/m4theushw/material-ui-x/internal/config"
	"github.com/m4theushw/material-ui-x/internal/host/terminal"
)

var (
	viewWatch   bool
	viewSave    bool
	viewLogFile string
	viewCell    float64
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse and edit the grid in the terminal",
	Long: `View opens the grid full screen. Arrow keys move the focus, Enter or a
double click edits a cell, Space toggles a group and dragging a header edge
resizes a column. Ctrl+C quits.

The terminal owns stdout and stderr while the view runs, so logs are
discarded unless --log-file is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := slog.New(slog.DiscardHandler)
		if viewLogFile != "" {
			f, err := os.OpenFile(viewLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return err
			}
			defer f.Close()
			log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: doc.LogLevel()}))
		}

		s, err := openSession(doc, log, sessionOptions{restore: true})
		if err != nil {
			return err
		}
		defer s.close()
		if viewSave {
			if err := s.requireStore(); err != nil {
				return err
			}
		}

		if viewWatch && doc.Path != "" {
			w, err := config.NewWatcher(doc.Path, func(d *config.Document, err error) {
				if err != nil {
					return
				}
				s.apply(d)
			}, config.WithWatchLogger(log))
			if err != nil {
				return err
			}
			defer w.Close()
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing screen: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		h := terminal.New(s.grid, terminal.WithCellWidth(viewCell), terminal.WithLogger(log))
		if err := h.Run(ctx, screen); err != nil && ctx.Err() == nil {
			return err
		}

		if viewSave {
			return s.store.Save(s.snapshotKey(), s.grid.ExportState())
		}
		return nil
	},
}

func init() {
	viewCmd.Flags().BoolVar(&viewWatch, "watch", false, "reapply the models when the document changes")
	viewCmd.Flags().BoolVar(&viewSave, "save", false, "save a snapshot on exit")
	viewCmd.Flags().StringVar(&viewLogFile, "log-file", "", "append logs to this file")
	viewCmd.Flags().Float64Var(&viewCell, "cell-width", terminal.DefaultCellWidth, "width units per terminal cell")
}
