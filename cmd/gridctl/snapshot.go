package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m4theushw/material-ui-x/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage saved grid state",
	Long: `Snapshots hold the restorable state of a grid: column widths and
visibility, the filter, sort and grouping models, group expansion and
pagination. They live in the bbolt database named by snapshot.path.`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save [key]",
	Short: "Save the state the document produces",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(doc, logger, sessionOptions{})
		if err != nil {
			return err
		}
		defer s.close()
		if err := s.requireStore(); err != nil {
			return err
		}
		key := keyArg(s, args)
		if err := s.store.Save(key, s.grid.ExportState()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", key)
		return nil
	},
}

var snapshotShowCmd = &cobra.Command{
	Use:   "show [key]",
	Short: "Print a snapshot as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *snapshot.Store) error {
			key := keyArgOr(args, doc.Snapshot.Key)
			state, err := st.Load(key)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			data, err := snapshot.Encode(state)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		})
	},
}

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshot keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *snapshot.Store) error {
			keys, err := st.Keys()
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		})
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *snapshot.Store) error {
			return st.Delete(args[0])
		})
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotShowCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
}

// withStore opens the snapshot database without building a grid.
func withStore(fn func(*snapshot.Store) error) error {
	if doc.Snapshot.Path == "" {
		return fmt.Errorf("%w: snapshot.path is not set", errUsage)
	}
	st, err := snapshot.Open(doc.Snapshot.Path, logger)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

func keyArg(s *session, args []string) string {
	return keyArgOr(args, s.snapshotKey())
}

func keyArgOr(args []string, fallback string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if fallback == "" {
		return defaultSnapshotKey
	}
	return fallback
}
