package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/config"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/rows"
	"github.com/m4theushw/material-ui-x/internal/rowsource"
	"github.com/m4theushw/material-ui-x/internal/script"
	"github.com/m4theushw/material-ui-x/internal/snapshot"
)

// defaultSnapshotKey is used when the document names no key.
const defaultSnapshotKey = "default"

// session is a grid built from a document along with the resources it
// holds open.
type session struct {
	doc    *config.Document
	grid   *grid.Grid
	engine *script.Engine
	store  *snapshot.Store
	logger *slog.Logger
}

// sessionOptions tweak how a session is opened.
type sessionOptions struct {
	// restore applies the saved snapshot, if there is one.
	restore bool
	// extra options are applied after the document's.
	extra []grid.Option
}

// openSession loads the hooks script and the rows, builds the grid and
// optionally restores its snapshot.
func openSession(d *config.Document, logger *slog.Logger, so sessionOptions) (_ *session, err error) {
	s := &session{doc: d, logger: logger}
	defer func() {
		if err != nil {
			s.close()
		}
	}()

	var binder config.HookBinder
	if d.Script.Path != "" {
		s.engine = script.New(append(d.ScriptOptions(), script.WithLogger(logger))...)
		if err := s.engine.LoadFile(d.Script.Path); err != nil {
			return nil, err
		}
		binder = s.engine
	}

	var data []rows.Row
	if d.Source.Path != "" {
		if data, err = rowsource.Load(d.Source.Path, d.Source.Query); err != nil {
			return nil, err
		}
	}

	var defs []*columns.ColDef
	if len(d.Columns) > 0 {
		if defs, err = d.ColDefs(binder); err != nil {
			return nil, err
		}
	} else {
		defs = rowsource.InferColumns(data)
		logger.Debug("inferred columns", "count", len(defs))
	}

	opts := append(d.Options(), grid.WithLogger(logger))
	if d.Snapshot.Path != "" {
		if s.store, err = snapshot.Open(d.Snapshot.Path, logger); err != nil {
			return nil, err
		}
		if so.restore {
			st, err := s.store.Load(s.snapshotKey())
			switch {
			case err == nil:
				opts = append(opts, grid.WithInitialState(st))
			case errors.Is(err, snapshot.ErrNoSnapshot):
			default:
				return nil, err
			}
		}
	}
	opts = append(opts, so.extra...)

	if s.grid, err = grid.New(defs, opts...); err != nil {
		return nil, fmt.Errorf("creating grid: %w", err)
	}
	if err := s.grid.SetRows(data); err != nil {
		return nil, err
	}
	s.grid.FlushRows()
	logger.Info("grid ready", "rows", len(data), "columns", len(defs))
	return s, nil
}

func (s *session) snapshotKey() string {
	if s.doc.Snapshot.Key != "" {
		return s.doc.Snapshot.Key
	}
	return defaultSnapshotKey
}

// requireStore fails when the document configures no snapshot database.
func (s *session) requireStore() error {
	if s.store == nil {
		return fmt.Errorf("%w: snapshot.path is not set", errUsage)
	}
	return nil
}

// apply pushes the models of a reloaded document into the running grid.
func (s *session) apply(d *config.Document) {
	s.grid.SetSortModel(d.SortModel())
	s.grid.SetFilterModel(d.FilterModel())
	s.grid.SetRowGroupingModel(append([]string(nil), d.Grid.Grouping.Model...))
	if d.Grid.Visibility != nil {
		s.grid.SetColumnVisibilityModel(columns.VisibilityModel(d.Grid.Visibility))
	}
	if err := s.grid.SetPageSize(d.Grid.PageSize); err != nil {
		s.logger.Warn("page size not applied", "error", err)
	}
	s.doc = d
}

func (s *session) close() {
	if s.grid != nil {
		s.grid.Close()
	}
	if s.engine != nil {
		s.engine.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing snapshot store", "error", err)
		}
	}
}
