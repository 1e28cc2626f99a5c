package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix starts every override variable.
const EnvPrefix = "GRID_"

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(string) (string, bool)

type envSetter func(d *Document, v string) error

// envMapping maps override variables to the settings they replace.
var envMapping = map[string]envSetter{
	"GRID_SIGNATURE":     func(d *Document, v string) error { d.Grid.Signature = strings.ToLower(v); return nil },
	"GRID_THROTTLE_ROWS": func(d *Document, v string) error { d.Grid.ThrottleRows = v; return nil },
	"GRID_ROW_COUNT":     intSetter(func(d *Document) *int { return &d.Grid.RowCount }),
	"GRID_PAGE_SIZE":     intSetter(func(d *Document) *int { return &d.Grid.PageSize }),
	"GRID_ROW_HEIGHT": func(d *Document, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		d.Grid.RowHeight = f
		return nil
	},
	"GRID_ROW_GROUPING": func(d *Document, v string) error {
		d.Grid.Grouping.Model = splitList(v)
		return nil
	},
	"GRID_GROUPING_MODE":   func(d *Document, v string) error { d.Grid.Grouping.Mode = strings.ToLower(v); return nil },
	"GRID_EXPANSION_DEPTH": intSetter(func(d *Document) *int { return &d.Grid.Grouping.DefaultExpansionDepth }),
	"GRID_SOURCE_PATH":     func(d *Document, v string) error { d.Source.Path = v; return nil },
	"GRID_SOURCE_QUERY":    func(d *Document, v string) error { d.Source.Query = v; return nil },
	"GRID_SCRIPT_PATH":     func(d *Document, v string) error { d.Script.Path = v; return nil },
	"GRID_SNAPSHOT_PATH":   func(d *Document, v string) error { d.Snapshot.Path = v; return nil },
	"GRID_SNAPSHOT_KEY":    func(d *Document, v string) error { d.Snapshot.Key = v; return nil },
	"GRID_LOG_LEVEL":       func(d *Document, v string) error { d.Logging.Level = strings.ToLower(v); return nil },
	"GRID_SCRIPT_TIMEOUT": func(d *Document, v string) error {
		if _, err := time.ParseDuration(v); err != nil {
			return err
		}
		d.Script.Timeout = v
		return nil
	},
}

func intSetter(field func(*Document) *int) envSetter {
	return func(d *Document, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*field(d) = n
		return nil
	}
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// EnvVars lists the recognized override variables, sorted.
func EnvVars() []string {
	return slices.Sorted(maps.Keys(envMapping))
}

// ApplyEnv overrides d from the environment. Empty values are applied.
func ApplyEnv(d *Document, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	for name, set := range envMapping {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		if err := set(d, v); err != nil {
			return &EnvError{Var: name, Value: v, Err: fmt.Errorf("invalid value: %w", err)}
		}
	}
	return nil
}
