package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/m4theushw/material-ui-x/internal/columns"
	"github.com/m4theushw/material-ui-x/internal/grid"
	"github.com/m4theushw/material-ui-x/internal/grouping"
	"github.com/m4theushw/material-ui-x/internal/rows"
)

var (
	showAll       bool
	showPage      int
	showDepth     int
	showASCII     bool
	showNoRestore bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the visible rows as a tree",
	Long: `Show builds the grid described by the document and prints its visible
rows: groups with their filtered leaf count, leaves with the formatted value
of every visible column.

Only the current page is printed unless --all is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("depth") {
			doc.Grid.Grouping.DefaultExpansionDepth = showDepth
		}
		s, err := openSession(doc, logger, sessionOptions{restore: !showNoRestore})
		if err != nil {
			return err
		}
		defer s.close()

		if cmd.Flags().Changed("page") {
			s.grid.SetPage(showPage)
		}
		ids := s.grid.PageRowIDs()
		if showAll {
			ids = s.grid.VisibleRowIDs()
		}
		gl := asciiGlyphs
		if !showASCII && isTerminal(cmd.OutOrStdout()) {
			gl = unicodeGlyphs
		}
		out := cmd.OutOrStdout()
		if err := writeTree(out, s.grid, ids, gl); err != nil {
			return err
		}
		p := s.grid.Page()
		_, err = fmt.Fprintf(out, "%d shown, %d rows, page %d/%d\n",
			len(ids), s.grid.RowsCount(), p.Page+1, s.grid.PageCount())
		return err
	},
}

func init() {
	showCmd.Flags().BoolVar(&showAll, "all", false, "print every visible row, ignoring pagination")
	showCmd.Flags().IntVar(&showPage, "page", 0, "zero-based page to print")
	showCmd.Flags().IntVar(&showDepth, "depth", 0, "default group expansion depth, -1 expands everything")
	showCmd.Flags().BoolVar(&showASCII, "ascii", false, "draw the tree with ASCII only")
	showCmd.Flags().BoolVar(&showNoRestore, "no-restore", false, "ignore the saved snapshot")
}

type glyphs struct {
	expanded, collapsed, leaf string
}

var (
	unicodeGlyphs = glyphs{expanded: "▾ ", collapsed: "▸ ", leaf: "• "}
	asciiGlyphs   = glyphs{expanded: "v ", collapsed: "> ", leaf: "- "}
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeTree prints the header and one line per row id.
func writeTree(w io.Writer, g *grid.Grid, ids []rows.ID, gl glyphs) error {
	var cols []*columns.ColDef
	var headers []string
	for _, c := range g.VisibleColumns() {
		if grouping.IsGroupingColumn(c.Field) || c.Field == grouping.CheckboxField {
			continue
		}
		cols = append(cols, c)
		h := c.HeaderName
		if h == "" {
			h = c.Field
		}
		headers = append(headers, h)
	}
	if _, err := fmt.Fprintln(w, strings.Join(headers, " | ")); err != nil {
		return err
	}

	for _, id := range ids {
		node, ok := g.RowNode(id)
		if !ok {
			continue
		}
		var b strings.Builder
		b.WriteString(strings.Repeat("  ", node.Depth))
		if node.IsGroup() {
			if node.ChildrenExpanded {
				b.WriteString(gl.expanded)
			} else {
				b.WriteString(gl.collapsed)
			}
			fmt.Fprintf(&b, "%s (%d)", columns.FormatValue(node.GroupingKey), g.FilteredDescendantCount(id))
		} else {
			b.WriteString(gl.leaf)
			values := make([]string, 0, len(cols))
			for _, c := range cols {
				v, err := g.FormattedValue(id, c.Field)
				if err != nil {
					return err
				}
				values = append(values, v)
			}
			b.WriteString(strings.Join(values, " | "))
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
