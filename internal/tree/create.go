package tree

import "github.com/m4theushw/material-ui-x/internal/rows"

// CreateParams is passed to the row tree creation processor of the active
// strategy.
type CreateParams struct {
	Cache    *rows.Cache
	Previous *Tree
}

// Created is the result of row tree creation. IDToRow holds the data rows
// plus any row the strategy synthesized for its group nodes.
type Created struct {
	Tree    *Tree
	IDToRow map[rows.ID]rows.Row
}

// CreateFlat is the creation processor of ungrouped rows.
func CreateFlat(p CreateParams) Created {
	var ids []rows.ID
	idToRow := map[rows.ID]rows.Row{}
	if p.Cache != nil {
		ids = p.Cache.IDs
		idToRow = p.Cache.IDToRow
	}
	return Created{Tree: Flat(ids, p.Previous), IDToRow: idToRow}
}
