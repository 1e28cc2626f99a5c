package rows

// Cache is the registry's view of the external rows.
// IDs has no duplicates and every id has an IDToRow entry.
type Cache struct {
	IDToRow map[ID]Row
	IDs     []ID

	// RowsBeforePartialUpdates is the last input given to SetRows.
	RowsBeforePartialUpdates []Row
}

// Len returns the number of rows.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.IDs)
}

// Row returns the row with the given id.
func (c *Cache) Row(id ID) (Row, bool) {
	if c == nil {
		return nil, false
	}
	row, ok := c.IDToRow[id]
	return row, ok
}

// ConvertRows builds a cache from scratch. A repeated id keeps its first
// position and takes the last row given for it.
func ConvertRows(input []Row, getter IDGetter) (*Cache, error) {
	c := &Cache{
		IDToRow:                  make(map[ID]Row, len(input)),
		IDs:                      make([]ID, 0, len(input)),
		RowsBeforePartialUpdates: input,
	}
	for _, row := range input {
		id, err := GetID(row, getter)
		if err != nil {
			return nil, err
		}
		if _, seen := c.IDToRow[id]; !seen {
			c.IDs = append(c.IDs, id)
		}
		c.IDToRow[id] = row
	}
	return c, nil
}

// MergeUpdates applies partial updates to prev and returns a new cache;
// prev is not modified. Updates apply in order, so duplicated ids merge left
// to right and a batch gives the same result as one call per update.
func MergeUpdates(prev *Cache, updates []Row, getter IDGetter) (*Cache, error) {
	if prev == nil {
		prev = &Cache{}
	}

	ids := make([]ID, len(updates))
	for i, u := range updates {
		id, err := GetID(u, getter)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	next := &Cache{
		IDToRow:                  make(map[ID]Row, len(prev.IDToRow)+len(updates)),
		IDs:                      make([]ID, len(prev.IDs), len(prev.IDs)+len(updates)),
		RowsBeforePartialUpdates: prev.RowsBeforePartialUpdates,
	}
	for id, row := range prev.IDToRow {
		next.IDToRow[id] = row
	}
	copy(next.IDs, prev.IDs)

	deleted := false
	for i, u := range updates {
		id := ids[i]
		old, exists := next.IDToRow[id]
		switch {
		case IsDelete(u):
			if exists {
				delete(next.IDToRow, id)
				deleted = true
			}
		case !exists:
			next.IDToRow[id] = u
			next.IDs = append(next.IDs, id)
		default:
			next.IDToRow[id] = Merge(old, u)
		}
	}

	if deleted {
		last := make(map[ID]int, len(next.IDs))
		for i, id := range next.IDs {
			last[id] = i
		}
		kept := make([]ID, 0, len(next.IDToRow))
		for i, id := range next.IDs {
			// A row deleted then re-added in one batch sits at its new position.
			if _, ok := next.IDToRow[id]; ok && last[id] == i {
				kept = append(kept, id)
			}
		}
		next.IDs = kept
	}
	return next, nil
}
