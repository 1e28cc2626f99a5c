package columns

// MenuItem identifies an entry of a column menu.
type MenuItem string

const (
	MenuSortAsc     MenuItem = "sortAsc"
	MenuSortDesc    MenuItem = "sortDesc"
	MenuUnsort      MenuItem = "unsort"
	MenuFilter      MenuItem = "filter"
	MenuHideColumn  MenuItem = "hideColumn"
	MenuManage      MenuItem = "manageColumns"
	MenuDivider     MenuItem = "divider"
	MenuGroupBy     MenuItem = "groupBy"
	MenuUngroupBy   MenuItem = "ungroupBy"
	MenuStopGroupBy MenuItem = "stopGroupingBy"
)

// BaseMenu returns the menu entries every column offers before
// pre-processing.
func BaseMenu(c *ColDef) []MenuItem {
	var items []MenuItem
	if c.IsSortable() {
		items = append(items, MenuUnsort, MenuSortAsc, MenuSortDesc)
	}
	if c.IsFilterable() {
		items = append(items, MenuFilter)
	}
	if c.IsHideable() {
		items = append(items, MenuHideColumn)
	}
	return append(items, MenuManage)
}
