// Package script runs column hooks written in Lua.
//
// A grid document may name Lua functions for the value getter, the grouping
// value getter, the sort comparator, a custom filter operator and the edit
// validator of a column. The Engine loads the script into a sandboxed
// gopher-lua state and adapts each named function to the matching columns
// hook type.
//
// Hook signatures on the Lua side:
//
//	function getter(row, field) return value end
//	function compare(a, b) return -1 | 0 | 1 end
//	function matches(value, filterValue) return boolean end
//	function validate(value, row) return boolean end
//
// gopher-lua states are not goroutine-safe, so every call goes through the
// engine's mutex. Hooks never call back into the grid.
package script
