// Package config loads grid documents.
//
// A grid document describes one grid: its columns, engine settings, initial
// models, the JSON source of its rows, an optional Lua script for column
// hooks and where to keep state snapshots. Documents are TOML or YAML,
// chosen by file extension:
//
//	[grid]
//	signature = "pro"
//	throttle_rows = "100ms"
//	page_size = 50
//
//	[grid.grouping]
//	model = ["dept"]
//	default_expansion_depth = -1
//
//	[[columns]]
//	field = "amount"
//	type = "number"
//	width = 120
//
//	[source]
//	path = "people.json"
//	query = "data.people"
//
// Loading applies defaults, then the document, then GRID_* environment
// overrides, and finally validates the result. Relative paths are resolved
// against the document's directory.
//
// Watcher reloads a document when it changes on disk.
package config
