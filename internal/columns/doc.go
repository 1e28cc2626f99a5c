// Package columns holds the column registry of a grid.
//
// A ColDef describes one column: its field, sizing, capability flags and
// optional hooks (value getter/setter/parser, grouping value getter, sort
// comparator, filter operators, edit props pre-processor, actions). Column
// types (string, number, date, dateTime, boolean, singleSelect, actions)
// provide defaults for everything a definition leaves unset.
//
// State is the hydrated registry: ordered fields, a lookup, the visibility
// model and the computed widths used to lay out the header.
package columns
