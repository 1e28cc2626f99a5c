// Package filter implements the filtering engine.
//
// A Model holds filter items joined by a link operator. An Applier resolves
// each item against its column's operators once, then tests rows: AND stops
// at the first failing item, OR at the first passing one. Items whose
// column, operator or value cannot be resolved are ignored.
//
// The flat Method marks each row visible when it matches. Grouping
// strategies provide their own Method over the row tree.
package filter
