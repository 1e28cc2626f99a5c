// Package grouping implements row grouping.
//
// The grouping model is an ordered list of fields. Each row gets a grouping
// path, one criterion per model field whose value is not nil, followed by a
// leaf criterion; the tree package turns those paths into group and leaf
// nodes. Group nodes receive a synthesized row holding the keys of their path
// so that filtering and sorting on the grouping fields work on them too.
//
// Grouping columns display the groups. In multiple mode there is one column
// per model field, in single mode one column for all of them. They are
// inserted first, after the checkbox column when present, and keep the width
// and flex a user gave a previous column with the same field.
package grouping
