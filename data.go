package grid

import "fmt"

// Row is an opaque record. The engine never mutates a row; it only reads
// the value stored under a column key.
type Row interface {
	Field(key string) any
}

// MapRow is a Row backed by a map.
type MapRow map[string]any

// Field implements Row.
func (r MapRow) Field(key string) any {
	return r[key]
}

// DataSource is the caller-owned row sequence. It is borrowed for a render
// pass; row identity is the index and is only stable within one pass.
type DataSource interface {
	Len() int
	Row(i int) Row
}

// Rows adapts a slice of rows to DataSource.
type Rows []Row

// Len implements DataSource.
func (r Rows) Len() int { return len(r) }

// Row implements DataSource.
func (r Rows) Row(i int) Row { return r[i] }

// ColumnDescriptor describes one column. Order defines left-to-right layout
// and keys must be unique within one descriptor list.
type ColumnDescriptor struct {
	Key   string
	Title string
	Width float32 // Fixed width in pixels (0 = flexible, measured)
}

// Flexible reports whether the column width is derived from content.
func (c ColumnDescriptor) Flexible() bool {
	return c.Width <= 0
}

// Cell is a resolved grid cell.
type Cell struct {
	RowIndex    int
	ColumnIndex int
	Value       any
	Row         Row
	Column      ColumnDescriptor
}

// Text returns the display text of the cell value.
func (c Cell) Text() string {
	return cellText(c.Value)
}

// cellText formats a row value for display.
func cellText(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// rowCount returns the number of rows in ds, treating nil as empty.
func rowCount(ds DataSource) int {
	if ds == nil {
		return 0
	}
	return ds.Len()
}

// fieldText returns the display text of one cell, or "" when the row or
// column index is out of range.
func fieldText(ds DataSource, columns []ColumnDescriptor, row, col int) string {
	if row < 0 || row >= rowCount(ds) || col < 0 || col >= len(columns) {
		return ""
	}
	r := ds.Row(row)
	if r == nil {
		return ""
	}
	return cellText(r.Field(columns[col].Key))
}
