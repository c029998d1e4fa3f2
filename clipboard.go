package grid

import "strings"

// Clipboard receives text copied out of the grid. Implement it with the
// platform clipboard; the GLFW host implements it with the window's.
type Clipboard interface {
	SetText(text string)
}

// WithClipboard sets the clipboard CopyCell writes to.
func WithClipboard(c Clipboard) Option {
	return func(e *Engine) { e.clipboard = c }
}

// CopyCell copies the display text of the cell at (row, col). It reports
// false when no clipboard is set or the cell does not exist.
func (e *Engine) CopyCell(row, col int) bool {
	if e.clipboard == nil || row < 0 || row >= e.vp.RowCount || col < 0 || col >= len(e.columns) {
		return false
	}
	text := e.cell(row, col).Text()
	e.clipboard.SetText(text)
	if gridVerbose() {
		e.log.Debug("copied cell", "row", row, "column", e.columns[col].Key, "bytes", len(text))
	}
	return true
}

// CopySelection copies the selected row's cells joined by tabs, in
// column order. It reports false when nothing is selected.
func (e *Engine) CopySelection() bool {
	row := e.state.SelectedRow
	if e.clipboard == nil || row < 0 || row >= e.vp.RowCount {
		return false
	}
	fields := make([]string, len(e.columns))
	for i := range e.columns {
		fields[i] = e.cell(row, i).Text()
	}
	e.clipboard.SetText(strings.Join(fields, "\t"))
	return true
}
