package grid

const (
	// MinColumnWidth is the floor for every flexible column.
	MinColumnWidth float32 = 150

	// ContentMargin is added to measured header and cell text.
	ContentMargin float32 = 40

	// MinResizeWidth is the floor applied while dragging a column border.
	MinResizeWidth float32 = 20
)

// ColumnWidths holds resolved per-column pixel widths. It is derived state:
// it is recomputed from its inputs, never edited in place.
type ColumnWidths struct {
	Widths []float32
	Total  float32
}

// Len returns the number of columns.
func (w ColumnWidths) Len() int {
	return len(w.Widths)
}

// Width returns the width of column i, or 0 if out of range.
func (w ColumnWidths) Width(i int) float32 {
	if i < 0 || i >= len(w.Widths) {
		return 0
	}
	return w.Widths[i]
}

// Offset returns the left edge of column i in content coordinates.
func (w ColumnWidths) Offset(i int) float32 {
	x := float32(0)
	for j := 0; j < i && j < len(w.Widths); j++ {
		x += w.Widths[j]
	}
	return x
}

// ResolveWidths derives column widths.
//
// Fixed columns reserve exactly their width. Flexible columns take
// max(MinColumnWidth, measuredMin[i]). If the sum is below
// available-scrollbarReserve, the slack is split evenly (floored) across
// flexible columns only; the leftover remainder stays unassigned.
func ResolveWidths(columns []ColumnDescriptor, measuredMin []float32, available, scrollbarReserve float32) ColumnWidths {
	widths := make([]float32, len(columns))
	sum := float32(0)
	flexible := 0

	for i, col := range columns {
		if !col.Flexible() {
			widths[i] = col.Width
		} else {
			w := MinColumnWidth
			if i < len(measuredMin) && measuredMin[i] > w {
				w = measuredMin[i]
			}
			widths[i] = w
			flexible++
		}
		sum += widths[i]
	}

	slack := available - scrollbarReserve - sum
	if slack > 0 && flexible > 0 {
		share := floorf(slack / float32(flexible))
		for i, col := range columns {
			if col.Flexible() {
				widths[i] += share
			}
		}
	}

	total := float32(0)
	for _, w := range widths {
		total += w
	}
	return ColumnWidths{Widths: widths, Total: total}
}

// MeasureMinWidths computes the minimum width of every flexible column from
// its title and the rows in [first, last).
//
// Only the visible window is measured, so a minimum can grow as wider
// content scrolls into view. prev carries earlier minimums and the result
// never drops below them. Fixed columns report 0.
func MeasureMinWidths(m Measurer, columns []ColumnDescriptor, ds DataSource, first, last int, prev []float32) []float32 {
	mins := make([]float32, len(columns))
	n := rowCount(ds)
	if first < 0 {
		first = 0
	}
	if last > n {
		last = n
	}

	for i, col := range columns {
		if !col.Flexible() {
			continue
		}
		w := MinColumnWidth
		if i < len(prev) && prev[i] > w {
			w = prev[i]
		}
		if m == nil {
			mins[i] = w
			continue
		}
		w = maxf(w, m.MeasureText(col.Title)+ContentMargin)
		for row := first; row < last; row++ {
			text := fieldText(ds, columns, row, i)
			if text == "" {
				continue
			}
			w = maxf(w, m.MeasureText(text)+ContentMargin)
		}
		mins[i] = w
	}
	return mins
}
