package grid

// BorderHitSlop is how close (in pixels) the pointer must be to a column's
// right edge to grab it for resizing.
const BorderHitSlop float32 = 5

// CellHit is the raw result of mapping a pointer to grid coordinates.
// RowIndex may be >= the row count; callers validate it before use.
type CellHit struct {
	RowIndex    int
	ColumnIndex int
}

// HitCell maps a viewport coordinate to a row and column.
//
// It reports false over the header band and past the last column. The
// row index is floor((y-HeaderHeight+ScrollTop)/RowHeight) and is not
// checked against the row count.
func HitCell(v Viewport, widths ColumnWidths, x, y float32) (CellHit, bool) {
	if y < v.HeaderHeight || v.RowHeight <= 0 {
		return CellHit{}, false
	}
	col, ok := columnAt(widths, x+v.ScrollLeft)
	if !ok {
		return CellHit{}, false
	}
	row := int(floorf((y - v.HeaderHeight + v.ScrollTop) / v.RowHeight))
	return CellHit{RowIndex: row, ColumnIndex: col}, true
}

// columnAt finds the column whose span [left, left+width) contains x by
// accumulating widths left to right.
func columnAt(widths ColumnWidths, x float32) (int, bool) {
	if x < 0 {
		return 0, false
	}
	left := float32(0)
	for i, w := range widths.Widths {
		if x >= left && x < left+w {
			return i, true
		}
		left += w
	}
	return 0, false
}

// ColumnBorderAt returns the column whose right edge lies within
// BorderHitSlop of x. Only the header band (y <= HeaderHeight) has
// resize handles. The closest edge wins when several are in range.
func ColumnBorderAt(v Viewport, widths ColumnWidths, x, y float32) (int, bool) {
	if y < 0 || y > v.HeaderHeight {
		return 0, false
	}
	cx := x + v.ScrollLeft
	best, bestDist := -1, BorderHitSlop
	edge := float32(0)
	for i, w := range widths.Widths {
		edge += w
		d := cx - edge
		if d < 0 {
			d = -d
		}
		if d <= bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// ScrollbarAxis identifies a scrollbar.
type ScrollbarAxis int

const (
	AxisVertical ScrollbarAxis = iota
	AxisHorizontal
)

func (a ScrollbarAxis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// ScrollbarPart is the region of a scrollbar under the pointer.
type ScrollbarPart int

const (
	PartNone ScrollbarPart = iota
	PartThumb
	PartTrackBefore // Track above/left of the thumb
	PartTrackAfter  // Track below/right of the thumb
)

// ScrollbarHit is the result of ScrollbarAt.
type ScrollbarHit struct {
	Axis ScrollbarAxis
	Part ScrollbarPart
}

// ScrollbarAt returns the scrollbar region under the pointer. Only visible
// scrollbars are hit; the vertical bar wins where both overlap.
func ScrollbarAt(v Viewport, x, y float32) (ScrollbarHit, bool) {
	p := Vec2{X: x, Y: y}

	if vt := v.VerticalThumb(); vt.Visible && vt.Track.Contains(p) {
		return ScrollbarHit{Axis: AxisVertical, Part: trackPart(y, vt.Rect.Y, vt.Rect.H)}, true
	}
	if ht := v.HorizontalThumb(); ht.Visible && ht.Track.Contains(p) {
		return ScrollbarHit{Axis: AxisHorizontal, Part: trackPart(x, ht.Rect.X, ht.Rect.W)}, true
	}
	return ScrollbarHit{}, false
}

func trackPart(pos, thumbStart, thumbLen float32) ScrollbarPart {
	switch {
	case pos < thumbStart:
		return PartTrackBefore
	case pos >= thumbStart+thumbLen:
		return PartTrackAfter
	default:
		return PartThumb
	}
}
