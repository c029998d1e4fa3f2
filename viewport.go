package grid

// MinThumbSize is the smallest scrollbar thumb length in pixels.
const MinThumbSize float32 = 40

// Viewport holds scroll offsets and the extents they are clamped against.
//
// Invariants after every mutation:
//
//	0 <= ScrollTop  <= max(0, ContentHeight()-ViewportHeight())
//	0 <= ScrollLeft <= max(0, TotalWidth-BodyWidth())
//
// A visible scrollbar takes its thickness from the other axis: the
// horizontal bar from the row area, the vertical bar from the body width.
type Viewport struct {
	ScrollTop  float32
	ScrollLeft float32

	ContainerWidth  float32
	ContainerHeight float32
	HeaderHeight    float32
	RowHeight       float32

	RowCount      int
	TotalWidth    float32 // Sum of resolved column widths
	ScrollbarSize float32 // Thickness of both scrollbars
}

// Thumb is the geometry of one scrollbar.
type Thumb struct {
	Track   Rect // Scrollable track (excludes the header band)
	Rect    Rect // Draggable thumb
	Visible bool // False when the axis does not overflow
}

// ViewportHeight returns the height of the row area below the header and
// above the horizontal scrollbar, when one is shown.
func (v Viewport) ViewportHeight() float32 {
	_, horizontal := v.overflow()
	return maxf(0, v.ContainerHeight-v.HeaderHeight-v.barIf(horizontal))
}

// BodyWidth returns the width left of the vertical scrollbar, when one is
// shown.
func (v Viewport) BodyWidth() float32 {
	vertical, _ := v.overflow()
	return maxf(0, v.ContainerWidth-v.barIf(vertical))
}

// ContentHeight returns the height of all rows.
func (v Viewport) ContentHeight() float32 {
	return float32(v.RowCount) * v.RowHeight
}

// MaxScrollTop returns the largest valid ScrollTop.
func (v Viewport) MaxScrollTop() float32 {
	return maxf(0, v.ContentHeight()-v.ViewportHeight())
}

// MaxScrollLeft returns the largest valid ScrollLeft.
func (v Viewport) MaxScrollLeft() float32 {
	return maxf(0, v.TotalWidth-v.BodyWidth())
}

// VerticalOverflow reports whether rows extend past the viewport.
func (v Viewport) VerticalOverflow() bool {
	vertical, _ := v.overflow()
	return vertical
}

// HorizontalOverflow reports whether columns extend past the body width.
func (v Viewport) HorizontalOverflow() bool {
	_, horizontal := v.overflow()
	return horizontal
}

// overflow decides both axes together since each scrollbar can push the
// other axis into overflow.
func (v Viewport) overflow() (vertical, horizontal bool) {
	rows := v.ContainerHeight - v.HeaderHeight
	content := v.ContentHeight()
	vertical = content > maxf(0, rows)
	horizontal = v.TotalWidth > v.ContainerWidth-v.barIf(vertical)
	if horizontal && !vertical {
		vertical = content > maxf(0, rows-v.ScrollbarSize)
	}
	return vertical, horizontal
}

func (v Viewport) barIf(shown bool) float32 {
	if shown {
		return v.ScrollbarSize
	}
	return 0
}

// SetScrollTop clamps and stores y. It reports whether the value changed.
func (v *Viewport) SetScrollTop(y float32) bool {
	y = clampf(y, 0, v.MaxScrollTop())
	if y == v.ScrollTop {
		return false
	}
	v.ScrollTop = y
	return true
}

// SetScrollLeft clamps and stores x. It reports whether the value changed.
func (v *Viewport) SetScrollLeft(x float32) bool {
	x = clampf(x, 0, v.MaxScrollLeft())
	if x == v.ScrollLeft {
		return false
	}
	v.ScrollLeft = x
	return true
}

// Clamp re-applies the scroll invariants after extents change.
func (v *Viewport) Clamp() {
	v.ScrollTop = clampf(v.ScrollTop, 0, v.MaxScrollTop())
	v.ScrollLeft = clampf(v.ScrollLeft, 0, v.MaxScrollLeft())
}

// Wheel applies a wheel delta in pixels. The delta goes to ScrollLeft when
// the horizontal modifier is held or dx is non-zero and the columns
// overflow; otherwise dy scrolls vertically.
func (v *Viewport) Wheel(dx, dy float32, horizontalMod bool) bool {
	if (horizontalMod || dx != 0) && v.HorizontalOverflow() {
		d := dx
		if d == 0 {
			d = dy
		}
		return v.SetScrollLeft(v.ScrollLeft + d)
	}
	return v.SetScrollTop(v.ScrollTop + dy)
}

// VerticalThumb returns the vertical scrollbar geometry. The header band is
// excluded from the track. With nothing to scroll the thumb is pinned at
// the header boundary and not visible.
func (v Viewport) VerticalThumb() Thumb {
	vh := v.ViewportHeight()
	x := v.ContainerWidth - v.ScrollbarSize
	t := Thumb{Track: Rect{X: x, Y: v.HeaderHeight, W: v.ScrollbarSize, H: vh}}

	maxScroll := v.ContentHeight() - vh
	if maxScroll <= 0 || vh <= 0 {
		t.Rect = Rect{X: x, Y: v.HeaderHeight, W: v.ScrollbarSize, H: vh}
		return t
	}

	h := v.verticalThumbLength()
	y := v.ScrollTop/maxScroll*(vh-h) + v.HeaderHeight
	t.Rect = Rect{X: x, Y: y, W: v.ScrollbarSize, H: h}
	t.Visible = true
	return t
}

// HorizontalThumb returns the horizontal scrollbar geometry. When the
// vertical scrollbar is visible its width is taken out of the track.
func (v Viewport) HorizontalThumb() Thumb {
	track := v.horizontalTrackLength()
	y := v.ContainerHeight - v.ScrollbarSize
	t := Thumb{Track: Rect{X: 0, Y: y, W: track, H: v.ScrollbarSize}}

	maxScroll := v.MaxScrollLeft()
	if maxScroll <= 0 || track <= 0 || v.TotalWidth <= 0 {
		t.Rect = Rect{X: 0, Y: y, W: track, H: v.ScrollbarSize}
		return t
	}

	w := v.horizontalThumbLength()
	x := v.ScrollLeft / maxScroll * (track - w)
	t.Rect = Rect{X: x, Y: y, W: w, H: v.ScrollbarSize}
	t.Visible = true
	return t
}

// DragScrollTop converts a pointer delta along the vertical track into a
// ScrollTop relative to anchor, using maxScroll/(viewportHeight-thumb).
func (v Viewport) DragScrollTop(anchor, delta float32) float32 {
	vh := v.ViewportHeight()
	track := vh - v.verticalThumbLength()
	maxScroll := v.MaxScrollTop()
	if track <= 0 || maxScroll <= 0 {
		return clampf(anchor, 0, maxScroll)
	}
	return clampf(anchor+delta*(maxScroll/track), 0, maxScroll)
}

// DragScrollLeft is the horizontal counterpart of DragScrollTop.
func (v Viewport) DragScrollLeft(anchor, delta float32) float32 {
	track := v.horizontalTrackLength() - v.horizontalThumbLength()
	maxScroll := v.MaxScrollLeft()
	if track <= 0 || maxScroll <= 0 {
		return clampf(anchor, 0, maxScroll)
	}
	return clampf(anchor+delta*(maxScroll/track), 0, maxScroll)
}

// VisibleRows returns the clipper for the current scroll position.
func (v Viewport) VisibleRows() *ListClipper {
	return NewListClipper(v.RowCount, v.RowHeight, v.ViewportHeight(), v.ScrollTop)
}

// SurfaceSize returns the logical size of the drawing surface:
// max(TotalWidth, ContainerWidth) x ContainerHeight.
func (v Viewport) SurfaceSize() Vec2 {
	return Vec2{X: maxf(v.TotalWidth, v.ContainerWidth), Y: v.ContainerHeight}
}

func (v Viewport) verticalThumbLength() float32 {
	vh := v.ViewportHeight()
	ch := v.ContentHeight()
	if ch <= 0 {
		return vh
	}
	return minf(vh, maxf(MinThumbSize, vh/ch*vh))
}

func (v Viewport) horizontalTrackLength() float32 {
	return v.BodyWidth()
}

func (v Viewport) horizontalThumbLength() float32 {
	track := v.horizontalTrackLength()
	if v.TotalWidth <= 0 {
		return track
	}
	return minf(track, maxf(MinThumbSize, track/v.TotalWidth*track))
}
