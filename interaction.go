package grid

// NoRow marks an absent selected or hovered row.
const NoRow = -1

// Mode is the state of the interaction state machine. The drag modes are
// mutually exclusive.
type Mode int

const (
	ModeIdle Mode = iota
	ModeResizingColumn
	ModeDraggingVerticalScrollbar
	ModeDraggingHorizontalScrollbar
)

func (m Mode) String() string {
	switch m {
	case ModeResizingColumn:
		return "resizing-column"
	case ModeDraggingVerticalScrollbar:
		return "dragging-vertical-scrollbar"
	case ModeDraggingHorizontalScrollbar:
		return "dragging-horizontal-scrollbar"
	default:
		return "idle"
	}
}

// Tooltip is the overflow tooltip shown in ellipsis mode.
type Tooltip struct {
	Visible bool
	Text    string
	X, Y    float32 // Pointer position the tooltip is anchored to
}

// InteractionState is the mutable pointer state of one engine.
type InteractionState struct {
	SelectedRow int // NoRow when nothing is selected
	HoveredRow  int // NoRow when no row is under the pointer

	Mode Mode

	// ResizingColumn
	ResizeColumn int
	ResizeLastX  float32 // Pointer x at the previous move

	// Dragging*Scrollbar
	DragAnchorPointer float32
	DragAnchorScroll  float32

	Tooltip Tooltip

	// Scrollbar under the pointer, for hover colouring.
	HoverBar   ScrollbarHit
	HoverBarOK bool
}

// PointerDown handles a button press. Only the primary button starts
// resizes, drags and selection.
func (e *Engine) PointerDown(ev PointerEvent) {
	if e.closed {
		return
	}
	if e.menu != nil && e.menu.IsOpen() {
		key, _ := e.menu.PointerDown(ev.Pos())
		if key != "" && e.onMenuSelect != nil {
			e.onMenuSelect(key)
		}
		e.sched.request()
		return
	}
	if ev.Button != MouseButtonLeft || e.state.Mode != ModeIdle {
		return
	}

	if bar, ok := ScrollbarAt(e.vp, ev.X, ev.Y); ok {
		e.pressScrollbar(bar, ev)
		return
	}

	if col, ok := ColumnBorderAt(e.vp, e.widths, ev.X, ev.Y); ok {
		e.state.ResizeColumn = col
		e.state.ResizeLastX = ev.X
		e.beginDrag(ModeResizingColumn)
		return
	}

	if ev.Y < e.vp.HeaderHeight {
		return
	}
	row := NoRow
	if hit, ok := e.hitCell(ev.X, ev.Y); ok {
		row = hit.RowIndex
	}
	e.state.SelectedRow = row
	e.sched.request()
}

func (e *Engine) pressScrollbar(bar ScrollbarHit, ev PointerEvent) {
	switch bar.Part {
	case PartThumb:
		if bar.Axis == AxisVertical {
			e.state.DragAnchorPointer = ev.Y
			e.state.DragAnchorScroll = e.vp.ScrollTop
			e.beginDrag(ModeDraggingVerticalScrollbar)
		} else {
			e.state.DragAnchorPointer = ev.X
			e.state.DragAnchorScroll = e.vp.ScrollLeft
			e.beginDrag(ModeDraggingHorizontalScrollbar)
		}
	case PartTrackBefore, PartTrackAfter:
		dir := float32(1)
		if bar.Part == PartTrackBefore {
			dir = -1
		}
		if bar.Axis == AxisVertical {
			if e.vp.SetScrollTop(e.vp.ScrollTop + dir*e.vp.ViewportHeight()) {
				e.scrolled()
			}
		} else {
			e.vp.SetScrollLeft(e.vp.ScrollLeft + dir*e.vp.HorizontalThumb().Track.W)
		}
		e.sched.request()
	}
}

// PointerMove handles pointer motion, including motion delivered by the
// host's capture while a drag is active and the pointer is outside.
func (e *Engine) PointerMove(ev PointerEvent) {
	if e.closed {
		return
	}
	if e.menu != nil && e.menu.IsOpen() {
		if e.menu.PointerMove(ev.Pos()) {
			e.sched.request()
		}
		return
	}

	switch e.state.Mode {
	case ModeResizingColumn:
		e.resizeBy(ev.X - e.state.ResizeLastX)
		e.state.ResizeLastX = ev.X
	case ModeDraggingVerticalScrollbar:
		top := e.vp.DragScrollTop(e.state.DragAnchorScroll, ev.Y-e.state.DragAnchorPointer)
		if e.vp.SetScrollTop(top) {
			e.scrolled()
			e.sched.request()
		}
	case ModeDraggingHorizontalScrollbar:
		left := e.vp.DragScrollLeft(e.state.DragAnchorScroll, ev.X-e.state.DragAnchorPointer)
		if e.vp.SetScrollLeft(left) {
			e.sched.request()
		}
	}

	if e.updateHover(ev.X, ev.Y) {
		e.sched.request()
	}
}

// resizeBy adjusts the resized column by dx, never below MinResizeWidth.
func (e *Engine) resizeBy(dx float32) {
	col := e.state.ResizeColumn
	if dx == 0 || col < 0 || col >= len(e.columns) {
		return
	}
	w := maxf(MinResizeWidth, e.widths.Width(col)+dx)
	if w == e.widths.Width(col) {
		return
	}
	e.overrides[col] = w
	e.recomputeWidths()
	e.sched.request()
}

// PointerUp ends any active drag. With pointer capture the host delivers
// releases that happen outside the container too.
func (e *Engine) PointerUp(ev PointerEvent) {
	if e.closed || e.state.Mode == ModeIdle {
		return
	}
	if e.state.Mode == ModeResizingColumn && gridVerbose() {
		e.log.Debug("column resized", "column", e.state.ResizeColumn, "width", e.widths.Width(e.state.ResizeColumn))
	}
	e.endDrag()
	e.updateHover(ev.X, ev.Y)
	e.sched.request()
}

// PointerLeave clears hover and the tooltip. An active drag continues
// since capture still delivers moves and the release.
func (e *Engine) PointerLeave() {
	if e.closed {
		return
	}
	e.state.HoveredRow = NoRow
	e.state.Tooltip = Tooltip{}
	e.state.HoverBarOK = false
	e.sched.request()
}

// Wheel scrolls by the event deltas. Shift routes vertical deltas to the
// horizontal axis when columns overflow.
func (e *Engine) Wheel(ev WheelEvent) {
	if e.closed {
		return
	}
	if e.menu != nil && e.menu.IsOpen() {
		e.menu.Close()
		e.sched.request()
	}
	top := e.vp.ScrollTop
	if !e.vp.Wheel(ev.DeltaX, ev.DeltaY, ev.Mods.Has(ModShift)) {
		return
	}
	if e.vp.ScrollTop != top {
		e.scrolled()
	}
	e.updateHover(ev.X, ev.Y)
	e.sched.requestThrottled()
}

// ContextMenu emits a notification when the pointer is over a valid cell.
// It does not change the interaction state.
func (e *Engine) ContextMenu(ev PointerEvent) {
	if e.closed || e.onContextMenu == nil {
		return
	}
	cell, ok := e.PointerToCell(ev.X, ev.Y)
	if !ok {
		return
	}
	e.onContextMenu(ContextMenuEvent{Cell: cell, Event: ev})
}

// OpenMenu opens the attached menu at p, kept inside the container.
func (e *Engine) OpenMenu(p Vec2) {
	if e.menu == nil {
		return
	}
	e.menu.Open(p, Vec2{X: e.vp.ContainerWidth, Y: e.vp.ContainerHeight})
	e.state.Tooltip = Tooltip{}
	e.sched.request()
}

// KeyPress handles keyboard scrolling. It reports whether the key was
// used.
func (e *Engine) KeyPress(k Key) bool {
	if e.closed {
		return false
	}
	vh := e.vp.ViewportHeight()
	top := e.vp.ScrollTop
	switch k {
	case KeyUp:
		top -= e.vp.RowHeight
	case KeyDown:
		top += e.vp.RowHeight
	case KeyPageUp:
		top -= vh * 0.8
	case KeyPageDown:
		top += vh * 0.8
	case KeyHome:
		top = 0
	case KeyEnd:
		top = e.vp.MaxScrollTop()
	case KeyEscape:
		if e.menu != nil && e.menu.IsOpen() {
			e.menu.Close()
			e.sched.request()
			return true
		}
		if e.state.Mode != ModeIdle {
			e.endDrag()
			e.sched.request()
			return true
		}
		return false
	default:
		return false
	}
	if e.vp.SetScrollTop(top) {
		e.scrolled()
		e.sched.request()
	}
	return true
}

// beginDrag enters a drag mode and acquires pointer capture for its
// duration.
func (e *Engine) beginDrag(m Mode) {
	e.state.Mode = m
	e.releaseCapture = e.host.CapturePointer()
	if gridVerbose() {
		e.log.Debug("drag started", "mode", m.String())
	}
	e.sched.request()
}

// endDrag returns to idle and releases pointer capture.
func (e *Engine) endDrag() {
	if gridVerbose() {
		e.log.Debug("drag ended", "mode", e.state.Mode.String())
	}
	e.state.Mode = ModeIdle
	if e.releaseCapture != nil {
		e.releaseCapture()
		e.releaseCapture = nil
	}
}

// updateHover recomputes the hovered row, the hovered scrollbar and the
// tooltip for a pointer at (x, y). It reports whether anything changed.
func (e *Engine) updateHover(x, y float32) bool {
	prev := e.state

	bar, barOK := ScrollbarAt(e.vp, x, y)
	e.state.HoverBar, e.state.HoverBarOK = bar, barOK

	e.state.HoveredRow = NoRow
	e.state.Tooltip = Tooltip{}
	if !barOK {
		if hit, ok := e.hitCell(x, y); ok {
			e.state.HoveredRow = hit.RowIndex
			e.state.Tooltip = e.tooltipFor(hit, x, y)
		}
	}

	return prev.HoveredRow != e.state.HoveredRow ||
		prev.Tooltip != e.state.Tooltip ||
		prev.HoverBarOK != e.state.HoverBarOK ||
		prev.HoverBar != e.state.HoverBar
}

// tooltipFor shows the full cell text when ellipsis mode hides part of it.
func (e *Engine) tooltipFor(hit CellHit, x, y float32) Tooltip {
	if !e.config.ShowEllipsis || !e.measure.available() {
		return Tooltip{}
	}
	text := fieldText(e.data, e.columns, hit.RowIndex, hit.ColumnIndex)
	if text == "" {
		return Tooltip{}
	}
	usable := e.widths.Width(hit.ColumnIndex) - 2*e.style.CellPaddingX
	if e.measure.width(text) <= usable {
		return Tooltip{}
	}
	return Tooltip{Visible: true, Text: text, X: x, Y: y}
}
