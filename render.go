package grid

// render paints one frame in a fixed order: clear, selected band,
// hovered band, visible rows, header, grid lines, scrollbars, tooltip and
// finally the popup menu. Row content is clipped below the header so the
// header always stays on top of scrolled content.
func (e *Engine) render() {
	s := e.surface
	st := e.style
	vp := e.vp

	s.Clear(st.BackgroundColor)

	body := Rect{X: 0, Y: vp.HeaderHeight, W: vp.BodyWidth(), H: vp.ViewportHeight()}
	clip := vp.VisibleRows()

	s.PushClip(body)
	if e.validRow(e.state.SelectedRow) {
		s.FillRect(e.rowRect(e.state.SelectedRow), st.SelectedBgColor)
	}
	if e.validRow(e.state.HoveredRow) && e.state.HoveredRow != e.state.SelectedRow {
		s.FillRect(e.rowRect(e.state.HoveredRow), st.HoveredBgColor)
	}
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		e.paintRow(i, clip.ItemY(i, vp.HeaderHeight, vp.ScrollTop), body)
	}
	s.PopClip()

	e.paintHeader()
	e.paintGridLines(clip)
	e.paintScrollbars()
	e.paintTooltip()

	if e.menu != nil {
		e.menu.Draw(s)
	}
}

func (e *Engine) validRow(i int) bool {
	return i >= 0 && i < e.vp.RowCount
}

// rowRect returns the band of row i in viewport coordinates.
func (e *Engine) rowRect(i int) Rect {
	y := e.vp.HeaderHeight + float32(i)*e.vp.RowHeight - e.vp.ScrollTop
	return Rect{X: 0, Y: y, W: e.vp.ContainerWidth, H: e.vp.RowHeight}
}

// columnSpans calls fn for every column that intersects the container,
// with its left edge in viewport coordinates.
func (e *Engine) columnSpans(fn func(col int, x, w float32)) {
	x := -e.vp.ScrollLeft
	for i, w := range e.widths.Widths {
		if x >= e.vp.ContainerWidth {
			return
		}
		if x+w > 0 {
			fn(i, x, w)
		}
		x += w
	}
}

// paintRow draws the cells of row i whose box at y overlaps body.
func (e *Engine) paintRow(i int, y float32, body Rect) {
	row := e.data.Row(i)
	if row == nil {
		return
	}
	st := e.style
	rh := e.vp.RowHeight

	e.columnSpans(func(col int, x, w float32) {
		text := cellText(row.Field(e.columns[col].Key))
		if text == "" {
			return
		}
		box := Rect{X: x, Y: y, W: w, H: rh}.Intersect(body)
		if box.Empty() {
			return
		}
		usable := w - 2*st.CellPaddingX

		e.surface.PushClip(box)
		defer e.surface.PopClip()

		if e.config.ShowEllipsis {
			line := TruncateText(e.measure, text, usable)
			e.surface.Text(x+st.CellPaddingX, y+(rh-st.TextHeight)/2, line, st.TextColor)
			return
		}

		maxLines := max(1, MaxWrapLines(rh, st.CellPaddingY, st.LineHeight))
		lines := WrapText(e.measure, text, usable, maxLines)
		top := WrapBlockTop(y, rh, st.LineHeight, len(lines))
		for k, line := range lines {
			ly := top + float32(k)*st.LineHeight + (st.LineHeight-st.TextHeight)/2
			e.surface.Text(x+st.CellPaddingX, ly, line, st.TextColor)
		}
	})
}

func (e *Engine) paintHeader() {
	st := e.style
	hh := e.vp.HeaderHeight
	e.surface.FillRect(Rect{X: 0, Y: 0, W: e.vp.ContainerWidth, H: hh}, st.HeaderBgColor)

	e.columnSpans(func(col int, x, w float32) {
		title := TruncateText(e.measure, e.columns[col].Title, w-2*st.CellPaddingX)
		e.surface.PushClip(Rect{X: x, Y: 0, W: w, H: hh})
		e.surface.Text(x+st.CellPaddingX, (hh-st.TextHeight)/2, title, st.headerText())
		e.surface.PopClip()
	})
}

// paintGridLines draws column separators over the header and rows, the
// header's bottom edge, and one separator under every visible row.
func (e *Engine) paintGridLines(clip *ListClipper) {
	st := e.style
	vp := e.vp
	right := minf(vp.ContainerWidth, vp.TotalWidth-vp.ScrollLeft)
	bottom := minf(vp.ContainerHeight, vp.HeaderHeight+vp.ContentHeight()-vp.ScrollTop)

	e.columnSpans(func(_ int, x, w float32) {
		edge := x + w
		if edge > 0 && edge <= vp.ContainerWidth {
			e.surface.Line(edge, 0, edge, maxf(bottom, vp.HeaderHeight), st.GridLineColor, 1)
		}
	})
	e.surface.Line(0, vp.HeaderHeight, right, vp.HeaderHeight, st.GridLineColor, 1)

	e.surface.PushClip(Rect{X: 0, Y: vp.HeaderHeight, W: vp.ContainerWidth, H: vp.ViewportHeight()})
	for i := clip.StartIdx; i < clip.EndIdx; i++ {
		y := clip.ItemY(i, vp.HeaderHeight, vp.ScrollTop) + vp.RowHeight
		e.surface.Line(0, y, right, y, st.GridLineColor, 1)
	}
	e.surface.PopClip()
}

func (e *Engine) paintScrollbars() {
	e.paintScrollbar(AxisVertical, e.vp.VerticalThumb(), ModeDraggingVerticalScrollbar)
	e.paintScrollbar(AxisHorizontal, e.vp.HorizontalThumb(), ModeDraggingHorizontalScrollbar)
}

func (e *Engine) paintScrollbar(axis ScrollbarAxis, t Thumb, dragMode Mode) {
	if !t.Visible {
		return
	}
	st := e.style
	e.surface.FillRect(t.Track, st.ScrollbarBgColor)

	color := st.ScrollbarGrabColor
	hovered := e.state.HoverBarOK && e.state.HoverBar.Axis == axis && e.state.HoverBar.Part == PartThumb
	if hovered || e.state.Mode == dragMode {
		color = st.ScrollbarGrabHovered
	}
	e.surface.FillRect(t.Rect, color)
}

// paintTooltip draws the tooltip offset from the pointer and shifted back
// inside the container when it would overflow.
func (e *Engine) paintTooltip() {
	tip := e.state.Tooltip
	if !tip.Visible {
		return
	}
	st := e.style
	w := e.measure.width(tip.Text) + 2*st.TooltipPadding
	h := st.TextHeight + 2*st.TooltipPadding

	x := tip.X + st.TooltipOffset
	y := tip.Y + st.TooltipOffset
	if x+w > e.vp.ContainerWidth {
		x = e.vp.ContainerWidth - w
	}
	if y+h > e.vp.ContainerHeight {
		y = e.vp.ContainerHeight - h
	}
	x = maxf(0, x)
	y = maxf(0, y)

	e.surface.FillRect(Rect{X: x, Y: y, W: w, H: h}, st.TooltipBgColor)
	e.surface.Text(x+st.TooltipPadding, y+st.TooltipPadding, tip.Text, st.TooltipTextColor)
}
