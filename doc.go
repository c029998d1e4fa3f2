/*
Package grid renders very large tabular datasets onto a single drawing
surface instead of one retained element per cell.

# Overview

Only the rows intersecting the viewport are painted, so memory and paint
cost stay bounded regardless of dataset size. The engine is a small
single-threaded state machine: the host feeds it pointer, wheel and
resize events and calls Frame once per animation frame.

# Quick Start

	surface := raster.New(nil)
	e := grid.New(surface, surface.Measurer("basic"),
	    grid.WithContextMenu(func(ev grid.ContextMenuEvent) {
	        log.Println(ev.Cell.RowIndex, ev.Cell.Column.Key)
	    }),
	)
	e.SetColumns([]grid.ColumnDescriptor{
	    {Key: "id", Title: "ID", Width: 120},
	    {Key: "name", Title: "Name"},
	})
	e.SetData(rows)
	e.SetContainerSize(800, 600)

	for running {
	    // feed PointerDown, PointerMove, Wheel, KeyPress ...
	    if _, err := e.Frame(); err != nil {
	        return err
	    }
	}

# Column Widths

A column with a positive Width is fixed. Any other column is flexible: its
minimum is measured from the title and the visible rows, never shrinks once
grown, and leftover container width is shared between flexible columns.
Dragging a header border overrides a column's width until
ResetColumnWidth.

# Scrolling

Both offsets are clamped to the content after every mutation. A visible
scrollbar takes its thickness from the other axis, so the last row and the
last column are never covered by a bar. Wheel and container resize redraws
are throttled to one paint per DefaultThrottle window.

# Backends

The Surface interface is implemented by backend/raster (an image.RGBA for
snapshots and tests) and backend/opengl (a GLFW window with a batched
draw list).
*/
package grid
