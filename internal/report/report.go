// Package report renders one-shot outputs of an engine without a window:
// PNG snapshots through the raster surface and a text layout report.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/image/font"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/backend/raster"
)

// Options describes the engine state to reproduce.
type Options struct {
	Columns  []grid.ColumnDescriptor
	Data     grid.DataSource
	Config   grid.Config
	Style    grid.Style
	Face     font.Face
	FontName string

	Width, Height float32
	PixelRatio    float32

	ScrollTop  float32
	ScrollLeft float32
	Select     int // grid.NoRow for none
}

// newEngine builds an engine painting into s (nil for layout only) and
// applies the requested state.
func newEngine(s grid.Surface, m grid.Measurer, o Options) *grid.Engine {
	e := grid.New(s, m, grid.WithConfig(o.Config), grid.WithStyle(o.Style))
	e.SetColumns(o.Columns)
	e.SetData(o.Data)
	e.SetPixelRatio(o.PixelRatio)
	e.SetContainerSize(o.Width, o.Height)
	e.ScrollTo(o.ScrollLeft, o.ScrollTop)
	e.Select(o.Select)
	return e
}

// Snapshot paints one frame into a raster surface.
func Snapshot(o Options) (*raster.Surface, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("snapshot size %vx%v is empty", o.Width, o.Height)
	}
	s := raster.New(o.Face)
	e := newEngine(s, s.Measurer(o.FontName), o)
	defer e.Close()

	painted, err := e.Frame()
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	if !painted {
		return nil, fmt.Errorf("snapshot: nothing painted")
	}
	return s, nil
}

// WriteSnapshot paints one frame and encodes it as PNG to w.
func WriteSnapshot(w io.Writer, o Options) error {
	s, err := Snapshot(o)
	if err != nil {
		return err
	}
	return s.WritePNG(w)
}

// Layout is the resolved geometry of one engine state.
type Layout struct {
	Columns         []grid.ColumnDescriptor
	Widths          grid.ColumnWidths
	Viewport        grid.Viewport
	FirstRow        int
	LastRow         int // exclusive
	VerticalThumb   grid.Thumb
	HorizontalThumb grid.Thumb
}

// ComputeLayout resolves the layout without painting.
func ComputeLayout(o Options) Layout {
	var m grid.Measurer
	if o.Face != nil {
		m = grid.FaceMeasurer{Face: o.Face, Name: o.FontName}
	}
	e := newEngine(nil, m, o)
	defer e.Close()

	vp := e.Viewport()
	clip := e.VisibleRows()
	return Layout{
		Columns:         e.Columns(),
		Widths:          e.Widths(),
		Viewport:        vp,
		FirstRow:        clip.StartIdx,
		LastRow:         clip.EndIdx,
		VerticalThumb:   vp.VerticalThumb(),
		HorizontalThumb: vp.HorizontalThumb(),
	}
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Render formats the layout as a styled report.
func (l Layout) Render() string {
	rows := make([][]string, len(l.Columns))
	for i, c := range l.Columns {
		kind := "flexible"
		if !c.Flexible() {
			kind = "fixed " + px(c.Width)
		}
		rows[i] = []string{strconv.Itoa(i), c.Key, kind, px(l.Widths.Offset(i)), px(l.Widths.Width(i))}
	}

	t := table.New().
		Headers("#", "Key", "Descriptor", "Offset", "Width").
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	vp := l.Viewport
	summary := []string{
		fmt.Sprintf("container      %s x %s", px(vp.ContainerWidth), px(vp.ContainerHeight)),
		fmt.Sprintf("total width    %s", px(vp.TotalWidth)),
		fmt.Sprintf("rows           %s (visible %s to %s)", humanize.Comma(int64(vp.RowCount)), humanize.Comma(int64(l.FirstRow)), humanize.Comma(int64(l.LastRow))),
		fmt.Sprintf("scroll         left %s, top %s", px(vp.ScrollLeft), px(vp.ScrollTop)),
		"vertical       " + thumb(l.VerticalThumb, true),
		"horizontal     " + thumb(l.HorizontalThumb, false),
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Column layout"),
		t.Render(),
		"",
		titleStyle.Render("Viewport"),
		lipgloss.JoinVertical(lipgloss.Left, summary...),
	)
}

func thumb(t grid.Thumb, vertical bool) string {
	if !t.Visible {
		return mutedStyle.Render("no overflow")
	}
	if vertical {
		return fmt.Sprintf("thumb y=%s h=%s of track %s", px(t.Rect.Y), px(t.Rect.H), px(t.Track.H))
	}
	return fmt.Sprintf("thumb x=%s w=%s of track %s", px(t.Rect.X), px(t.Rect.W), px(t.Track.W))
}

func px(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32) + "px"
}
