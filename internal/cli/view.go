package cli

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// Context menu keys.
const (
	menuCopy     = "copy"
	menuTop      = "top"
	menuColumn   = "column"
	menuReset    = "reset"
	menuResetAll = "reset-all"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the grid in a window",
		Long: `Open an OpenGL window showing the configured dataset.

Drag column borders to resize, drag or click the scrollbars, use the wheel
(shift for horizontal), PgUp/PgDn/Home/End, and right-click a cell for the
context menu.`,
		Args: cobra.NoArgs,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	data, err := loadData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	face, err := cfg.Face()
	if err != nil {
		return err
	}
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	atlas := opengl.NewAtlas(face)
	renderer, err := opengl.NewRenderer(atlas)
	if err != nil {
		return fmt.Errorf("grid renderer: %w", err)
	}
	defer renderer.Delete()
	surface := opengl.NewSurface(renderer, atlas)
	defer surface.Delete()

	host := opengl.NewGLFWHost(window)
	menu := grid.NewMenu([]grid.MenuItem{
		{Key: menuCopy, Label: "Copy value"},
		{Key: menuTop, Label: "Scroll to top"},
		{Separator: true},
		{Key: menuColumn, Label: "Column", Children: []grid.MenuItem{
			{Key: menuReset, Label: "Reset width"},
			{Key: menuResetAll, Label: "Reset all widths"},
		}},
	}, style)

	var (
		e      *grid.Engine
		target grid.Cell
	)
	log := grid.Logger()
	onSelect := func(key string) {
		switch key {
		case menuCopy:
			if e.CopyCell(target.RowIndex, target.ColumnIndex) {
				log.Info("copied cell", "row", target.RowIndex, "column", target.Column.Key)
			}
		case menuTop:
			e.ScrollTo(e.Viewport().ScrollLeft, 0)
		case menuReset:
			e.ResetColumnWidth(target.ColumnIndex)
		case menuResetAll:
			for i := range e.Columns() {
				e.ResetColumnWidth(i)
			}
		}
	}

	e = grid.New(surface, grid.FaceMeasurer{Face: face, Name: cfg.Font},
		grid.WithConfig(cfg.EngineConfig()),
		grid.WithStyle(style),
		grid.WithHost(host),
		grid.WithClipboard(host),
		grid.WithMenu(menu, onSelect),
		grid.WithContextMenu(func(ev grid.ContextMenuEvent) {
			target = ev.Cell
			e.OpenMenu(ev.Event.Pos())
		}),
	)
	defer e.Close()
	host.Attach(e)
	defer host.Detach()

	e.SetColumns(cfg.ColumnDescriptors())
	e.SetData(data)

	ctx := cmd.Context()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}
		glfw.WaitEventsTimeout(grid.DefaultThrottle.Seconds())

		painted, err := e.Frame()
		if err != nil {
			return err
		}
		if painted {
			window.SwapBuffers()
		}
	}
	return nil
}
