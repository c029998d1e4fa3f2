// Command gen renders the grid in a few representative states with the
// raster surface and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/config"
	"github.com/go-theft-auto/grid/internal/demodata"
	"github.com/go-theft-auto/grid/internal/report"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single grid screenshot to capture.
type screenshot struct {
	name   string                // filename without extension
	width  int                   // container width
	height int                   // container height
	setup  func(*report.Options) // adjusts the default options
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(s screenshot, outDir string) error {
	cfg := config.Default()
	o := report.Options{
		Columns:    cfg.ColumnDescriptors(),
		Data:       demodata.NewSource(cfg.Data.Rows),
		Config:     cfg.EngineConfig(),
		Style:      grid.DefaultStyle(),
		Face:       basicfont.Face7x13,
		FontName:   config.FontBasic,
		Width:      float32(s.width),
		Height:     float32(s.height),
		PixelRatio: 1,
		Select:     grid.NoRow,
	}
	if s.setup != nil {
		s.setup(&o)
	}

	surface, err := report.Snapshot(o)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, surface.Image(), &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "wrap", width: 1100, height: 420},
		{name: "ellipsis", width: 1100, height: 420, setup: func(o *report.Options) {
			o.Config.ShowEllipsis = true
		}},
		{name: "selected", width: 1100, height: 420, setup: func(o *report.Options) {
			o.ScrollTop = 30 * 500_000
			o.Select = 500_003
		}},
		{name: "dark", width: 1100, height: 420, setup: func(o *report.Options) {
			o.Style = grid.DarkStyle()
			o.Config.ShowEllipsis = true
		}},
		{name: "narrow", width: 480, height: 320, setup: func(o *report.Options) {
			o.ScrollLeft = 200
		}},
	}
}
