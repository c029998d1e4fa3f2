package cli

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/config"
	"github.com/go-theft-auto/grid/internal/demodata"
	"github.com/go-theft-auto/grid/internal/report"
)

func configHint() string {
	return config.DefaultPath()
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(cmd *cobra.Command) (*config.File, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("rows") {
		cfg.Data.Rows, _ = cmd.Flags().GetInt("rows")
	}
	if cmd.Flags().Changed("ellipsis") {
		cfg.ShowEllipsis, _ = cmd.Flags().GetBool("ellipsis")
	}
	return cfg, nil
}

// loadData builds the demo source, materialising it when configured.
func loadData(ctx context.Context, cfg *config.File) (grid.DataSource, error) {
	src := demodata.NewSource(cfg.Data.Rows)
	if !cfg.Data.Materialize {
		return src, nil
	}

	keys := make([]string, len(cfg.Columns))
	for i, c := range cfg.Columns {
		keys[i] = c.Key
	}
	start := time.Now()
	rows, err := demodata.Materialize(ctx, src, keys, 0)
	if err != nil {
		return nil, err
	}
	grid.Logger().Info("materialized rows",
		"rows", humanize.Comma(int64(rows.Len())),
		"took", time.Since(start).Round(time.Millisecond))
	return rows, nil
}

// reportOptions converts settings into report options.
func reportOptions(cfg *config.File, data grid.DataSource) (report.Options, error) {
	face, err := cfg.Face()
	if err != nil {
		return report.Options{}, err
	}
	style, err := cfg.Style()
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Columns:    cfg.ColumnDescriptors(),
		Data:       data,
		Config:     cfg.EngineConfig(),
		Style:      style,
		Face:       face,
		FontName:   cfg.Font,
		Width:      float32(cfg.Window.Width),
		Height:     float32(cfg.Window.Height),
		PixelRatio: 1,
		Select:     grid.NoRow,
	}, nil
}

// addGeometryFlags registers the flags shared by snapshot and layout.
func addGeometryFlags(cmd *cobra.Command) {
	cmd.Flags().Int("width", 0, "Container width in pixels (default: window width)")
	cmd.Flags().Int("height", 0, "Container height in pixels (default: window height)")
	cmd.Flags().Float32("scroll-top", 0, "Vertical scroll offset in pixels")
	cmd.Flags().Float32("scroll-left", 0, "Horizontal scroll offset in pixels")
	cmd.Flags().Int("select", grid.NoRow, "Row to select (-1 for none)")
}

// applyGeometryFlags overrides report options with geometry flags.
func applyGeometryFlags(cmd *cobra.Command, o *report.Options) {
	if w, _ := cmd.Flags().GetInt("width"); w > 0 {
		o.Width = float32(w)
	}
	if h, _ := cmd.Flags().GetInt("height"); h > 0 {
		o.Height = float32(h)
	}
	o.ScrollTop, _ = cmd.Flags().GetFloat32("scroll-top")
	o.ScrollLeft, _ = cmd.Flags().GetFloat32("scroll-left")
	o.Select, _ = cmd.Flags().GetInt("select")
}
