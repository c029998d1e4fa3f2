package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid/internal/report"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame to a PNG file",
		Long: `Render one frame of the grid without a window and write it as PNG.

Example:
  gridview snapshot --out grid.png --scroll-top 3000 --select 105`,
		Args: cobra.NoArgs,
		RunE: runSnapshot,
	}
	addGeometryFlags(cmd)
	cmd.Flags().StringP("out", "o", "grid.png", "Output file")
	cmd.Flags().Float32("scale", 1, "Device pixel ratio")
	return cmd
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	data, err := loadData(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	opts, err := reportOptions(cfg, data)
	if err != nil {
		return err
	}
	applyGeometryFlags(cmd, &opts)
	opts.PixelRatio, _ = cmd.Flags().GetFloat32("scale")

	out, _ := cmd.Flags().GetString("out")
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := report.WriteSnapshot(f, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%vx%v, %s rows)\n",
		out, opts.Width, opts.Height, humanize.Comma(int64(data.Len())))
	return nil
}
