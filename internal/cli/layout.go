package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid/internal/report"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print resolved column widths and scrollbar geometry",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}
	addGeometryFlags(cmd)
	return cmd
}

func runLayout(cmd *cobra.Command, args []string) error {
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

	fmt.Fprintln(cmd.OutOrStdout(), report.ComputeLayout(opts).Render())
	return nil
}
