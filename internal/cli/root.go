// Package cli implements the gridview command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/grid"
)

// Version is set at build time.
var Version = "dev"

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))

var rootCmd = &cobra.Command{
	Use:   "gridview",
	Short: "Browse very large tables on a single drawing surface",
	Long: `gridview renders a synthetic dataset of up to millions of rows with the
grid engine. Only the rows in view are painted.

Settings are read from a TOML file (default: $XDG_CONFIG_HOME/gridview/config.toml)
and can be overridden with flags.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       Version,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (default: "+configHint()+")")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Int("rows", 0, "Number of demo rows (overrides config)")
	rootCmd.PersistentFlags().Bool("ellipsis", false, "Truncate cells with an ellipsis instead of wrapping")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		grid.SetVerbose(verbose)
	}

	rootCmd.AddCommand(
		newViewCmd(),
		newSnapshotCmd(),
		newLayoutCmd(),
	)
}
