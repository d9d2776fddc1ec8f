// Command passreader summarizes the passenger dataset and renders the chart
// headlessly.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/mcgradyjason/udacity-data-analyst/src/config"
	"github.com/mcgradyjason/udacity-data-analyst/src/draw"
	"github.com/mcgradyjason/udacity-data-analyst/src/logging"
	"github.com/mcgradyjason/udacity-data-analyst/src/passengers"
	"github.com/mcgradyjason/udacity-data-analyst/src/scene"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	file       string
	configPath string
	logLevel   string
}

// settings resolves the config file and the --file override.
func (o *rootOptions) settings() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.file != "" {
		cfg.Data.Path = o.file
	}
	return cfg, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "passreader",
		Short: "Inspect and render the passenger age/fare dataset",
		Long: `passreader reads the passenger CSV used by passviewer.

Available subcommands:
  summary - Count passengers per group, and how many can be plotted
  export  - Render the scatter plot to PNG and SVG files`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetLogLevel(opts.logLevel)
		},
	}
	root.PersistentFlags().StringVar(&opts.file, "file", "", "Path to the passenger CSV (default data/train.csv)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Optional YAML layout/data config")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newSummaryCmd(opts), newExportCmd(opts))
	return root
}

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Count passengers per group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.settings()
			if err != nil {
				return err
			}
			recs, err := passengers.Load(cmd.Context(), cfg.Data.Path)
			if err != nil {
				return err
			}
			c := passengers.CountGroups(recs)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", cfg.Data.Path)
			fmt.Fprintf(out, "Total passengers: %s\n", humanize.Comma(int64(c.Records())))
			plotted := 0
			for _, g := range passengers.Groups {
				plotted += c.Plottable[g]
				fmt.Fprintf(out, "%-22s %5d total, %5d plottable\n", g.Label()+":", c.Total[g], c.Plottable[g])
			}
			fmt.Fprintf(out, "Plottable: %d (%d skipped: missing age or zero fare)\n", plotted, c.Records()-plotted)
			return nil
		},
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir, show string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the scatter plot to PNG and SVG files",
		Long: `Render the scatter plot headlessly.

--show is a four-character mask in legend order (female survived, female
not survived, male survived, male not survived); 0 ghosts a group.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vis, err := scene.ParseVisibility(show)
			if err != nil {
				return err
			}
			cfg, err := opts.settings()
			if err != nil {
				return err
			}
			recs, err := passengers.Load(cmd.Context(), cfg.Data.Path)
			if err != nil {
				return err
			}
			sc := scene.Render(recs, vis, cfg.SceneLayout())
			paths, err := draw.ExportFiles(sc, outDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				logging.Infof("wrote %s", p)
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "charts", "Output directory")
	cmd.Flags().StringVar(&show, "show", "1111", "Group visibility mask")
	return cmd
}

func main() {
	defer logging.Sync()
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}
