package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/slicer/internal/app"
)

func newRootCmd() *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "slicer",
		Short: "Terminal slice-reveal gallery",
		Long: `Lay a row of slices across the terminal. Hovering a slice reveals its
background through a sliding clip; clicking expands it to fill the screen.

Examples:
  slicer --demo                          # Run with the built-in sources
  slicer --config ~/gallery.toml         # Use a specific config
  slicer check                           # Verify every source loads`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/slicer/config.toml)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "log at debug level")
	flags.BoolVar(&opts.Demo, "demo", false, "use built-in sources when no config file exists")

	root.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Load the config and verify every source without starting the UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Check(cmd.Context(), opts, cmd.OutOrStdout())
		},
	})

	var lines int
	logs := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the slicer log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Logs(opts, cmd.OutOrStdout(), lines)
		},
	}
	logs.Flags().IntVarP(&lines, "lines", "n", 40, "number of lines to show")
	root.AddCommand(logs)

	return root
}
