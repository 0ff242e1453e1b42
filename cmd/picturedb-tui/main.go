package main

import (
	"fmt"
	"os"

	"github.com/handiism/picturedb/internal/app"
	"github.com/handiism/picturedb/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "picturedb-tui <file>...",
		Short: "Tag files by picking from the favorite tags",
		Long: `Show the favorite tags from the settings. Picking one adds it to every
file given on the command line and saves each file under its canonical name.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "settings file (default $XDG_CONFIG_HOME/picturedb/settings.json)")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "show what would change without touching any file")
	cmd.Flags().BoolVar(&opts.NoMetadata, "no-metadata", false, "do not read or write embedded keywords")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
