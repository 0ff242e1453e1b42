package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/picturedb/internal/app"
	"github.com/handiism/picturedb/internal/organize"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dryRun     bool
	verbose    bool
	noMetadata bool

	env *app.App
)

var rootCmd = &cobra.Command{
	Use:   "picturedb",
	Short: "Organize photos by date, event, number and tags",
	Long: `picturedb keeps a photo collection in the layout

  <YYYYMMDD>-<event>/<YYYYMMDD>-<event>-<number>#<tag>#<tag>.<ext>

Tags live in the file name and, where a metadata backend is available,
in the embedded keyword list. Both are kept in sync.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		env, err = app.New(app.Options{
			ConfigPath: configPath,
			DryRun:     dryRun,
			Verbose:    verbose,
			NoMetadata: noMetadata,
			OnProgress: printEvent,
		})
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/picturedb/settings.json)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would change without touching any file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show debug output")
	rootCmd.PersistentFlags().BoolVar(&noMetadata, "no-metadata", false, "do not read or write embedded keywords")
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
	}
	if env != nil {
		if cerr := env.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, ui.Warning(cerr.Error()))
		}
	}
	return err
}

func printEvent(e organize.ProgressEvent) {
	if e.Level == organize.LevelVerbose && !verbose {
		return
	}
	fmt.Println(ui.Event(e))
}

// failures turns per-file errors into the command's error.
func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d files failed", failed, total)
}
