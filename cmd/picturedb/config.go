package main

import (
	"encoding/json"
	"fmt"

	"github.com/handiism/picturedb/internal/config"
	ioutils "github.com/handiism/picturedb/internal/io"
	"github.com/handiism/picturedb/internal/organize"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and favorite tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(env.Settings, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		tags, err := env.Settings.Tags()
		fmt.Println("Favorite tags:", ui.Tags(tags))
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return err
			}
		}
		if ioutils.Exists(path) {
			return fmt.Errorf("%s already exists", path)
		}
		if dryRun {
			fmt.Println(ui.Event(organize.ProgressEvent{Message: "Would write " + path}))
			return nil
		}
		if err := config.DefaultSettings().Save(path); err != nil {
			return err
		}
		fmt.Println(ui.Success("Wrote " + path))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
