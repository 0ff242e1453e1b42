package main

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <file>...",
	Short: "Move files to their canonical names",
	Long: `Rename each file to <date>-<event>-<number>#<tags>.<ext>, taking date and
event from the folder and merging embedded keywords into the tags.
Files without a number are numbered from 1 in the order given. A taken
name is never overwritten; the number is incremented instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		images, errs := env.Organizer.OpenAll(args, model.NewSequence(1))
		failed := len(errs)
		for _, img := range images {
			if err := env.Organizer.Save(img); err != nil {
				fmt.Println(ui.Error(err.Error()))
				failed++
			}
		}
		return failures(failed, len(args))
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
