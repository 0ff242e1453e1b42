package main

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>...",
	Short: "Show the parsed fields and tags of files",
	Long: `Parse each file name, merge the embedded keywords and print the result.
Files without a number are numbered from 1 in the order given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		images, errs := env.Organizer.OpenAll(args, model.NewSequence(1))
		for _, img := range images {
			fmt.Println(ui.Image(img))
		}
		return failures(len(errs), len(args))
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
