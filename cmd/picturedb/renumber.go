package main

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/organize"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var renumberOrder string

var renumberCmd = &cobra.Command{
	Use:   "renumber <file>...",
	Short: "Number files 1..N without gaps",
	Long: `Sort the files, assign the numbers 1..N zero-padded to the width of N and
rename all of them. The targets may be any permutation of the current
names: every file is first moved to a temporary name, then to its target.
The embedded keywords are written before the files are moved. Files whose
names cannot be parsed are reported and left alone.

Orders:
  number  current number, numerically (default from settings)
  path    path as given
  taken   EXIF capture time, files without one last`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		order := renumberOrder
		if order == "" {
			order = env.Settings.RenumberOrder
		}
		by, err := organize.ParseOrder(order)
		if err != nil {
			return err
		}

		// Files that cannot be parsed are reported by OpenAll and left alone.
		images, errs := env.Organizer.OpenAll(args, model.NewSequence(1))
		if len(images) == 0 {
			return failures(len(errs), len(args))
		}

		if err := env.Organizer.Order(cmd.Context(), images, by); err != nil {
			return err
		}
		model.Renumber(images)

		outcomes := env.Organizer.BatchRename(images)
		fmt.Println(ui.Summary(outcomes))
		if stranded := ui.Stranded(outcomes); stranded != "" {
			fmt.Println(ui.Warning("Files left under temporary names:"))
			fmt.Print(stranded)
		}

		failed := len(errs) + organize.Count(outcomes, organize.StatusFailed) + organize.Count(outcomes, organize.StatusAborted)
		return failures(failed, len(args))
	},
}

func init() {
	renumberCmd.Flags().StringVar(&renumberOrder, "order", "", "sort order: number, path or taken")
	rootCmd.AddCommand(renumberCmd)
}
