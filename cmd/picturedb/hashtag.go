package main

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var hashtagRemove bool

var hashtagCmd = &cobra.Command{
	Use:   "hashtag <tag> <file>...",
	Short: "Tag arbitrary files through a #tag block in the name",
	Long: `Add a tag to, or with --remove remove it from, the #tag block before the
extension of any file, e.g. scan.pdf becomes scan#Tax_Return.pdf. The rest
of the name is not interpreted and no embedded metadata is touched.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := model.ParseTag(args[0])
		if err != nil {
			return err
		}

		paths := args[1:]
		failed := 0
		for _, p := range paths {
			if _, err := env.Organizer.Hashtag(p, tag, hashtagRemove); err != nil {
				fmt.Println(ui.Error(err.Error()))
				failed++
			}
		}
		return failures(failed, len(paths))
	},
}

func init() {
	hashtagCmd.Flags().BoolVarP(&hashtagRemove, "remove", "r", false, "remove the tag instead of adding it")
	rootCmd.AddCommand(hashtagCmd)
}
