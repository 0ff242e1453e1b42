package main

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/ui"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
	Long:  `Add or remove a tag on files. The name and the embedded keywords are updated together.`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <tag> <file>...",
	Short: "Add a tag to files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTags(args[0], args[1:], (*model.Image).AddTag)
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <tag> <file>...",
	Short: "Remove a tag from files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editTags(args[0], args[1:], (*model.Image).RemoveTag)
	},
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	rootCmd.AddCommand(tagCmd)
}

// editTags applies edit to every file and saves it. A file that fails does
// not stop the others.
func editTags(text string, paths []string, edit func(*model.Image, model.Tag)) error {
	tag, err := model.ParseTag(text)
	if err != nil {
		return err
	}

	images, errs := env.Organizer.OpenAll(paths, model.NewSequence(1))
	failed := len(errs)
	for _, img := range images {
		edit(img, tag)
		if err := env.Organizer.Save(img); err != nil {
			fmt.Println(ui.Error(err.Error()))
			failed++
		}
	}
	return failures(failed, len(paths))
}
