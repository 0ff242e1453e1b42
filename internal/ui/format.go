package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/handiism/picturedb/internal/model"
	"github.com/handiism/picturedb/internal/organize"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func Success(msg string) string {
	return green("✓ ") + msg
}

func Error(msg string) string {
	return red("✗ ") + msg
}

func Warning(msg string) string {
	return yellow("! ") + msg
}

// Event renders a progress event as one line.
func Event(e organize.ProgressEvent) string {
	switch e.Level {
	case organize.LevelSuccess:
		return Success(e.Message)
	case organize.LevelError:
		return Error(e.Message)
	case organize.LevelWarning:
		return Warning(e.Message)
	case organize.LevelVerbose:
		return faint("  " + e.Message)
	default:
		return cyan("› ") + e.Message
	}
}

// Image renders the parsed fields of an image for the show command.
func Image(img *model.Image) string {
	var sb strings.Builder

	sb.WriteString(bold(img.DiskPath()) + "\n")
	field := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %s %s\n", faint(fmt.Sprintf("%-9s", name+":")), value))
	}
	field("Date", img.Date())
	field("Event", img.Event())
	field("Number", img.Number())
	field("Suffix", img.Suffix())
	field("Tags", Tags(img.Tags()))
	if img.MetadataTracked() {
		field("Keywords", strings.Join(img.KnownKeywords(), ", "))
	}
	if img.NameChanged() {
		field("Canonical", cyan(img.CurrentPath()))
	}

	return sb.String()
}

// Tags renders tags by their human readable text.
func Tags(tags []model.Tag) string {
	if len(tags) == 0 {
		return faint("(none)")
	}
	texts := make([]string, len(tags))
	for i, t := range tags {
		texts[i] = t.Text
	}
	return strings.Join(texts, ", ")
}

// Summary counts the outcomes of a batch rename.
func Summary(outcomes []organize.Outcome) string {
	renamed := organize.Count(outcomes, organize.StatusRenamed)
	unchanged := organize.Count(outcomes, organize.StatusUnchanged)
	failed := organize.Count(outcomes, organize.StatusFailed)
	aborted := organize.Count(outcomes, organize.StatusAborted)

	msg := fmt.Sprintf("%d renamed, %d unchanged", renamed, unchanged)
	if failed+aborted == 0 {
		return Success(msg)
	}
	msg += fmt.Sprintf(", %d failed", failed)
	if aborted > 0 {
		msg += fmt.Sprintf(", %d aborted", aborted)
	}
	return Error(msg)
}

// Stranded lists the files a batch rename left under temporary names.
func Stranded(outcomes []organize.Outcome) string {
	var sb strings.Builder
	for _, out := range outcomes {
		if out.TempPath == "" || (out.Status != organize.StatusFailed && out.Status != organize.StatusAborted) {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", out.TempPath, faint("was"), out.From))
	}
	return sb.String()
}
