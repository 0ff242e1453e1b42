package organize

import (
	"fmt"

	"github.com/handiism/picturedb/internal/model"
)

// Hashtag adds tag to, or with remove set removes it from, the "#tag" block
// of an arbitrary filename and moves the file accordingly. The rest of the
// name is left alone, so this works for files outside the date/event
// convention. It returns the new path, which equals path when nothing
// changed. An existing file is never replaced.
func (o *Organizer) Hashtag(path string, tag model.Tag, remove bool) (string, error) {
	dir, base := model.SplitPath(path)
	name, tags := model.SplitTags(base)

	set := model.NewTagSet(tags...)
	var changed bool
	if remove {
		changed = set.Remove(tag)
	} else {
		changed = set.Add(tag)
	}
	if !changed {
		o.logger.Debug("tag block unchanged", "path", path, "tag", tag)
		return path, nil
	}

	to := model.JoinPath(dir, model.JoinTags(name, set.Sorted()))
	if to == path {
		return path, nil
	}
	if err := o.move(path, to, nil); err != nil {
		return "", fmt.Errorf("renaming %s: %w", path, err)
	}

	verb := "Renamed"
	if o.dryRun {
		verb = "Would rename"
	}
	o.progress(ProgressEvent{Message: fmt.Sprintf("%s %s -> %s", verb, path, to), Level: LevelSuccess, Path: to})
	return to, nil
}
