package organize

import (
	"errors"
	"fmt"

	ioutils "github.com/handiism/picturedb/internal/io"
	"github.com/handiism/picturedb/internal/model"
)

// Status is the result of one file in a batch rename.
type Status int

const (
	// StatusUnchanged means the file ended up under its previous name.
	StatusUnchanged Status = iota
	// StatusRenamed means the file was moved to its new canonical path.
	StatusRenamed
	// StatusFailed means this file could not be moved or its metadata could
	// not be written. TempPath is set if the file was left under its
	// temporary name.
	StatusFailed
	// StatusAborted means the batch stopped before this file was handled.
	// The file is still under TempPath.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusRenamed:
		return "renamed"
	case StatusFailed:
		return "failed"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome reports what happened to one Image in BatchRename.
type Outcome struct {
	Image    *model.Image
	From     string
	To       string
	TempPath string
	Status   Status
	Err      error
}

// BatchRename writes the metadata of every image and moves it to its
// canonical path in two phases.
//
// Metadata is written first, while the files are still at their current
// paths. Phase 1 then parks every file under a random temporary name in its
// directory. Only after all files are parked does phase 2 move each one to
// its canonical path, using the same collision policy as Rename. This allows
// the targets to be any permutation of the current names, as produced by
// model.Renumber.
//
// A file that cannot be parked is reported as failed and left where it was.
// If phase 2 fails for a reason other than an exhausted number range, the
// remaining files are not touched any more and are reported as aborted
// together with their temporary names. A file whose metadata could not be
// written is still renamed but reported as failed. Outcomes are in input
// order.
//
// A crash between the phases leaves files under their temporary names; they
// carry no information to recover the intended names from.
func (o *Organizer) BatchRename(images []*model.Image) []Outcome {
	outcomes := make([]Outcome, len(images))
	metaErrs := make([]error, len(images))
	for i, img := range images {
		outcomes[i] = Outcome{Image: img, From: img.DiskPath(), To: img.CurrentPath()}
		if err := o.WriteMetadata(img); err != nil {
			metaErrs[i] = err
			o.progress(ProgressEvent{Message: err.Error(), Level: LevelError, Path: outcomes[i].From})
		}
	}

	if o.dryRun {
		o.planBatch(outcomes)
	} else {
		o.renameBatch(outcomes)
	}

	for i, err := range metaErrs {
		if err == nil {
			continue
		}
		out := &outcomes[i]
		switch out.Status {
		case StatusRenamed, StatusUnchanged:
			out.Status = StatusFailed
			out.Err = err
		default:
			out.Err = errors.Join(out.Err, err)
		}
	}
	return outcomes
}

// planBatch fills in the outcomes a real run would produce. The batch's own
// files count as moved away, so only files outside the batch and targets
// planned earlier in the batch force a different number.
func (o *Organizer) planBatch(outcomes []Outcome) {
	plan := newDryPlan()
	for _, out := range outcomes {
		plan.vacated[out.From] = true
	}

	for i := range outcomes {
		out := &outcomes[i]
		to, err := o.place(out.Image, out.From, plan)
		if err != nil {
			out.Status = StatusFailed
			out.Err = err
			o.progress(ProgressEvent{Message: err.Error(), Level: LevelError, Path: out.From})
			continue
		}
		out.To = to
		if to == out.From {
			out.Status = StatusUnchanged
			continue
		}
		out.Status = StatusRenamed
		o.progress(ProgressEvent{Message: fmt.Sprintf("Would rename %s -> %s", out.From, to), Level: LevelInfo, Path: out.From})
	}
}

func (o *Organizer) renameBatch(outcomes []Outcome) {
	var parked []int
	for i := range outcomes {
		out := &outcomes[i]
		dir, _ := model.SplitPath(out.From)
		tmp := ioutils.TempPath(dir)
		if err := o.move(out.From, tmp, nil); err != nil {
			out.Status = StatusFailed
			out.Err = fmt.Errorf("moving %s to temporary name: %w", out.From, err)
			o.progress(ProgressEvent{Message: out.Err.Error(), Level: LevelError, Path: out.From})
			continue
		}
		out.Image.MarkMoved(tmp)
		out.TempPath = tmp
		parked = append(parked, i)
	}
	o.logger.Debug("parked files under temporary names", "count", len(parked))

	for n, i := range parked {
		out := &outcomes[i]
		to, err := o.place(out.Image, out.TempPath, nil)
		if err != nil {
			out.Status = StatusFailed
			out.To = out.Image.CurrentPath()
			out.Err = err
			o.progress(ProgressEvent{
				Message: fmt.Sprintf("%v (file left at %s)", err, out.TempPath),
				Level:   LevelError,
				Path:    out.From,
			})

			var renameErr *RenameError
			if errors.As(err, &renameErr) {
				continue
			}
			o.abort(outcomes, parked[n+1:])
			break
		}

		out.To = to
		out.Image.MarkSaved()
		if to == out.From {
			out.Status = StatusUnchanged
			continue
		}
		out.Status = StatusRenamed
		o.progress(ProgressEvent{Message: fmt.Sprintf("Renamed %s -> %s", out.From, to), Level: LevelSuccess, Path: to})
	}
}

func (o *Organizer) abort(outcomes []Outcome, rest []int) {
	for _, i := range rest {
		out := &outcomes[i]
		out.Status = StatusAborted
		out.Err = fmt.Errorf("batch aborted, %s is still at %s", out.From, out.TempPath)
		o.progress(ProgressEvent{Message: out.Err.Error(), Level: LevelError, Path: out.From})
	}
}

// Count returns how many outcomes have status s.
func Count(outcomes []Outcome, s Status) int {
	n := 0
	for _, out := range outcomes {
		if out.Status == s {
			n++
		}
	}
	return n
}
