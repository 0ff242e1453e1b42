package organize

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/handiism/picturedb/internal/config"
	ioutils "github.com/handiism/picturedb/internal/io"
	"github.com/handiism/picturedb/internal/metadata"
	"github.com/handiism/picturedb/internal/model"
)

// Organizer applies Image changes to the file system and keeps the embedded
// keyword list in sync with the tags.
//
// An Organizer is used from a single goroutine, except for Order which reads
// capture times concurrently.
//
// Example:
//
//	org := organize.New(settings, store, logger, func(e organize.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//
//	img, err := org.Open("20120204-Party/IMG_0042.jpg", model.NewSequence(1))
//	if err != nil {
//	    return err
//	}
//	img.AddTag(model.NewTag("Martin Ueding"))
//	err = org.Save(img)
type Organizer struct {
	settings *config.Settings
	store    metadata.Store
	logger   *log.Logger
	dryRun   bool

	onProgress func(ProgressEvent)
}

// New creates an Organizer. A nil store disables metadata handling, a nil
// logger discards log output and a nil onProgress drops progress events.
func New(settings *config.Settings, store metadata.Store, logger *log.Logger, onProgress func(ProgressEvent)) *Organizer {
	if settings == nil {
		settings = config.DefaultSettings()
	}
	if store == nil {
		store = metadata.NewRouter()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Organizer{
		settings:   settings,
		store:      store,
		logger:     logger,
		onProgress: onProgress,
	}
}

// SetDryRun makes Save, Rename, WriteMetadata, BatchRename and Hashtag
// report what they would do without touching any file.
func (o *Organizer) SetDryRun(dryRun bool) {
	o.dryRun = dryRun
}

// DryRun reports whether the Organizer is in dry-run mode.
func (o *Organizer) DryRun() bool { return o.dryRun }

// Open parses path and merges the keywords stored in the file into the tags.
//
// A file without a keyword list starts with an empty one. A file whose type
// has no metadata backend is not tracked at all. Any other read failure is
// logged and treated like a missing list.
func (o *Organizer) Open(path string, seq *model.Sequence) (*model.Image, error) {
	img, err := model.Parse(path, seq)
	if err != nil {
		return nil, err
	}
	o.loadKeywords(img)
	return img, nil
}

// OpenAll opens every path. Files that cannot be parsed are reported and
// skipped; their errors are returned alongside the images that could be
// opened.
func (o *Organizer) OpenAll(paths []string, seq *model.Sequence) ([]*model.Image, []error) {
	var (
		images []*model.Image
		errs   []error
	)
	for _, p := range paths {
		img, err := o.Open(p, seq)
		if err != nil {
			o.progress(ProgressEvent{Message: err.Error(), Level: LevelError, Path: p})
			errs = append(errs, err)
			continue
		}
		images = append(images, img)
	}
	return images, errs
}

func (o *Organizer) loadKeywords(img *model.Image) {
	path := img.DiskPath()
	keywords, err := o.store.Read(path)
	switch {
	case err == nil:
		if err := img.MergeKeywords(keywords); err != nil {
			o.logger.Warn("skipping keywords that are not valid tags", "path", path, "err", err)
			o.progress(ProgressEvent{
				Message: fmt.Sprintf("Keeping invalid keywords of %s out of the name: %v", path, err),
				Level:   LevelWarning,
				Path:    path,
			})
		}
		if len(keywords) > 0 {
			o.logger.Info("found tags", "path", path, "tags", strings.Join(keywords, ", "))
		}
	case errors.Is(err, metadata.ErrNotFound):
		img.TrackMetadata()
	case errors.Is(err, metadata.ErrUnsupported):
		o.logger.Debug("no metadata backend", "path", path)
	default:
		o.logger.Warn("reading metadata failed", "path", path, "err", err)
		o.progress(ProgressEvent{
			Message: fmt.Sprintf("Could not read tags of %s: %v", path, err),
			Level:   LevelWarning,
			Path:    path,
		})
		img.TrackMetadata()
	}
}

// WriteMetadata stores the sorted tag texts in the file if they differ from
// the keyword list last read or written.
func (o *Organizer) WriteMetadata(img *model.Image) error {
	if !img.MetadataChanged() {
		return nil
	}

	path := img.DiskPath()
	keywords := img.Keywords()
	if o.dryRun {
		o.progress(ProgressEvent{
			Message: fmt.Sprintf("Would write tags [%s] to %s", strings.Join(keywords, ", "), path),
			Level:   LevelInfo,
			Path:    path,
		})
		return nil
	}

	if err := o.store.Write(path, keywords); err != nil {
		return fmt.Errorf("writing tags of %s: %w", path, err)
	}
	img.MarkSynced(keywords)
	o.logger.Debug("wrote tags", "path", path, "tags", keywords)
	return nil
}

// Rename moves the file to the Image's canonical path.
//
// When the target is taken the number is incremented until a free name is
// found, at most Settings.MaxRenameAttempts times. The number that was used
// stays on the Image. An existing file is never replaced.
func (o *Organizer) Rename(img *model.Image) error {
	if !img.NameChanged() {
		return nil
	}
	from := img.DiskPath()
	to, err := o.place(img, from, nil)
	if err != nil {
		return err
	}
	if to == from {
		return nil
	}

	verb := "Renamed"
	if o.dryRun {
		verb = "Would rename"
	}
	o.progress(ProgressEvent{Message: fmt.Sprintf("%s %s -> %s", verb, from, to), Level: LevelSuccess, Path: to})
	return nil
}

// Save writes the metadata and renames the file. Both steps are attempted
// even if the first one fails; their errors are joined. Calling Save on an
// unchanged Image does nothing.
func (o *Organizer) Save(img *model.Image) error {
	var errs []error
	if err := o.WriteMetadata(img); err != nil {
		errs = append(errs, err)
	}
	if err := o.Rename(img); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	if !o.dryRun {
		img.MarkSaved()
	}
	return nil
}

// place moves the file at from to the canonical path of img, applying the
// collision policy, and returns where the file ended up.
//
// In dry-run mode it works on a copy of img, so the numbers tried by the
// collision loop are not kept, and plan decides which targets count as taken.
// A nil plan only looks at the file system.
func (o *Organizer) place(img *model.Image, from string, plan *dryPlan) (string, error) {
	if o.dryRun {
		img = img.Clone()
	}
	limit := o.settings.MaxRenameAttempts
	if limit < 1 {
		limit = 1
	}

	for attempt := 1; ; attempt++ {
		to := img.CurrentPath()
		if to == from {
			// The collision loop arrived at the file's own name.
			img.MarkMoved(to)
			plan.claim(to)
			return to, nil
		}

		err := o.move(from, to, plan)
		if err == nil {
			img.MarkMoved(to)
			return to, nil
		}
		if !errors.Is(err, ioutils.ErrExists) {
			return "", err
		}

		o.logger.Debug("target exists", "path", to)
		if attempt >= limit {
			return "", &RenameError{From: from, To: to, Attempts: attempt, Err: ErrTargetExists}
		}
		if err := img.IncrementNumber(); err != nil {
			return "", &RenameError{From: from, To: to, Attempts: attempt, Err: errors.Join(ErrTargetExists, err)}
		}
	}
}

// move performs one no-clobber move and lets a path-keyed metadata store
// follow it. In dry-run mode it only checks whether plan considers the target
// taken, and claims it otherwise.
func (o *Organizer) move(from, to string, plan *dryPlan) error {
	if o.dryRun {
		if plan.taken(to) {
			return ioutils.ErrExists
		}
		plan.claim(to)
		return nil
	}
	if err := ioutils.MoveNoClobber(from, to); err != nil {
		return err
	}
	if m, ok := o.store.(metadata.Mover); ok {
		m.Move(from, to)
	}
	o.logger.Debug("moved", "from", from, "to", to)
	return nil
}

// dryPlan tracks the simulated state of the file system during a dry run.
type dryPlan struct {
	// vacated paths belong to files that a batch moves away first.
	vacated map[string]bool
	// claimed paths are targets already handed out.
	claimed map[string]bool
}

func newDryPlan() *dryPlan {
	return &dryPlan{vacated: make(map[string]bool), claimed: make(map[string]bool)}
}

func (p *dryPlan) taken(path string) bool {
	if p == nil {
		return ioutils.Exists(path)
	}
	if p.claimed[path] {
		return true
	}
	return !p.vacated[path] && ioutils.Exists(path)
}

func (p *dryPlan) claim(path string) {
	if p != nil {
		p.claimed[path] = true
	}
}

func (o *Organizer) progress(event ProgressEvent) {
	if o.onProgress != nil {
		o.onProgress(event)
	}
}
