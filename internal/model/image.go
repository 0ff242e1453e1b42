package model

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
)

// State tracks how an Image relates to the file on disk.
type State int

const (
	// StateConstructed means the Image was parsed and not reconciled with disk yet.
	StateConstructed State = iota

	// StateDirty means tags or the number changed since construction or the last save.
	StateDirty

	// StateSaved means the on-disk name and metadata match the computed state.
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateDirty:
		return "dirty"
	case StateSaved:
		return "saved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Image is the structured form of one picture file of the collection.
//
// An Image is created by Parse from an existing path and never touches the
// filesystem itself. It knows where its file currently is (DiskPath), where
// it should be (CurrentPath) and which keywords the embedded metadata held
// when it was last read or written. Moving the file and writing metadata is
// done by the organize package, which reports back through MarkMoved and
// MarkSynced.
//
// Example:
//
//	seq := NewSequence(1)
//	img, err := Parse("20120204-Klopapierberg/IMG_9240.jpg", seq)
//	if err != nil {
//	    return err
//	}
//	img.AddTag(NewTag("Martin Ueding"))
//	img.CurrentPath() // "20120204-Klopapierberg/20120204-Klopapierberg-9240#Martin_Ueding.jpg"
type Image struct {
	originalPath string
	diskPath     string

	dir      string
	baseName string
	date     string
	event    string
	number   string
	suffix   string

	tags TagSet

	// known is the keyword list last read from or written to the file.
	known []string
	// foreign holds keywords that are not valid tags. They stay in the
	// metadata but never reach the filename.
	foreign []string
	// tracked is false when the file type carries no metadata we can handle.
	tracked bool

	state State
}

// OriginalPath is the path the Image was parsed from. It never changes.
func (img *Image) OriginalPath() string { return img.originalPath }

// DiskPath is where the file is right now.
func (img *Image) DiskPath() string { return img.diskPath }

// Dir is the directory of the original path, empty for a bare filename.
func (img *Image) Dir() string { return img.dir }

// BaseName is the filename of the original path.
func (img *Image) BaseName() string { return img.baseName }

// Date is the YYYYMMDD token.
func (img *Image) Date() string { return img.date }

// Event is the event name. It may contain hyphens.
func (img *Image) Event() string { return img.event }

// Number is the sequence token within the event.
func (img *Image) Number() string { return img.number }

// Suffix is the file extension without the dot.
func (img *Image) Suffix() string { return img.suffix }

// State reports the lifecycle state.
func (img *Image) State() State { return img.state }

// Fields returns date, event and number.
func (img *Image) Fields() Fields {
	return Fields{Date: img.date, Event: img.event, Number: img.number}
}

// Tags returns the tags sorted by encoded form.
func (img *Image) Tags() []Tag {
	return img.tags.Sorted()
}

// HasTag reports whether the image carries t.
func (img *Image) HasTag(t Tag) bool {
	return img.tags.Has(t)
}

// AddTag adds t. Adding a tag that is already present changes nothing.
func (img *Image) AddTag(t Tag) {
	if img.tags == nil {
		img.tags = TagSet{}
	}
	if img.tags.Add(t) {
		img.state = StateDirty
	}
}

// RemoveTag removes t if present. A missing tag is not an error.
func (img *Image) RemoveTag(t Tag) {
	if img.tags.Remove(t) {
		img.state = StateDirty
	}
}

// SetNumber replaces the sequence number.
func (img *Image) SetNumber(number string) {
	if number == img.number {
		return
	}
	img.number = number
	img.state = StateDirty
}

// IncrementNumber adds one to a numeric sequence number.
func (img *Image) IncrementNumber() error {
	n, err := strconv.Atoi(img.number)
	if err != nil {
		return fmt.Errorf("number %q of %q is not numeric: %w", img.number, img.diskPath, err)
	}
	img.SetNumber(strconv.Itoa(n + 1))
	return nil
}

// CurrentPath renders the canonical path for the current fields.
func (img *Image) CurrentPath() string {
	return Render(img.dir, img.date, img.event, img.number, img.Tags(), img.suffix)
}

// NameChanged reports whether the file has to be moved to reach CurrentPath.
func (img *Image) NameChanged() bool {
	return img.CurrentPath() != img.diskPath
}

// MergeKeywords records the keyword list read from the file's metadata and
// adds every keyword as a tag. It is used while constructing the Image and
// does not mark it dirty.
//
// Keywords are validated with ParseTag. Invalid ones, such as "AC/DC", are
// not added as tags but are kept in Keywords so a later metadata write does
// not drop them. The returned error lists them and wraps ErrInvalidTag.
func (img *Image) MergeKeywords(keywords []string) error {
	img.tracked = true
	img.known = slices.Clone(keywords)
	if img.tags == nil {
		img.tags = TagSet{}
	}

	var errs []error
	for _, k := range keywords {
		tag, err := ParseTag(k)
		if err != nil {
			if !slices.Contains(img.foreign, k) {
				img.foreign = append(img.foreign, k)
			}
			errs = append(errs, fmt.Errorf("keyword %q: %w", k, err))
			continue
		}
		img.tags.Add(tag)
	}
	return errors.Join(errs...)
}

// TrackMetadata enables metadata comparison for a file that had no keyword
// list yet.
func (img *Image) TrackMetadata() {
	img.tracked = true
}

// MetadataTracked reports whether the file type supports a keyword list.
func (img *Image) MetadataTracked() bool { return img.tracked }

// KnownKeywords returns the keyword list last read from or written to the file.
func (img *Image) KnownKeywords() []string {
	return slices.Clone(img.known)
}

// Keywords returns the tag texts, plus keywords that are not valid tags, as
// they should be stored in metadata.
func (img *Image) Keywords() []string {
	keywords := append(img.tags.Texts(), img.foreign...)
	sort.Strings(keywords)
	return keywords
}

// Clone returns an independent copy of the Image.
func (img *Image) Clone() *Image {
	c := *img
	c.tags = NewTagSet(img.tags.Sorted()...)
	c.known = slices.Clone(img.known)
	c.foreign = slices.Clone(img.foreign)
	return &c
}

// MetadataChanged reports whether the stored keyword list differs from the tags.
func (img *Image) MetadataChanged() bool {
	if !img.tracked {
		return false
	}
	known := slices.Clone(img.known)
	sort.Strings(known)
	return !slices.Equal(known, img.Keywords())
}

// MarkMoved records that the file now lives at p.
func (img *Image) MarkMoved(p string) {
	img.diskPath = p
}

// MarkSynced records that keywords were written to the file.
func (img *Image) MarkSynced(keywords []string) {
	img.tracked = true
	img.known = slices.Clone(keywords)
}

// MarkSaved moves the Image to StateSaved if disk and metadata match the
// computed state, and reports whether it did.
func (img *Image) MarkSaved() bool {
	if img.NameChanged() || img.MetadataChanged() {
		return false
	}
	img.state = StateSaved
	return true
}

func (img *Image) String() string {
	return fmt.Sprintf("Image(%q)", img.CurrentPath())
}
