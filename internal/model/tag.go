package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// escapeRule maps one piece of human readable text to its filesystem-safe form.
type escapeRule struct {
	plain   string
	encoded string
}

// escapeTable is applied in order by Encode and in reverse order by
// TagFromEncoded. New rules must keep the mapping reversible.
var escapeTable = []escapeRule{
	{plain: " ", encoded: "_"},
}

// Tag is a free-form label attached to an image.
//
// A Tag is stored twice: encoded in the filename (after a "#") and as a
// plain keyword in the embedded metadata of the file. Two tags are equal
// when their Text is equal, so Tag can be used directly as a map key.
//
// Example:
//
//	tag := NewTag("Martin Ueding")
//	tag.Encode()                     // "Martin_Ueding"
//	TagFromEncoded("Martin_Ueding")  // Tag{Text: "Martin Ueding"}
type Tag struct {
	// Text is the human readable form, e.g. "Another Tag".
	Text string
}

// NewTag creates a Tag from human readable text without validation.
func NewTag(text string) Tag {
	return Tag{Text: text}
}

// TagFromEncoded recovers a Tag from the form used inside filenames.
func TagFromEncoded(encoded string) Tag {
	text := encoded
	for i := len(escapeTable) - 1; i >= 0; i-- {
		text = strings.ReplaceAll(text, escapeTable[i].encoded, escapeTable[i].plain)
	}
	return Tag{Text: text}
}

// ParseTag validates user supplied text and returns the Tag for it.
//
// It is meant for text coming from outside the program (command line,
// config files, the TUI). Surrounding whitespace is trimmed. Empty text and
// text containing "#", "/" or "." is rejected because those characters carry
// structure in a path.
func ParseTag(text string) (Tag, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Tag{}, fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	if i := strings.IndexAny(text, "#/."); i >= 0 {
		return Tag{}, fmt.Errorf("%w: %q contains %q", ErrInvalidTag, text, text[i])
	}
	return Tag{Text: text}, nil
}

// ParseTags runs ParseTag on every entry and collects all failures.
func ParseTags(texts []string) ([]Tag, error) {
	var (
		tags []Tag
		errs []error
	)
	for _, text := range texts {
		tag, err := ParseTag(text)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		tags = append(tags, tag)
	}
	return tags, errors.Join(errs...)
}

// Encode returns the filesystem-safe form of the tag.
func (t Tag) Encode() string {
	encoded := t.Text
	for _, rule := range escapeTable {
		encoded = strings.ReplaceAll(encoded, rule.plain, rule.encoded)
	}
	return encoded
}

// Less orders tags by Text.
func (t Tag) Less(other Tag) bool {
	return t.Text < other.Text
}

// String returns the human readable text.
func (t Tag) String() string {
	return t.Text
}

// TagSet is an unordered collection of distinct tags.
type TagSet map[Tag]struct{}

// NewTagSet returns a set holding the given tags.
func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

// Add inserts t and reports whether it was not present before.
func (s TagSet) Add(t Tag) bool {
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

// Remove deletes t and reports whether it was present.
func (s TagSet) Remove(t Tag) bool {
	if _, ok := s[t]; !ok {
		return false
	}
	delete(s, t)
	return true
}

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the tags ordered by their encoded form.
func (s TagSet) Sorted() []Tag {
	tags := make([]Tag, 0, len(s))
	for t := range s {
		tags = append(tags, t)
	}
	sortByEncoded(tags)
	return tags
}

// Texts returns the human readable texts in sorted order.
func (s TagSet) Texts() []string {
	texts := make([]string, 0, len(s))
	for t := range s {
		texts = append(texts, t.Text)
	}
	sort.Strings(texts)
	return texts
}

func sortByEncoded(tags []Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		ei, ej := tags[i].Encode(), tags[j].Encode()
		if ei != ej {
			return ei < ej
		}
		return tags[i].Text < tags[j].Text
	})
}
