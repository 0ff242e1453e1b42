package model

import (
	"fmt"
	"regexp"
	"strings"
)

// TagString renders tags the way they appear in a filename.
//
// The result is empty for no tags. Otherwise every tag is encoded, the
// encoded forms are sorted and de-duplicated, and each one is preceded by "#".
//
//	TagString([]Tag{NewTag("b"), NewTag("a b"), NewTag("b")}) // "#a_b#b"
func TagString(tags []Tag) string {
	if len(tags) == 0 {
		return ""
	}

	sorted := make([]Tag, len(tags))
	copy(sorted, tags)
	sortByEncoded(sorted)

	var b strings.Builder
	last := ""
	for i, t := range sorted {
		enc := t.Encode()
		if i > 0 && enc == last {
			continue
		}
		b.WriteString("#")
		b.WriteString(enc)
		last = enc
	}
	return b.String()
}

// Render builds the canonical path "<dir>/<date>-<event>-<number><tags>.<suffix>".
//
// dir may be empty, in which case only the filename is returned.
//
// Example:
//
//	Render("", "20120204", "Klopapierberg", "9240",
//	    []Tag{NewTag("Martin_Ueding"), NewTag("Another Tag")}, "jpg")
//	// "20120204-Klopapierberg-9240#Another_Tag#Martin_Ueding.jpg"
func Render(dir, date, event, number string, tags []Tag, suffix string) string {
	name := fmt.Sprintf("%s-%s-%s%s.%s", date, event, number, TagString(tags), suffix)
	return JoinPath(dir, name)
}

// hashtagPattern finds the tag block of an arbitrary filename.
var hashtagPattern = regexp.MustCompile(`^([^#]+)((?:#[^#.]*)+)(\.\w+)?$`)

// SplitTags removes the "#tag" segments from an arbitrary filename.
//
// Unlike ParseFilename it makes no assumption about the rest of the name, so
// it works for files outside the date/event convention:
//
//	SplitTags("holiday#Beach#Sun.png") // "holiday.png", [Beach Sun]
//	SplitTags("notes.txt")             // "notes.txt", nil
func SplitTags(name string) (string, []Tag) {
	m := hashtagPattern.FindStringSubmatch(name)
	if m == nil {
		return name, nil
	}

	var tags []Tag
	for _, segment := range strings.Split(m[2], "#") {
		if segment != "" {
			tags = append(tags, TagFromEncoded(segment))
		}
	}
	return m[1] + m[3], tags
}

// JoinTags is the inverse of SplitTags: it inserts the tag block before the
// extension of an untagged filename. Names without an extension get the tag
// block appended.
func JoinTags(name string, tags []Tag) string {
	stem, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		stem, ext = name[:i], name[i:]
	}
	return stem + TagString(tags) + ext
}
