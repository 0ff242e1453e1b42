package model

import (
	"regexp"
	"strings"
)

var (
	// folderPattern matches "<YYYYMMDD>-<event>". The date is only loosely
	// validated; the event may contain further hyphens.
	folderPattern = regexp.MustCompile(`^([12]\d{3}[01]\d[0-3]\d)-(.+)$`)

	// filenamePattern matches "<prefix>(#<tag>)*.<suffix>".
	filenamePattern = regexp.MustCompile(`^([^#]+)((?:#[^#]*)*)\.(\w+)$`)

	digitRun = regexp.MustCompile(`\d+`)
)

// Fields holds the parts of a record that the folder and the prefix can
// supply. Empty strings mean "not known yet".
type Fields struct {
	Date   string
	Event  string
	Number string
}

// ParseFolder splits an event folder name like "20120204-Klopapierberg" into
// date and event.
//
// Only the last path element is expected; callers pass the basename of the
// directory.
func ParseFolder(folder string) (date, event string, err error) {
	m := folderPattern.FindStringSubmatch(folder)
	if m == nil {
		return "", "", &ParseError{
			Kind:    KindFolderPattern,
			Classes: ClassFolder,
			Input:   folder,
		}
	}
	return m[1], m[2], nil
}

// ParseFilename splits a basename into prefix, tags and suffix.
//
// Example:
//
//	prefix, tags, suffix, _ := ParseFilename("20120204-Klopapierberg-9240#Martin_Ueding.jpg")
//	// prefix = "20120204-Klopapierberg-9240"
//	// tags   = []Tag{{Text: "Martin Ueding"}}
//	// suffix = "jpg"
//
// Empty tag segments ("##") are skipped. The suffix is returned without dot.
func ParseFilename(base string) (prefix string, tags []Tag, suffix string, err error) {
	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return "", nil, "", &ParseError{
			Kind:    KindFilenamePattern,
			Classes: ClassFilename,
			Input:   base,
		}
	}

	for _, segment := range strings.Split(m[2], "#") {
		if segment == "" {
			continue
		}
		tags = append(tags, TagFromEncoded(segment))
	}

	return m[1], tags, m[3], nil
}

// DecomposePrefix fills the unset entries of f from a filename prefix.
//
// The rules are applied in order:
//
//  1. With at least three "-" separated parts, the first part is the date and
//     the inner parts form the event, each only if still unset. The last part
//     is always taken as the number.
//  2. If there is still no number, the last run of digits in the prefix is used.
//  3. If there is still no number and seq is not nil, seq.Next() is used.
//
// Fields already set (usually from the event folder) take precedence over the
// filename, because the folder is the more reliable source.
//
// If anything is still missing afterwards a *ParseError of kind
// KindPrefixIncomplete is returned with every missing field recorded. With a
// nil seq this is the only way to learn that the number is missing.
func DecomposePrefix(prefix string, f *Fields, seq *Sequence) error {
	parts := strings.Split(prefix, "-")
	if len(parts) >= 3 {
		if f.Date == "" {
			f.Date = parts[0]
		}
		if f.Event == "" {
			f.Event = strings.Join(parts[1:len(parts)-1], "-")
		}
		f.Number = parts[len(parts)-1]
	}

	if f.Number == "" {
		if runs := digitRun.FindAllString(prefix, -1); len(runs) > 0 {
			f.Number = runs[len(runs)-1]
		}
	}

	if f.Number == "" && seq != nil {
		f.Number = seq.Next()
	}

	var missing Field
	if f.Date == "" {
		missing |= FieldDate
	}
	if f.Event == "" {
		missing |= FieldEvent
	}
	if f.Number == "" {
		missing |= FieldNumber
	}
	if missing == 0 {
		return nil
	}

	classes := ClassPrefix | ClassFilename
	if missing&(FieldDate|FieldEvent) != 0 {
		classes |= ClassFolder
	}
	return &ParseError{
		Kind:    KindPrefixIncomplete,
		Classes: classes,
		Missing: missing,
		Input:   prefix,
	}
}

// SplitPath splits a slash separated path at the last "/".
//
// Unlike filepath.Split the directory has no trailing separator, except for
// the root directory itself, and is empty for a bare filename.
func SplitPath(p string) (dir, base string) {
	i := strings.LastIndexByte(p, '/')
	switch {
	case i < 0:
		return "", p
	case i == 0:
		return "/", p[1:]
	default:
		return p[:i], p[i+1:]
	}
}

// JoinPath is the inverse of SplitPath.
func JoinPath(dir, base string) string {
	switch {
	case dir == "":
		return base
	case strings.HasSuffix(dir, "/"):
		return dir + base
	default:
		return dir + "/" + base
	}
}

// lastElem returns the final element of a directory as SplitPath returns it.
func lastElem(dir string) string {
	_, base := SplitPath(dir)
	return base
}

// Parse builds an Image from an existing path.
//
// The event folder is parsed first when the path has a directory; the
// filename then fills whatever the folder could not. seq supplies numbers for
// files whose names contain none and may be shared by all files of one run.
//
// Any failure is a *ParseError whose Path is p.
func Parse(p string, seq *Sequence) (*Image, error) {
	dir, base := SplitPath(p)

	var f Fields
	if dir != "" {
		date, event, err := ParseFolder(lastElem(dir))
		if err != nil {
			return nil, withPath(err, p)
		}
		f.Date, f.Event = date, event
	}

	prefix, tags, suffix, err := ParseFilename(base)
	if err != nil {
		return nil, withPath(err, p)
	}

	if err := DecomposePrefix(prefix, &f, seq); err != nil {
		return nil, withPath(err, p)
	}

	img := &Image{
		originalPath: p,
		diskPath:     p,
		dir:          dir,
		baseName:     base,
		date:         f.Date,
		event:        f.Event,
		number:       f.Number,
		suffix:       suffix,
		tags:         NewTagSet(tags...),
		state:        StateConstructed,
	}
	return img, nil
}

func withPath(err error, p string) error {
	if pe, ok := err.(*ParseError); ok {
		pe.Path = p
	}
	return err
}
