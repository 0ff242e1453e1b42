package model

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. A *ParseError matches every class and field sentinel that
// applies to it, so callers can test with errors.Is instead of inspecting
// the error value.
var (
	// ErrFilename matches errors about the filename part of a path.
	ErrFilename = errors.New("filename parse error")

	// ErrFolder matches errors about the event folder. Missing date and
	// event errors belong here too because the folder could have supplied them.
	ErrFolder = errors.New("folder parse error")

	// ErrPrefix matches errors from splitting the prefix into date, event and number.
	ErrPrefix = errors.New("prefix parse error")

	// ErrMissingDate is matched when no date could be found.
	ErrMissingDate = errors.New("missing date")

	// ErrMissingEvent is matched when no event could be found.
	ErrMissingEvent = errors.New("missing event")

	// ErrMissingNumber is matched when no number could be found.
	ErrMissingNumber = errors.New("missing number")

	// ErrInvalidTag is returned by ParseTag for text that cannot be a tag.
	ErrInvalidTag = errors.New("invalid tag")
)

// Kind says which step of parsing failed.
type Kind int

const (
	// KindFolderPattern means the folder name is not "<YYYYMMDD>-<event>".
	KindFolderPattern Kind = iota + 1

	// KindFilenamePattern means the basename has no discoverable suffix.
	KindFilenamePattern

	// KindPrefixIncomplete means date, event or number could not be found.
	KindPrefixIncomplete
)

func (k Kind) String() string {
	switch k {
	case KindFolderPattern:
		return "folder pattern mismatch"
	case KindFilenamePattern:
		return "filename pattern mismatch"
	case KindPrefixIncomplete:
		return "prefix incomplete"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Class is a bit set of classifications. One failure can belong to several.
type Class uint8

const (
	ClassFilename Class = 1 << iota
	ClassFolder
	ClassPrefix
)

// Field is a bit set of record fields.
type Field uint8

const (
	FieldDate Field = 1 << iota
	FieldEvent
	FieldNumber
)

func (f Field) String() string {
	var names []string
	if f&FieldDate != 0 {
		names = append(names, "date")
	}
	if f&FieldEvent != 0 {
		names = append(names, "event")
	}
	if f&FieldNumber != 0 {
		names = append(names, "number")
	}
	return strings.Join(names, ", ")
}

// ParseError describes why a path could not be turned into an Image.
type ParseError struct {
	Kind    Kind
	Classes Class
	// Missing is only set for KindPrefixIncomplete.
	Missing Field
	// Path is the full path being parsed, if known.
	Path string
	// Input is the part that failed: folder name, basename or prefix.
	Input string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Missing != 0 {
		b.WriteString(" (missing ")
		b.WriteString(e.Missing.String())
		b.WriteString(")")
	}
	fmt.Fprintf(&b, ": could not parse %q", e.Input)
	if e.Path != "" && e.Path != e.Input {
		fmt.Fprintf(&b, " in %q", e.Path)
	}
	return b.String()
}

// Has reports whether the error carries classification c.
func (e *ParseError) Has(c Class) bool {
	return e.Classes&c == c
}

// IsMissing reports whether field f could not be determined.
func (e *ParseError) IsMissing(f Field) bool {
	return e.Missing&f == f
}

// Is lets errors.Is match the class and field sentinels.
func (e *ParseError) Is(target error) bool {
	switch target {
	case ErrFilename:
		return e.Has(ClassFilename)
	case ErrFolder:
		return e.Has(ClassFolder)
	case ErrPrefix:
		return e.Has(ClassPrefix)
	case ErrMissingDate:
		return e.IsMissing(FieldDate)
	case ErrMissingEvent:
		return e.IsMissing(FieldEvent)
	case ErrMissingNumber:
		return e.IsMissing(FieldNumber)
	}
	return false
}
