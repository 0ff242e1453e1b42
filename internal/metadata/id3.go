package metadata

import (
	"fmt"
	"strings"

	"github.com/bogem/id3v2"
)

// id3KeywordsDescription names the TXXX frame that holds the keyword list.
const id3KeywordsDescription = "Keywords"

// id3Separator joins keywords inside the single TXXX value. A keyword that
// contains it comes back split on the next read.
const id3Separator = ";"

// ID3Store keeps the keyword list of MP3 files in a user defined text
// (TXXX) frame with the description "Keywords".
//
// Other TXXX frames are left untouched. Files without an ID3 tag get a new
// one on the first Write.
//
// Example:
//
//	store := NewID3Store()
//	err := store.Write("20120204-Party/20120204-Party-7.mp3", []string{"Live", "Martin Ueding"})
type ID3Store struct{}

// NewID3Store returns an ID3Store.
func NewID3Store() *ID3Store {
	return &ID3Store{}
}

// Read returns the keywords from the TXXX "Keywords" frame.
func (s *ID3Store) Read(path string) ([]string, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, fmt.Errorf("opening ID3 tag of %s: %w", path, err)
	}
	defer tag.Close()

	frame, ok := findKeywordsFrame(tag)
	if !ok {
		return nil, ErrNotFound
	}
	if frame.Value == "" {
		return []string{}, nil
	}
	return strings.Split(frame.Value, id3Separator), nil
}

// Write replaces the keyword frame. An empty list removes it.
func (s *ID3Store) Write(path string, keywords []string) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("opening ID3 tag of %s: %w", path, err)
	}
	defer tag.Close()

	// DeleteFrames works on frame IDs, so all TXXX frames are removed and the
	// unrelated ones are added back.
	others := otherUserFrames(tag)
	tag.DeleteFrames("TXXX")
	for _, f := range others {
		tag.AddUserDefinedTextFrame(f)
	}

	if len(keywords) > 0 {
		tag.AddUserDefinedTextFrame(id3v2.UserDefinedTextFrame{
			Encoding:    id3v2.EncodingUTF8,
			Description: id3KeywordsDescription,
			Value:       strings.Join(keywords, id3Separator),
		})
	}

	if err := tag.Save(); err != nil {
		return fmt.Errorf("saving ID3 tag of %s: %w", path, err)
	}
	return nil
}

func findKeywordsFrame(tag *id3v2.Tag) (id3v2.UserDefinedTextFrame, bool) {
	for _, f := range tag.GetFrames("TXXX") {
		udf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udf.Description == id3KeywordsDescription {
			return udf, true
		}
	}
	return id3v2.UserDefinedTextFrame{}, false
}

func otherUserFrames(tag *id3v2.Tag) []id3v2.UserDefinedTextFrame {
	var frames []id3v2.UserDefinedTextFrame
	for _, f := range tag.GetFrames("TXXX") {
		udf, ok := f.(id3v2.UserDefinedTextFrame)
		if ok && udf.Description != id3KeywordsDescription {
			frames = append(frames, udf)
		}
	}
	return frames
}
