package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func mustParse(t *testing.T, p string) *Image {
	t.Helper()
	img, err := Parse(p, NewSequence(1))
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", p, err)
	}
	return img
}

func TestImage_AddTag(t *testing.T) {
	img := mustParse(t, "20120204-Klopapierberg/20120204-Klopapierberg-9240.jpg")

	img.AddTag(NewTag("Martin Ueding"))
	img.AddTag(NewTag("Another Tag"))

	want := "20120204-Klopapierberg/20120204-Klopapierberg-9240#Another_Tag#Martin_Ueding.jpg"
	if got := img.CurrentPath(); got != want {
		t.Errorf("CurrentPath() = %q, want %q", got, want)
	}
	if img.State() != StateDirty {
		t.Errorf("State() = %v, want %v", img.State(), StateDirty)
	}
	if !img.NameChanged() {
		t.Error("NameChanged() = false after adding tags")
	}
	if img.DiskPath() != img.OriginalPath() {
		t.Error("DiskPath() changed without a move")
	}
}

func TestImage_NoOpMutationsKeepState(t *testing.T) {
	img := mustParse(t, "20120204-Klopapierberg-9240#a.jpg")

	img.AddTag(NewTag("a"))
	img.RemoveTag(NewTag("missing"))
	img.SetNumber("9240")

	if img.State() != StateConstructed {
		t.Errorf("State() = %v, want %v", img.State(), StateConstructed)
	}
	if img.NameChanged() {
		t.Error("NameChanged() = true after no-op mutations")
	}
}

func TestImage_RemoveTag(t *testing.T) {
	img := mustParse(t, "20120204-Klopapierberg-9240#a#b.jpg")

	img.RemoveTag(NewTag("a"))

	if img.HasTag(NewTag("a")) {
		t.Error("tag still present after RemoveTag")
	}
	if got, want := img.CurrentPath(), "20120204-Klopapierberg-9240#b.jpg"; got != want {
		t.Errorf("CurrentPath() = %q, want %q", got, want)
	}
	if img.State() != StateDirty {
		t.Errorf("State() = %v, want %v", img.State(), StateDirty)
	}
}

func TestImage_IncrementNumber(t *testing.T) {
	tests := []struct {
		number  string
		want    string
		wantErr bool
	}{
		{"1", "2", false},
		{"9", "10", false},
		{"0042", "43", false},
		{"abc", "abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			img := mustParse(t, "20120204-E-1.jpg")
			img.SetNumber(tt.number)

			err := img.IncrementNumber()
			if (err != nil) != tt.wantErr {
				t.Fatalf("IncrementNumber() error = %v, wantErr %v", err, tt.wantErr)
			}
			if img.Number() != tt.want {
				t.Errorf("Number() = %q, want %q", img.Number(), tt.want)
			}
		})
	}
}

func TestImage_Metadata(t *testing.T) {
	img := mustParse(t, "20120204-E-1#file_tag.jpg")

	if img.MetadataTracked() || img.MetadataChanged() {
		t.Fatal("fresh image should not track metadata")
	}

	if err := img.MergeKeywords([]string{"meta tag"}); err != nil {
		t.Fatalf("MergeKeywords: %v", err)
	}

	if img.State() != StateConstructed {
		t.Errorf("MergeKeywords changed state to %v", img.State())
	}
	if !img.HasTag(NewTag("meta tag")) {
		t.Error("keyword was not merged into tags")
	}
	if !img.MetadataChanged() {
		t.Error("file tag missing from metadata should count as a change")
	}
	if !img.NameChanged() {
		t.Error("merged keyword missing from name should count as a change")
	}

	img.MarkSynced(img.Keywords())
	if img.MetadataChanged() {
		t.Errorf("MetadataChanged() = true after sync, known = %v", img.KnownKeywords())
	}

	img.MarkMoved(img.CurrentPath())
	if !img.MarkSaved() {
		t.Fatal("MarkSaved() = false with disk and metadata in sync")
	}
	if img.State() != StateSaved {
		t.Errorf("State() = %v, want %v", img.State(), StateSaved)
	}

	img.AddTag(NewTag("later"))
	if img.State() != StateDirty {
		t.Errorf("State() = %v after edit of saved image, want %v", img.State(), StateDirty)
	}
	if img.MarkSaved() {
		t.Error("MarkSaved() = true with pending changes")
	}
}

func TestImage_MetadataOrderIgnored(t *testing.T) {
	img := mustParse(t, "20120204-E-1#a#b.jpg")
	if err := img.MergeKeywords([]string{"b", "a"}); err != nil {
		t.Fatalf("MergeKeywords: %v", err)
	}

	if img.MetadataChanged() {
		t.Error("keyword order should not count as a change")
	}
	if want := []string{"a", "b"}; !slices.Equal(img.Keywords(), want) {
		t.Errorf("Keywords() = %v, want %v", img.Keywords(), want)
	}
}

func TestRenumber(t *testing.T) {
	tests := []struct {
		count int
		first string
		last  string
	}{
		{1, "1", "1"},
		{3, "1", "3"},
		{9, "1", "9"},
		{12, "01", "12"},
		{100, "001", "100"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.count), func(t *testing.T) {
			images := make([]*Image, tt.count)
			for i := range images {
				images[i] = mustParse(t, fmt.Sprintf("20120204-E/%d.jpg", 1000+i))
			}

			Renumber(images)

			if got := images[0].Number(); got != tt.first {
				t.Errorf("first number = %q, want %q", got, tt.first)
			}
			if got := images[len(images)-1].Number(); got != tt.last {
				t.Errorf("last number = %q, want %q", got, tt.last)
			}
			for _, img := range images {
				if img.State() != StateDirty {
					t.Errorf("%s: State() = %v, want %v", img, img.State(), StateDirty)
				}
			}
		})
	}
}

func TestRenumber_Scenario(t *testing.T) {
	images := []*Image{
		mustParse(t, "20120204-E/20120204-E-0.jpg"),
		mustParse(t, "20120204-E/20120204-E-1.jpg"),
		mustParse(t, "20120204-E/20120204-E-2.jpg"),
	}

	Renumber(images)

	want := []string{
		"20120204-E/20120204-E-1.jpg",
		"20120204-E/20120204-E-2.jpg",
		"20120204-E/20120204-E-3.jpg",
	}
	for i, img := range images {
		if got := img.CurrentPath(); got != want[i] {
			t.Errorf("images[%d].CurrentPath() = %q, want %q", i, got, want[i])
		}
	}
}

func TestImage_MergeKeywordsRejectsInvalidTags(t *testing.T) {
	img := mustParse(t, "20120204-E/1.jpg")

	err := img.MergeKeywords([]string{"AC/DC", "x#y", "Beach"})
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("MergeKeywords error = %v, want ErrInvalidTag", err)
	}
	if !strings.Contains(err.Error(), "AC/DC") || !strings.Contains(err.Error(), "x#y") {
		t.Errorf("error %q does not name the invalid keywords", err)
	}

	if got, want := img.CurrentPath(), "20120204-E/20120204-E-1#Beach.jpg"; got != want {
		t.Errorf("CurrentPath() = %q, want %q", got, want)
	}
	if want := []string{"AC/DC", "Beach", "x#y"}; !slices.Equal(img.Keywords(), want) {
		t.Errorf("Keywords() = %q, want %q", img.Keywords(), want)
	}
	if img.MetadataChanged() {
		t.Error("invalid keywords kept in metadata should not count as a change")
	}
}

func TestImage_ZeroValueAddTag(t *testing.T) {
	var img Image
	img.AddTag(NewTag("a"))
	if !img.HasTag(NewTag("a")) {
		t.Error("tag not added to zero Image")
	}
	img.RemoveTag(NewTag("a"))
	if img.HasTag(NewTag("a")) {
		t.Error("tag not removed")
	}
}

func TestImage_Clone(t *testing.T) {
	img := mustParse(t, "20120204-E-1#a.jpg")
	c := img.Clone()

	c.AddTag(NewTag("b"))
	if err := c.IncrementNumber(); err != nil {
		t.Fatal(err)
	}
	if img.HasTag(NewTag("b")) || img.Number() != "1" {
		t.Errorf("Clone shares state with the original: %v", img)
	}
	if img.State() != StateConstructed {
		t.Errorf("original State() = %v", img.State())
	}
}
