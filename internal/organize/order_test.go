package organize

import (
	"context"
	"encoding/binary"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/handiism/picturedb/internal/model"
)

func numbers(images []*model.Image) []string {
	out := make([]string, len(images))
	for i, img := range images {
		out[i] = img.Number()
	}
	return out
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input   string
		want    OrderBy
		wantErr bool
	}{
		{"number", ByNumber, false},
		{"", ByNumber, false},
		{"path", ByPath, false},
		{"taken", ByTaken, false},
		{"random", ByNumber, true},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOrder(%q) = %v, %v, want %v, wantErr %v", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestOrder_ByNumber(t *testing.T) {
	org, _, _ := newTestOrganizer(t, nil)
	var images []*model.Image
	for _, p := range []string{
		"20120204-E/20120204-E-10.jpg",
		"20120204-E/20120204-E-9.jpg",
		"20120204-E/20120204-E-abc.jpg",
		"20120204-E/20120204-E-02.jpg",
	} {
		img, err := model.Parse(p, nil)
		if err != nil {
			t.Fatal(err)
		}
		images = append(images, img)
	}

	if err := org.Order(context.Background(), images, ByNumber); err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"02", "9", "10", "abc"}
	if got := numbers(images); !slices.Equal(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}
}

func TestOrder_ByPath(t *testing.T) {
	org, _, _ := newTestOrganizer(t, nil)
	var images []*model.Image
	for _, p := range []string{"20120204-E/c_3.jpg", "20120204-E/a_9.jpg", "20120204-E/b_1.jpg"} {
		img, err := model.Parse(p, nil)
		if err != nil {
			t.Fatal(err)
		}
		images = append(images, img)
	}

	if err := org.Order(context.Background(), images, ByPath); err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"9", "1", "3"}
	if got := numbers(images); !slices.Equal(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}
}

// exifJPEG returns a minimal JPEG whose EXIF block holds only DateTime.
func exifJPEG(dt string) []byte {
	value := append([]byte(dt), 0)

	tiff := []byte("II*\x00")
	tiff = binary.LittleEndian.AppendUint32(tiff, 8)
	tiff = binary.LittleEndian.AppendUint16(tiff, 1)
	tiff = binary.LittleEndian.AppendUint16(tiff, 0x0132)
	tiff = binary.LittleEndian.AppendUint16(tiff, 2)
	tiff = binary.LittleEndian.AppendUint32(tiff, uint32(len(value)))
	tiff = binary.LittleEndian.AppendUint32(tiff, 26)
	tiff = binary.LittleEndian.AppendUint32(tiff, 0)
	tiff = append(tiff, value...)

	payload := append([]byte("Exif\x00\x00"), tiff...)
	out := []byte{0xFF, 0xD8, 0xFF, 0xE1}
	out = binary.BigEndian.AppendUint16(out, uint16(len(payload)+2))
	out = append(out, payload...)
	return append(out, 0xFF, 0xD9)
}

func TestOrder_ByTaken(t *testing.T) {
	org, _, rec := newTestOrganizer(t, nil)
	dir := eventDir(t, "20120204-E")

	files := []struct {
		name string
		data []byte
	}{
		{"a_1.jpg", exifJPEG("2012:02:04 18:00:00")},
		{"b_2.jpg", []byte("no exif here")},
		{"c_3.jpg", exifJPEG("2012:02:04 09:30:00")},
		{"d_4.jpg", exifJPEG("2012:02:04 12:00:00")},
	}
	var images []*model.Image
	for _, f := range files {
		p := filepath.Join(dir, f.name)
		touch(t, p, string(f.data))
		img, err := org.Open(p, nil)
		if err != nil {
			t.Fatal(err)
		}
		images = append(images, img)
	}

	if err := org.Order(context.Background(), images, ByTaken); err != nil {
		t.Fatalf("Order: %v", err)
	}
	want := []string{"3", "4", "1", "2"}
	if got := numbers(images); !slices.Equal(got, want) {
		t.Errorf("order = %q, want %q", got, want)
	}
	if rec.count(LevelWarning) != 1 {
		t.Errorf("got %d warnings, want 1 for the file without EXIF", rec.count(LevelWarning))
	}
}

func TestOrder_ByTakenCancelled(t *testing.T) {
	org, _, _ := newTestOrganizer(t, nil)
	img, err := model.Parse("20120204-E/1.jpg", nil)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = org.Order(ctx, []*model.Image{img}, ByTaken)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
