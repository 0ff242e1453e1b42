package metadata

import (
	"fmt"
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// CaptureTime returns the EXIF capture time of a picture (DateTimeOriginal,
// falling back to DateTime). Files without EXIF data return an error.
func CaptureTime(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("reading EXIF of %s: %w", path, err)
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("capture time of %s: %w", path, err)
	}
	return t, nil
}
