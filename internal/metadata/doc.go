// Package metadata reads and writes the keyword list embedded in picture
// files.
//
// Filenames carry tags as "#tag" segments; the same tags are mirrored into a
// keyword list inside the file so that other photo software sees them. A
// Store abstracts where that list lives:
//
//   - ExifTool keeps one exiftool process open and uses the IPTC Keywords
//     field of JPEG, TIFF, PNG and HEIC files.
//   - ID3Store uses a TXXX "Keywords" frame of MP3 files.
//   - Memory keeps keyword lists in a map and serves tests and dry runs.
//
// A Router picks the store by file extension:
//
//	et, err := metadata.NewExifTool("exiftool", logger)
//	if err != nil {
//	    return err
//	}
//	defer et.Close()
//
//	store := metadata.NewRouter()
//	store.Handle(et, metadata.StillExtensions...)
//	store.Handle(metadata.NewID3Store(), "mp3")
//
//	keywords, err := store.Read("20120204-Party/20120204-Party-1.jpg")
//
// CaptureTime reads the EXIF capture time, which the organizer uses to order
// pictures before renumbering.
package metadata
