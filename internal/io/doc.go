// Package ioutils provides file system utilities.
//
// # Moving Files
//
// Renames in a picture collection must never replace another picture, so all
// moves go through MoveNoClobber:
//
//	err := ioutils.MoveNoClobber("20120204-Party/IMG_0042.jpg", "20120204-Party/20120204-Party-42.jpg")
//	if errors.Is(err, ioutils.ErrExists) {
//	    // the target is taken
//	}
//
// # Temporary Names
//
// A batch rename first parks every file under a random name:
//
//	tmp := ioutils.TempPath("20120204-Party") // "20120204-Party/<uuid>.picturedb-tmp"
//
// # Writing Files
//
//	err := ioutils.EnsureDir("/home/me/.config/picturedb")
//	err = ioutils.WriteFile("/home/me/.config/picturedb/settings.json", data)
package ioutils
