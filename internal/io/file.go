// Package ioutils provides the file system operations of picturedb.
//
// This package contains functions for:
//   - Moving files without overwriting an existing target
//   - Random temporary names next to a file
//   - Existence checks
//   - Atomic file writing and directory creation
package ioutils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"
)

// TempSuffix marks files that are in the middle of a batch rename.
const TempSuffix = ".picturedb-tmp"

// ErrExists is returned by MoveNoClobber when the target already exists.
var ErrExists = fs.ErrExist

// Exists reports whether something is at path. Errors other than "does not
// exist" count as existing, so callers never overwrite what they cannot see.
//
// Example:
//
//	if Exists("20120204-Party/20120204-Party-1.jpg") {
//	    // pick another number
//	}
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// TempPath returns a random, unused-looking name in dir:
//
//	TempPath("20120204-Party") // "20120204-Party/3f0c...-....picturedb-tmp"
//
// An empty dir yields a bare filename.
func TempPath(dir string) string {
	name := uuid.NewString() + TempSuffix
	switch dir {
	case "":
		return name
	case "/":
		return "/" + name
	default:
		return dir + "/" + name
	}
}

// MoveNoClobber renames src to dst and fails with ErrExists instead of
// replacing an existing dst.
//
// It hard-links dst to src and removes src afterwards, which fails atomically
// when dst exists. File systems without hard links fall back to a check
// followed by os.Rename.
func MoveNoClobber(src, dst string) error {
	if src == dst {
		return nil
	}

	err := os.Link(src, dst)
	switch {
	case err == nil:
		if err := os.Remove(src); err != nil {
			return fmt.Errorf("removing %s after linking to %s: %w", src, dst, err)
		}
		return nil
	case errors.Is(err, fs.ErrExist):
		return &os.LinkError{Op: "move", Old: src, New: dst, Err: ErrExists}
	case !linkUnsupported(err):
		return fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}

	if Exists(dst) {
		return &os.LinkError{Op: "move", Old: src, New: dst, Err: ErrExists}
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}
	return nil
}

// linkUnsupported reports whether os.Link failed because the file system
// cannot link, as opposed to a problem with the paths.
func linkUnsupported(err error) bool {
	return errors.Is(err, syscall.EPERM) ||
		errors.Is(err, syscall.ENOTSUP) ||
		errors.Is(err, syscall.EOPNOTSUPP) ||
		errors.Is(err, syscall.EMLINK) ||
		errors.Is(err, syscall.EXDEV)
}

// WriteFile writes data to path through a temporary file in the same
// directory, so readers never see a partially written file.
//
// Example:
//
//	err := WriteFile("/home/me/.config/picturedb/settings.json", data)
func WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".picturedb-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
