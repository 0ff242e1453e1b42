package metadata

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotFound means the file has no keyword list yet.
	ErrNotFound = errors.New("no keyword list recorded")

	// ErrUnsupported means no backend handles this file type.
	ErrUnsupported = errors.New("metadata not supported for file type")
)

// Store reads and writes the keyword list of a file.
//
// Read returns ErrNotFound when the file carries no keyword list and
// ErrUnsupported when the store cannot handle the file at all. Write replaces
// the complete list; an empty list removes it.
type Store interface {
	Read(path string) ([]string, error)
	Write(path string, keywords []string) error
}

// Mover is implemented by stores that key keyword lists by path instead of
// keeping them inside the file. The organizer calls Move after every rename.
type Mover interface {
	Move(from, to string)
}

// StillExtensions are the picture formats handled through exiftool.
var StillExtensions = []string{"jpg", "jpeg", "tif", "tiff", "png", "heic"}

// Router dispatches to a Store by lower-cased file extension.
type Router struct {
	stores map[string]Store
}

// NewRouter returns a Router without any backends. Every call on it returns
// ErrUnsupported until stores are registered with Handle.
func NewRouter() *Router {
	return &Router{stores: make(map[string]Store)}
}

// Handle registers s for the given extensions (without dot, any case).
func (r *Router) Handle(s Store, extensions ...string) {
	for _, ext := range extensions {
		r.stores[strings.ToLower(strings.TrimPrefix(ext, "."))] = s
	}
}

// Supports reports whether a store is registered for path.
func (r *Router) Supports(path string) bool {
	_, ok := r.stores[extension(path)]
	return ok
}

func (r *Router) Read(path string) ([]string, error) {
	s, ok := r.stores[extension(path)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	return s.Read(path)
}

func (r *Router) Write(path string, keywords []string) error {
	s, ok := r.stores[extension(path)]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupported, path)
	}
	return s.Write(path, keywords)
}

// Move forwards to the store of from if it implements Mover.
func (r *Router) Move(from, to string) {
	if m, ok := r.stores[extension(from)].(Mover); ok {
		m.Move(from, to)
	}
}

// Close closes every registered store that implements io.Closer, once.
func (r *Router) Close() error {
	seen := make(map[io.Closer]bool)
	var errs []error
	for _, s := range r.stores {
		c, ok := s.(io.Closer)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// extension returns the lower-cased extension of the final path element.
func extension(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}
