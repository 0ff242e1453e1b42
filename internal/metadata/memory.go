package metadata

import (
	"slices"
	"sync"
)

// Memory is a Store backed by a map keyed by path. It implements Mover so the
// keyword list follows renames done by the organizer.
type Memory struct {
	mu       sync.Mutex
	keywords map[string][]string
	// Fail makes Write return the error for the given path.
	Fail map[string]error
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{
		keywords: make(map[string][]string),
		Fail:     make(map[string]error),
	}
}

// Set stores keywords for path as if the file had been tagged by another program.
func (m *Memory) Set(path string, keywords []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keywords[path] = slices.Clone(keywords)
}

// Move transfers the keyword list from one path to another.
func (m *Memory) Move(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if k, ok := m.keywords[from]; ok {
		delete(m.keywords, from)
		m.keywords[to] = k
	}
}

func (m *Memory) Read(path string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k, ok := m.keywords[path]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(k), nil
}

func (m *Memory) Write(path string, keywords []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.Fail[path]; err != nil {
		return err
	}
	if len(keywords) == 0 {
		delete(m.keywords, path)
		return nil
	}
	m.keywords[path] = slices.Clone(keywords)
	return nil
}
