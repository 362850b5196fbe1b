package catalog

import (
	"os"
	"time"
)

// DirEntry is one immediate child of a listed directory.
type DirEntry struct {
	Name    string
	Dir     bool
	ModTime time.Time
}

// Lister abstracts directory listing so the scanner can be pointed at a
// network share in production and a fixture tree in tests. Implementations
// must return an error rather than panic on unreachable paths.
type Lister interface {
	List(path string) ([]DirEntry, error)
}

type osLister struct{}

func (osLister) List(path string) ([]DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		de := DirEntry{Name: e.Name(), Dir: e.IsDir()}
		if info, err := e.Info(); err == nil {
			de.ModTime = info.ModTime()
		}
		out = append(out, de)
	}
	return out, nil
}
