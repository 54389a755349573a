package explorer

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// Entry is one directory entry as reported by a DirLister.
type Entry struct {
	Name  string
	IsDir bool
}

// ErrAccessDenied is returned by a DirLister when the directory exists
// but cannot be read. It is the only listing error the explorer
// recovers from; anything else is treated as fatal.
var ErrAccessDenied = errors.New("access denied")

// DirLister lists the entries of a directory, in no particular order;
// the flattener imposes the display ordering.
type DirLister interface {
	List(path string) ([]Entry, error)
}

// FSLister reads directories from the local filesystem.
type FSLister struct {
	ShowHidden bool
}

func (l FSLister) List(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, ErrAccessDenied
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		if !l.ShowHidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		entries = append(entries, Entry{Name: e.Name(), IsDir: e.IsDir()})
	}

	return entries, nil
}

// SortEntries orders entries directories-first, then case-insensitively
// by name, with the raw name as a tie-break so the order is total.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})
}
