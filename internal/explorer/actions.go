package explorer

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
)

// toggleSelected expands or collapses the selected directory.
// Selecting a file is a no-op. The numeric cursor position is kept.
func (m *Model) toggleSelected() error {
	sel := m.Selected()
	if sel == nil || !sel.IsDir {
		return nil
	}
	m.expanded.Toggle(sel.Path)
	return m.reflatten()
}

// collapseSelected collapses the selected directory if it is expanded.
func (m *Model) collapseSelected() error {
	sel := m.Selected()
	if sel == nil || !sel.IsDir || !m.expanded.Contains(sel.Path) {
		return nil
	}
	m.expanded.Remove(sel.Path)
	return m.reflatten()
}

// enterSelected makes the selected directory the new root. The ".."
// row carries the parent's path, so ascending is the same move.
// Changing root drops all expansions and rewinds the cursor.
// Reports whether the root changed.
func (m *Model) enterSelected() (bool, error) {
	sel := m.Selected()
	if sel == nil || !sel.IsDir {
		return false, nil
	}
	m.root = sel.Path
	m.expanded.Clear()
	m.cursor.Reset()
	return true, m.reflatten()
}

// updateStatus rebuilds the status line for the current selection:
// entry count on the left context, selected-file size when available.
func (m *Model) updateStatus() {
	count := fmt.Sprintf("%d entries", len(m.rows))

	sel := m.Selected()
	if sel == nil || sel.IsDir {
		m.status = count
		return
	}

	info, err := os.Stat(sel.Path)
	if err != nil || info.Size() < 0 {
		m.status = count
		return
	}
	m.status = fmt.Sprintf("%s · %s", count, humanize.IBytes(uint64(info.Size())))
}
