// Package explorer implements the interactive file-tree view: a lazily
// expanded directory outline with cursor navigation, expansion
// toggling, and root descent/ascent.
package explorer

import (
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"

	"github.com/llehouerou/arbor/internal/keymap"
	"github.com/llehouerou/arbor/internal/ui"
	"github.com/llehouerou/arbor/internal/ui/cursor"
)

// Model is the explorer state: the current root, the expansion set,
// the flattened rows derived from both, and the cursor into the rows.
// Rows are recomputed wholesale whenever the root or the expansion set
// changes; nothing is patched in place.
type Model struct {
	root     string
	lister   DirLister
	expanded *Expansion
	rows     []Row
	cursor   cursor.Cursor

	keys     keymap.KeyMap
	help     help.Model
	showHelp bool
	status   string

	width  int
	height int

	err error // fatal listing fault; the program quits on it
}

// New creates an explorer rooted at startPath.
func New(startPath string, lister DirLister) (Model, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		root:     abs,
		lister:   lister,
		expanded: NewExpansion(),
		cursor:   cursor.New(0),
		keys:     keymap.Default(),
		help:     help.New(),
	}

	if err := m.reflatten(); err != nil {
		return Model{}, err
	}
	m.updateStatus()

	return m, nil
}

// reflatten recomputes the rows and re-establishes the cursor
// invariants against the new sequence. The numeric selection is kept;
// after a collapse it may land on a different row, which is accepted.
func (m *Model) reflatten() error {
	rows, err := Flatten(m.root, m.expanded, m.lister)
	if err != nil {
		return err
	}
	m.rows = rows
	m.cursor.ClampToBounds(len(m.rows))
	m.cursor.EnsureVisible(len(m.rows), m.listHeight())
	return nil
}

// listHeight is the page size: visible tree rows for the current
// viewport.
func (m Model) listHeight() int {
	return max(m.height-ui.PanelOverhead, 1)
}

// Root returns the current tree root.
func (m Model) Root() string {
	return m.root
}

// Rows returns the current flattened sequence.
func (m Model) Rows() []Row {
	return m.rows
}

// Selected returns the row under the cursor, or nil for an empty tree.
func (m Model) Selected() *Row {
	if len(m.rows) == 0 {
		return nil
	}
	return &m.rows[m.cursor.Pos()]
}

// SelectedPath returns the path of the selected row, or empty.
func (m Model) SelectedPath() string {
	if sel := m.Selected(); sel != nil {
		return sel.Path
	}
	return ""
}

// SelectPath moves the cursor to the row with the given path. The
// selection stays put when the path is not visible.
func (m *Model) SelectPath(path string) {
	if path == "" {
		return
	}
	for i := range m.rows {
		if m.rows[i].Path == path {
			m.cursor.Jump(i, len(m.rows), m.listHeight())
			m.updateStatus()
			return
		}
	}
}

// SetSize updates the viewport dimensions and keeps the selection
// visible under the new page size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = max(width-ui.BorderHeight, 0)
	m.cursor.EnsureVisible(len(m.rows), m.listHeight())
}

// Err returns the fatal listing fault that stopped the explorer, if
// any.
func (m Model) Err() error {
	return m.err
}
