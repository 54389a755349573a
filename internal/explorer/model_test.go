package explorer

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, lister DirLister) Model {
	t.Helper()
	m, err := New("/root", lister)
	require.NoError(t, err)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func press(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func checkInvariants(t *testing.T, m Model) {
	t.Helper()
	pos, offset := m.cursor.Pos(), m.cursor.Offset()
	if len(m.rows) == 0 {
		assert.Zero(t, pos)
		assert.Zero(t, offset)
		return
	}
	assert.GreaterOrEqual(t, pos, 0)
	assert.LessOrEqual(t, pos, len(m.rows)-1)
	assert.GreaterOrEqual(t, offset, 0)
	assert.LessOrEqual(t, offset, pos)
	assert.Less(t, pos, offset+m.listHeight())
}

func TestNew_InitialState(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	assert.Equal(t, "/root", m.Root())
	assert.Len(t, m.Rows(), 5)
	assert.Equal(t, 0, m.cursor.Pos())
	assert.NoError(t, m.Err())
	require.NotNil(t, m.Selected())
	assert.Equal(t, "/", m.Selected().Path)
}

func TestUpdate_MoveDownClampsAtBottom(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	// Pressing down more times than there are rows never overruns.
	for range len(m.Rows()) {
		m, _ = m.Update(press("down"))
		checkInvariants(t, m)
	}
	assert.Equal(t, len(m.Rows())-1, m.cursor.Pos())

	m, _ = m.Update(press("up"))
	assert.Equal(t, len(m.Rows())-2, m.cursor.Pos())
}

func TestUpdate_MoveUpClampsAtTop(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m, _ = m.Update(press("up"))
	assert.Equal(t, 0, m.cursor.Pos())
	checkInvariants(t, m)
}

func TestUpdate_TogglePreservesNumericSelection(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m, _ = m.Update(press("down"))
	m, _ = m.Update(press("down")) // dir2
	require.Equal(t, "/root/dir2", m.Selected().Path)

	m, _ = m.Update(press("right"))
	assert.Len(t, m.Rows(), 6, "expanding dir2 adds c.txt")
	// Numeric position is kept, not tracked by path.
	assert.Equal(t, 2, m.cursor.Pos())
	assert.True(t, m.expanded.Contains("/root/dir2"))

	m, _ = m.Update(press("right"))
	assert.Len(t, m.Rows(), 5)
	assert.False(t, m.expanded.Contains("/root/dir2"))
	checkInvariants(t, m)
}

func TestUpdate_ToggleOnFileIsNoOp(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m.SelectPath("/root/a.txt")
	m, _ = m.Update(press("right"))

	assert.Len(t, m.Rows(), 5)
	assert.Zero(t, m.expanded.Len())
}

func TestUpdate_CollapseOnlyWhenExpanded(t *testing.T) {
	m := newTestModel(t, newScenarioLister())
	m.SelectPath("/root/dir2")

	// Collapse on an already-collapsed dir: nothing happens.
	m, _ = m.Update(press("left"))
	assert.Len(t, m.Rows(), 5)

	m, _ = m.Update(press("right"))
	require.Len(t, m.Rows(), 6)

	m, _ = m.Update(press("left"))
	assert.Len(t, m.Rows(), 5)
	assert.False(t, m.expanded.Contains("/root/dir2"))
}

func TestUpdate_EnterOnParentLink(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	// Expand something first to verify the expansion set is dropped.
	m.SelectPath("/root/dir2")
	m, _ = m.Update(press("right"))
	require.Equal(t, 1, m.expanded.Len())

	m.SelectPath("/")
	m, _ = m.Update(press("enter"))

	assert.Equal(t, "/", m.Root())
	assert.Zero(t, m.expanded.Len(), "ascending clears expansions")
	assert.Equal(t, 0, m.cursor.Pos())
	assert.Equal(t, 0, m.cursor.Offset())
	// "/" has no parent, so no ".." row.
	require.Len(t, m.Rows(), 1)
	assert.Equal(t, "/root", m.Rows()[0].Path)
}

func TestUpdate_EnterOnDirectory(t *testing.T) {
	m := newTestModel(t, newScenarioLister())
	m.SelectPath("/root/dir2")

	m, _ = m.Update(press("enter"))

	assert.Equal(t, "/root/dir2", m.Root())
	assert.Equal(t, 0, m.cursor.Pos())
	require.Len(t, m.Rows(), 2) // ".." and c.txt
	assert.Equal(t, "/root", m.Rows()[0].Path)
	assert.Equal(t, "/root/dir2/c.txt", m.Rows()[1].Path)
}

func TestUpdate_EnterOnFileIsNoOp(t *testing.T) {
	m := newTestModel(t, newScenarioLister())
	m.SelectPath("/root/a.txt")
	posBefore := m.cursor.Pos()

	m, _ = m.Update(press("enter"))

	assert.Equal(t, "/root", m.Root())
	assert.Equal(t, posBefore, m.cursor.Pos())
	assert.Len(t, m.Rows(), 5)
}

func TestUpdate_SelectionClampedWhenRowsShrink(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m.SelectPath("/root/dir2")
	m, _ = m.Update(press("right"))
	m, _ = m.Update(press("G"))
	require.Equal(t, 5, m.cursor.Pos())

	// Collapse underneath the selection via the expansion set; the
	// recomputed sequence is shorter and the cursor is pulled back in.
	m.expanded.Remove("/root/dir2")
	require.NoError(t, m.reflatten())

	assert.Equal(t, 4, m.cursor.Pos())
	checkInvariants(t, m)
}

func TestUpdate_JumpAndPageKeys(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m, _ = m.Update(press("G"))
	assert.Equal(t, 4, m.cursor.Pos())
	checkInvariants(t, m)

	m, _ = m.Update(press("g"))
	assert.Equal(t, 0, m.cursor.Pos())

	m, _ = m.Update(press("pgdown"))
	checkInvariants(t, m)
	m, _ = m.Update(press("pgup"))
	assert.Equal(t, 0, m.cursor.Pos())
	checkInvariants(t, m)
}

func TestUpdate_QuitEmitsQuit(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	_, cmd := m.Update(press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_NavigationChangedMsg(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m, cmd := m.Update(press("down"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(NavigationChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "/root", msg.Root)
	assert.Equal(t, "/root/dir1", msg.SelectedPath)
	assert.Equal(t, m.SelectedPath(), msg.SelectedPath)
}

func TestUpdate_FatalListingFault(t *testing.T) {
	lister := newScenarioLister()
	m := newTestModel(t, lister)
	m.SelectPath("/root/dir2")

	// The directory vanishes between render and toggle.
	lister.failOn = "/root/dir2"
	lister.failErr = errors.New("stale handle")

	m, cmd := m.Update(press("right"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.ErrorContains(t, m.Err(), "stale handle")
}

func TestUpdate_AccessDeniedIsNotFatal(t *testing.T) {
	lister := newScenarioLister()
	lister.denied["/root/dir2"] = true
	m := newTestModel(t, lister)

	m.SelectPath("/root/dir2")
	m, cmd := m.Update(press("right"))

	assert.NoError(t, m.Err())
	require.NotNil(t, cmd, "still a navigation change")
	assert.Len(t, m.Rows(), 5, "denied dir never gains child rows")
	checkInvariants(t, m)
}

func TestSelectPath(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	m.SelectPath("/root/a.txt")
	assert.Equal(t, 3, m.cursor.Pos())

	// Unknown paths leave the selection alone.
	m.SelectPath("/root/missing.txt")
	assert.Equal(t, 3, m.cursor.Pos())
}

func TestUpdate_BoundsInvariantSweep(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	keys := []string{
		"down", "down", "right", "down", "down", "G", "right", "left",
		"up", "enter", "down", "right", "g", "pgdown", "pgup", "enter",
		"down", "down", "down", "down", "down", "up", "right", "G",
	}
	for _, k := range keys {
		m, _ = m.Update(press(k))
		require.NoError(t, m.Err())
		checkInvariants(t, m)
	}
}

func TestView_Smoke(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	view := m.View()
	assert.Contains(t, view, "a.txt")
	assert.Contains(t, view, "dir2")
	assert.Equal(t, 24, strings.Count(view, "\n")+1, "frame height matches viewport")
}

func TestView_HelpToggle(t *testing.T) {
	m := newTestModel(t, newScenarioLister())

	assert.Contains(t, m.View(), "entries")

	m, _ = m.Update(press("?"))
	assert.True(t, m.showHelp)
	assert.NotContains(t, m.View(), "entries")
}
