package explorer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigationChangedMsg is sent when the root or selection changes.
type NavigationChangedMsg struct {
	Root         string
	SelectedPath string
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update is the navigation state machine: one message in, one
// transition out, invariants re-established before returning.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var navChanged bool

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor.Move(-1, len(m.rows), m.listHeight())
		navChanged = true

	case key.Matches(msg, m.keys.Down):
		m.cursor.Move(1, len(m.rows), m.listHeight())
		navChanged = true

	case key.Matches(msg, m.keys.Top):
		m.cursor.JumpStart()
		navChanged = true

	case key.Matches(msg, m.keys.Bottom):
		m.cursor.JumpEnd(len(m.rows), m.listHeight())
		navChanged = true

	case key.Matches(msg, m.keys.PageUp):
		m.cursor.Page(-1, len(m.rows), m.listHeight())
		navChanged = true

	case key.Matches(msg, m.keys.PageDown):
		m.cursor.Page(1, len(m.rows), m.listHeight())
		navChanged = true

	case key.Matches(msg, m.keys.Toggle):
		if err := m.toggleSelected(); err != nil {
			return m.fatal(err)
		}
		navChanged = true

	case key.Matches(msg, m.keys.Collapse):
		if err := m.collapseSelected(); err != nil {
			return m.fatal(err)
		}
		navChanged = true

	case key.Matches(msg, m.keys.Enter):
		changed, err := m.enterSelected()
		if err != nil {
			return m.fatal(err)
		}
		navChanged = changed

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	}

	if navChanged {
		m.updateStatus()
		return m, m.navigationChangedCmd()
	}
	return m, nil
}

// fatal records an unrecoverable listing fault and stops the program.
// Masking it would leave the view silently inconsistent with the
// filesystem.
func (m Model) fatal(err error) (Model, tea.Cmd) {
	m.err = err
	return m, tea.Quit
}

func (m Model) navigationChangedCmd() tea.Cmd {
	root, selected := m.root, m.SelectedPath()
	return func() tea.Msg {
		return NavigationChangedMsg{Root: root, SelectedPath: selected}
	}
}
