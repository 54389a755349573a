package explorer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/arbor/internal/ui"
	"github.com/llehouerou/arbor/internal/ui/render"
	"github.com/llehouerou/arbor/internal/ui/styles"
)

// View draws the full frame: header with the current root, separator,
// the visible window of rows, and the status/help bar. Always a
// complete redraw from the flattened sequence.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	innerWidth := m.width - ui.BorderHeight
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := styles.T().S().Muted.Render(render.Separator(innerWidth))

	lines := make([]string, 0, listHeight+3)
	lines = append(lines, header, separator)

	start, end := m.cursor.VisibleRange(len(m.rows), listHeight)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, innerWidth))
	}
	for i := end - start; i < listHeight; i++ {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	lines = append(lines, m.renderStatusBar(innerWidth))

	return styles.PanelStyle().Width(innerWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderHeader(width int) string {
	path := render.Truncate(m.root, width)
	header := styles.ApplyGradient(path, styles.T().Primary, styles.T().Secondary)
	if pad := width - lipgloss.Width(header); pad > 0 {
		header += strings.Repeat(" ", pad)
	}
	return header
}

func (m Model) renderRow(idx, width int) string {
	row := m.rows[idx]
	line := render.TruncateAndPad(row.Label, width)

	s := styles.T().S()
	switch {
	case idx == m.cursor.Pos():
		return s.Cursor.Render(line)
	case row.IsDir:
		return s.Dir.Render(line)
	default:
		return s.Base.Render(line)
	}
}

func (m Model) renderStatusBar(width int) string {
	if m.showHelp {
		return render.Pad(m.help.View(m.keys), width)
	}

	left := styles.T().S().Muted.Render(render.Truncate(m.status, width/2))
	right := styles.T().S().HelpDesc.Render("? help")
	return render.Row(left, right, width)
}
