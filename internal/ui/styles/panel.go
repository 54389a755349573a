package styles

import "github.com/charmbracelet/lipgloss"

var panelStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(defaultTheme.Border)

// PanelStyle returns the bordered panel style.
func PanelStyle() lipgloss.Style {
	return panelStyle
}
