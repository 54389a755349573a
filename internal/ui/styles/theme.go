// Package styles defines the color palette and shared lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the application color palette.
type Theme struct {
	Primary   lipgloss.Color // accent: header gradient start, borders
	Secondary lipgloss.Color // accent: header gradient end

	FgBase  lipgloss.Color // normal entries
	FgMuted lipgloss.Color // connectors, status bar
	FgDir   lipgloss.Color // directory entries

	BgCursor lipgloss.Color // selected row highlight

	Border lipgloss.Color

	Error lipgloss.Color // no-access marker

	styles *Styles
}

// Styles holds pre-built lipgloss styles derived from the theme.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Dir      lipgloss.Style
	Cursor   lipgloss.Style
	Error    lipgloss.Style
	Title    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#7aa2f7"),
	Secondary: lipgloss.Color("#2ac3de"),

	FgBase:  lipgloss.Color("#c0c0c0"),
	FgMuted: lipgloss.Color("#585858"),
	FgDir:   lipgloss.Color("#7aa2f7"),

	BgCursor: lipgloss.Color("#303030"),

	Border: lipgloss.Color("#585858"),

	Error: lipgloss.Color("#ff5555"),
}

// T returns the active theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for the theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = &Styles{
			Base:     lipgloss.NewStyle().Foreground(t.FgBase),
			Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
			Dir:      lipgloss.NewStyle().Foreground(t.FgDir),
			Cursor:   lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Error:    lipgloss.NewStyle().Foreground(t.Error),
			Title:    lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			HelpKey:  lipgloss.NewStyle().Foreground(t.Primary),
			HelpDesc: lipgloss.NewStyle().Foreground(t.FgMuted),
		}
	}
	return t.styles
}
