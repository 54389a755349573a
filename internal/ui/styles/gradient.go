package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyGradient renders text with a horizontal color gradient between
// two colors. Grapheme clusters are colored individually so combining
// marks and emoji stay intact.
func ApplyGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	start, errA := colorful.Hex(string(from))
	end, errB := colorful.Hex(string(to))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		c := start.BlendLuv(end, t)
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex(c))).
			Render(cluster))
	}
	return b.String()
}

func hex(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
