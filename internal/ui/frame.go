package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// Frame renders a bordered box with a title line followed by body lines
func Frame(title string, lines ...string) string {
	style := frameStyle
	heading := title
	if color.NoColor {
		style = style.UnsetBorderForeground()
	} else {
		heading = titleStyle.Render(title)
	}

	content := heading
	if len(lines) > 0 {
		content += "\n" + strings.Join(lines, "\n")
	}
	return style.Render(content)
}
