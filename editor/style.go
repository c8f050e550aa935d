package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter lipgloss.Style
	Text   lipgloss.Style
	Tilde  lipgloss.Style
	Cursor lipgloss.Style

	StatusBar lipgloss.Style
	Message   lipgloss.Style
	Prompt    lipgloss.Style
}

func DefaultStyle() Style {
	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:    subtle,
		Text:      lipgloss.NewStyle(),
		Tilde:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		StatusBar: lipgloss.NewStyle().Reverse(true),
		Message:   lipgloss.NewStyle(),
		Prompt:    lipgloss.NewStyle().Bold(true),
	}
}
