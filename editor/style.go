package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Mask paints hidden and password placeholders; Blur paints MaskBlur text.
	Mask   lipgloss.Style
	Blur   lipgloss.Style
	Status lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Mask:          lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Blur:          lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("236")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}
