package help

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for help rendering.
type Styles struct {
	Header      lipgloss.Style
	Subsection  lipgloss.Style
	Placeholder lipgloss.Style
	Required    lipgloss.Style
}

// DefaultStyles returns the standard styles for help output.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Bold(true),
		Subsection:  lipgloss.NewStyle().Bold(true).Underline(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Required:    lipgloss.NewStyle().Bold(true),
	}
}

// brightColors is the rotating palette a [Default] formatter's single
// [LoopPool] assigns to arguments, in the order it first renders them.
var brightColors = []lipgloss.Color{
	lipgloss.Color("9"),  // bright red
	lipgloss.Color("10"), // bright green
	lipgloss.Color("11"), // bright yellow
	lipgloss.Color("12"), // bright blue
	lipgloss.Color("13"), // bright magenta
	lipgloss.Color("14"), // bright cyan
}
