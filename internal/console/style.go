package console

import "github.com/charmbracelet/lipgloss"

var (
	colorTeal  = lipgloss.Color("#20B9B4")
	colorSlate = lipgloss.Color("#2C4A54")
)

// Styles are the lipgloss styles used by WriterSink.
var Styles = struct {
	Header lipgloss.Style
	Muted  lipgloss.Style
}{
	Header: lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
	Muted:  lipgloss.NewStyle().Foreground(colorSlate),
}
