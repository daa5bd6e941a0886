package present

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorIntro  = lipgloss.Color("#a8dadc") // Label blue - consulting line
	ColorBorder = lipgloss.Color("#3d5a80") // Frame border
	ColorTitle  = lipgloss.Color("#4ecdc4") // Teal - frame title
	ColorName   = lipgloss.Color("#ffe66d") // Yellow - the chosen name
	ColorError  = lipgloss.Color("#FF6B6B") // Red - failures
)

// styles are bound to a renderer so colour is only emitted when the
// destination writer is a terminal.
type styles struct {
	intro lipgloss.Style
	frame lipgloss.Style
	title lipgloss.Style
	name  lipgloss.Style
	err   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		intro: r.NewStyle().
			Foreground(ColorIntro).
			Italic(true),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2),
		title: r.NewStyle().
			Foreground(ColorTitle).
			Bold(true),
		name: r.NewStyle().
			Foreground(ColorName).
			Bold(true),
		err: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
	}
}
