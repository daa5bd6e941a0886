// Package present renders the chosen name for the terminal.
package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Mode selects how a name is printed.
type Mode int

const (
	Decorated Mode = iota // Framed, human-facing output
	Raw                   // The bare name, nothing else
)

const (
	introText   = "✨🌟 Consulting the Cosmic Oracle for a name... 🔮⭐"
	titleText   = "🌌 The Oracle has spoken... 🌌"
	silenceText = "Error: The stars have gone silent, unable to retrieve a name."

	minFrameWidth = 35
)

// Presenter writes names to Out and failures to Err.
type Presenter struct {
	Out  io.Writer
	Err  io.Writer
	Mode Mode

	styles   styles
	errStyle lipgloss.Style
}

// New creates a Presenter for the given mode.
func New(out, errOut io.Writer, mode Mode) *Presenter {
	return &Presenter{
		Out:      out,
		Err:      errOut,
		Mode:     mode,
		styles:   newStyles(lipgloss.NewRenderer(out)),
		errStyle: newStyles(lipgloss.NewRenderer(errOut)).err,
	}
}

// Intro announces the consultation. It prints nothing in raw mode.
func (p *Presenter) Intro() {
	if p.Mode == Raw {
		return
	}
	fmt.Fprintf(p.Out, "\n%s\n", p.styles.intro.Render(introText))
}

// Silent reports that no name could be drawn. Nothing is written to Out.
func (p *Presenter) Silent() {
	fmt.Fprintln(p.Err, p.errStyle.Render(silenceText))
}

// Show prints name according to the presenter's mode.
func (p *Presenter) Show(name string) {
	if p.Mode == Raw {
		fmt.Fprint(p.Out, name)
		return
	}

	nameLine := fmt.Sprintf("✨ => %s <= ✨", p.styles.name.Render(name))
	width := max(minFrameWidth, runewidth.StringWidth(titleText)+4, runewidth.StringWidth(name)+10)

	frame := p.styles.frame.Width(width).Render(p.styles.title.Render(titleText))
	fmt.Fprintln(p.Out, frame)
	fmt.Fprintln(p.Out, nameLine)
}
