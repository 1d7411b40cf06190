package cmd

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

// styles renders for one output stream; plain text when it is not a terminal
type styles struct {
	title lipgloss.Style
	muted lipgloss.Style
	err   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title: r.NewStyle().Bold(true).Foreground(colorPrimary),
		muted: r.NewStyle().Foreground(colorMuted),
		err:   r.NewStyle().Foreground(colorError),
	}
}
