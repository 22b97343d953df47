// Package display renders entries and cache listings for the terminal.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stellarview/apod/internal/apod"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	urlStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// EntryOptions configures entry rendering.
type EntryOptions struct {
	NoColor  bool
	Width    int
	ShowURLs bool
}

// RenderEntry renders a fetched entry: bold title, a dim metadata line,
// the explanation wrapped to the given width, and optionally the media URLs.
func RenderEntry(e apod.Entry, opts EntryOptions) string {
	width := opts.Width
	if width <= 0 || width > 100 {
		width = 80
	}

	title := titleStyle.Render(e.Title)
	if opts.NoColor {
		title = e.Title
	}

	meta := e.Date + " · " + e.MediaType
	if e.HasCopyright() {
		meta += " · © " + e.Copyright
	}
	metaLine := dimStyle.Render(meta)
	if opts.NoColor {
		metaLine = meta
	}

	explanation := lipgloss.NewStyle().Width(width).Render(e.Explanation)

	parts := []string{title, metaLine, "", explanation}

	if opts.ShowURLs {
		urls := renderURLs(e, opts.NoColor)
		if urls != "" {
			parts = append(parts, "", urls)
		}
	}

	return strings.Join(parts, "\n")
}

func renderURLs(e apod.Entry, noColor bool) string {
	style := urlStyle
	if noColor {
		style = lipgloss.NewStyle()
	}

	label := "Image"
	if e.IsVideo() {
		label = "Video"
	}

	var b strings.Builder
	if e.URL != "" {
		b.WriteString(label + ":    " + style.Render(e.URL))
	}
	if e.HDURL != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("HD image: " + style.Render(e.HDURL))
	}
	return b.String()
}

// RenderFetchFailure returns the generic failure message shown to the user.
// Failure kinds are deliberately not surfaced here; the log carries them.
func RenderFetchFailure(noColor bool) string {
	msg := "Failed to fetch data. Please check the date and try again."
	if noColor {
		return msg
	}
	return errStyle.Render(msg)
}
