package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Spotify brand green anchors the palette.
var styles = NewPalette("#1DB954", "#1DB954", "#626262")

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title lipgloss.Style
	ok    lipgloss.Style
	help  lipgloss.Style
}

func NewPalette(t, s, h string) *Palette {
	return &Palette{
		title: NewBold(t).MarginBottom(1),
		ok:    NewBold(s),
		help:  NewEm(h),
	}
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}

// Title renders s in the palette's heading style.
func Title(s string) string { return styles.title.Render(s) }

// OK renders s in the palette's success style.
func OK(s string) string { return styles.ok.Render(s) }

// Help renders s in the palette's secondary style.
func Help(s string) string { return styles.help.Render(s) }
