// Package ui holds the lipgloss palette shared by the CLI's terminal output.
//
// The [Palette] groups the named styles (title, ok, err, warn, help) and the
// package-level render helpers apply them, so callers never touch lipgloss
// directly.
package ui
