package ui

import (
	"strings"
	"testing"
)

func TestStyles(t *testing.T) {
	t.Run("bold and em carry their attributes", func(t *testing.T) {
		if !NewBold("#1DB954").GetBold() {
			t.Error("expected bold style")
		}
		if !NewEm("#626262").GetItalic() {
			t.Error("expected italic style")
		}
		if NewStyle("#1DB954").GetBold() {
			t.Error("expected plain style without bold")
		}
	})

	t.Run("title adds a bottom margin", func(t *testing.T) {
		p := NewPalette("#1DB954", "#1DB954", "#626262")
		if got := p.title.GetMarginBottom(); got != 1 {
			t.Errorf("expected margin bottom 1, got %d", got)
		}
	})

	t.Run("renderers keep their input text", func(t *testing.T) {
		for name, fn := range map[string]func(string) string{
			"Title": Title,
			"OK":    OK,
			"Help":  Help,
		} {
			if got := fn("catalog"); !strings.Contains(got, "catalog") {
				t.Errorf("%s(%q) = %q, expected input text to survive", name, "catalog", got)
			}
		}
	})
}
