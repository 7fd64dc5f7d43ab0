package ui

import (
	"strings"
	"testing"

	"hntui/internal/ui/theme"
)

func TestRenderThemeOverlayHighlightsCurrentTheme(t *testing.T) {
	current := theme.CurrentName()
	overlay := renderThemeOverlay(80)

	if !strings.Contains(overlay, "THEME") {
		t.Error("expected overlay to contain a THEME header")
	}
	if !strings.Contains(overlay, current) {
		t.Errorf("expected overlay to list the active theme %q", current)
	}
	if !strings.Contains(overlay, "› "+current) {
		t.Errorf("expected the active theme %q to carry the selection marker", current)
	}
	for _, name := range theme.Available() {
		if !strings.Contains(overlay, name) {
			t.Errorf("expected overlay to list theme %q", name)
		}
	}
}

func TestRenderThemeLayerProducesCanvas(t *testing.T) {
	m := &App{width: 80, height: 24}
	canvas := m.renderThemeLayer().Render()
	if canvas == nil {
		t.Fatal("expected a non-nil theme overlay canvas")
	}
	if canvas.Render() == "" {
		t.Error("expected non-empty rendered theme overlay")
	}
}
