package ui

import (
	"fmt"

	"hntui/internal/ui/theme"
)

// renderThemeOverlay renders the theme picker: the active theme name and
// the full cycle order, with the active entry highlighted.
func renderThemeOverlay(width int) string {
	current := theme.CurrentName()
	available := theme.Available()

	b := NewOverlayBuilder(OverlaySizeNarrow, width)
	b.Header("✦ THEME ✦")

	for _, name := range available {
		if name == current {
			b.Line(styleSelected().Render("› " + name))
		} else {
			b.Line("  " + name)
		}
	}

	b.BlankLine()
	b.FooterText(fmt.Sprintf("%d themes — ←/→ to cycle, esc to close", len(available)))
	return b.Build()
}

func (m *App) renderThemeLayer() Layer {
	return BaseOverlayLayer(func() string {
		return renderThemeOverlay(m.width)
	}, m.width, m.height, 2, 2)
}
