package ui

import (
	"hntui/internal/debug"
)

// renderDebugOverlay renders the in-memory ring buffer of recent debug log
// lines, newest last, inside a wide overlay box.
func renderDebugOverlay(width int) string {
	b := NewOverlayBuilder(OverlaySizeWide, width)
	b.Header("✦ DEBUG LOG ✦")

	lines := debug.Panel()
	if len(lines) == 0 {
		b.Line(styleFooterMuted().Render("(empty)"))
	} else {
		contentWidth := b.ContentWidth()
		for _, line := range lines {
			for _, wrapped := range wrapPlain(line, contentWidth) {
				b.Line(wrapped)
			}
		}
	}

	b.BlankLine()
	b.FooterText("ctrl+d to toggle, esc to close")
	return b.Build()
}

func (m *App) renderDebugLayer() Layer {
	return BaseOverlayLayer(func() string {
		return renderDebugOverlay(m.width)
	}, m.width, m.height, 1, 1)
}

// wrapPlain splits a log line into width-bounded chunks without attempting
// word-aware wrapping; debug lines are often unstructured key=value dumps
// where word wrap would be no clearer than a hard cut.
func wrapPlain(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	runes := []rune(s)
	if len(runes) <= width {
		return []string{s}
	}
	var out []string
	for len(runes) > width {
		out = append(out, string(runes[:width]))
		runes = runes[width:]
	}
	if len(runes) > 0 {
		out = append(out, string(runes))
	}
	return out
}
