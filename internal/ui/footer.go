package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
type footerHint struct {
	key  string
	desc string
}

var storiesFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"⏎", "Comments"},
	{"f", "Favorite"},
	{"o", "Open"},
	{"]/[", "Feed"},
	{"q", "Quit"},
	{"?", "Help"},
}

var commentsFooterHints = []footerHint{
	{"↑↓", "Navigate"},
	{"←→", "Collapse/expand"},
	{"E/C", "Subtree"},
	{"f", "Favorite"},
	{"esc", "Back"},
	{"?", "Help"},
}

// renderFooter renders the key-hint bar for the active view, trimming
// hints from the end if the terminal is too narrow to show them all.
func (m *App) renderFooter() string {
	var hints []footerHint
	if m.view == ViewStories {
		hints = storiesFooterHints
	} else {
		hints = commentsFooterHints
	}

	hints = trimHintsToFit(hints, m.width-2)

	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return strings.Join(parts, "  ")
}

func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	for len(hints) > 0 && renderHintsWidth(hints) > availableWidth {
		hints = hints[:len(hints)-1]
	}
	return hints
}

func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
