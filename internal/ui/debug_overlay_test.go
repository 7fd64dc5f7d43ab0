package ui

import (
	"strings"
	"testing"
)

func TestWrapPlainSplitsLongLines(t *testing.T) {
	chunks := wrapPlain("abcdefghij", 4)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d (%v)", len(chunks), chunks)
	}
	if strings.Join(chunks, "") != "abcdefghij" {
		t.Errorf("expected chunks to reassemble to the original string, got %q", strings.Join(chunks, ""))
	}
}

func TestWrapPlainShortLinePassesThrough(t *testing.T) {
	chunks := wrapPlain("short", 40)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("expected a single unchanged chunk, got %v", chunks)
	}
}

func TestRenderDebugOverlayShowsEmptyPlaceholder(t *testing.T) {
	overlay := renderDebugOverlay(80)
	if !strings.Contains(overlay, "DEBUG LOG") {
		t.Error("expected overlay to contain a DEBUG LOG header")
	}
	if !strings.Contains(overlay, "(empty)") {
		t.Error("expected overlay to show the empty placeholder when the panel has no entries")
	}
}

func TestRenderDebugLayerProducesCanvas(t *testing.T) {
	m := &App{width: 100, height: 30}
	canvas := m.renderDebugLayer().Render()
	if canvas == nil {
		t.Fatal("expected a non-nil debug overlay canvas")
	}
}
