package ui

import (
	"strings"
	"testing"
)

func TestRenderHelpOverlay(t *testing.T) {
	keys := DefaultKeyMap()
	overlay := renderHelpOverlay(keys, 100, 40)

	t.Run("ContainsTitle", func(t *testing.T) {
		if !strings.Contains(overlay, "HNTUI HELP") {
			t.Error("expected overlay to contain 'HNTUI HELP'")
		}
	})

	t.Run("ContainsAllSections", func(t *testing.T) {
		for _, section := range []string{"NAVIGATION", "STORIES", "COMMENTS", "GENERAL"} {
			if !strings.Contains(overlay, section) {
				t.Errorf("expected overlay to contain section %q", section)
			}
		}
	})

	t.Run("ContainsKeyHintsFromKeyMap", func(t *testing.T) {
		if !strings.Contains(overlay, keys.Up.Help().Key) {
			t.Errorf("expected overlay to contain Up key hint %q", keys.Up.Help().Key)
		}
		if !strings.Contains(overlay, keys.Enter.Help().Key) {
			t.Errorf("expected overlay to contain Enter key hint %q", keys.Enter.Help().Key)
		}
	})

	t.Run("ContainsFooter", func(t *testing.T) {
		if !strings.Contains(overlay, "Press ? or Esc to close") {
			t.Error("expected overlay to contain footer instruction")
		}
	})
}

func TestGetHelpSections(t *testing.T) {
	keys := DefaultKeyMap()
	sections := getHelpSections(keys)

	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	expected := []string{"NAVIGATION", "STORIES", "COMMENTS", "GENERAL"}
	for i, section := range sections {
		if section.title != expected[i] {
			t.Errorf("section %d: expected title %q, got %q", i, expected[i], section.title)
		}
	}

	if sections[0].rows[0][0] != keys.Up.Help().Key {
		t.Errorf("expected first navigation key to be %q, got %q", keys.Up.Help().Key, sections[0].rows[0][0])
	}
}

func TestRenderHelpSectionTable(t *testing.T) {
	section := helpSection{
		title: "TEST",
		rows: [][]string{
			{"key1", "desc1"},
			{"key2", "desc2"},
		},
	}

	rendered := renderHelpSectionTable(section)

	for _, want := range []string{"TEST", "───", "key1", "key2", "desc1", "desc2"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("expected rendered section to contain %q", want)
		}
	}
}
