package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	t.Run("NavigationBindings", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyUp}, km.Up) {
			t.Error("expected up arrow to match Up binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, km.Up) {
			t.Error("expected k to match Up binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Down) {
			t.Error("expected down arrow to match Down binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down) {
			t.Error("expected j to match Down binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyLeft}, km.Left) {
			t.Error("expected left arrow to match Left binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRight}, km.Right) {
			t.Error("expected right arrow to match Right binding")
		}
	})

	t.Run("HelpBinding", func(t *testing.T) {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
		if !key.Matches(msg, km.Help) {
			t.Error("expected ? to match Help binding")
		}
	})

	t.Run("BackBinding", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Back) {
			t.Error("expected esc to match Back binding")
		}
	})

	t.Run("FeedCycling", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}}, km.NextFeed) {
			t.Error("expected ] to match NextFeed binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}}, km.PrevFeed) {
			t.Error("expected [ to match PrevFeed binding")
		}
	})

	t.Run("CommentTreeBindings", func(t *testing.T) {
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'E'}}, km.ExpandSubtree) {
			t.Error("expected E to match ExpandSubtree binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'C'}}, km.CollapseSubtree) {
			t.Error("expected C to match CollapseSubtree binding")
		}
		if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Z'}}, km.CollapseAll) {
			t.Error("expected Z to match CollapseAll binding")
		}
	})
}

func TestKeyBindingsHaveHelpText(t *testing.T) {
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Up", km.Up}, {"Down", km.Down}, {"Left", km.Left}, {"Right", km.Right},
		{"Home", km.Home}, {"End", km.End}, {"PageUp", km.PageUp}, {"PageDown", km.PageDown},
		{"Enter", km.Enter}, {"Back", km.Back}, {"Refresh", km.Refresh}, {"Quit", km.Quit},
		{"Help", km.Help}, {"Debug", km.Debug}, {"Theme", km.Theme},
		{"OpenUrl", km.OpenUrl}, {"OpenHnPage", km.OpenHnPage}, {"CopyUrl", km.CopyUrl},
		{"ToggleFavorite", km.ToggleFavorite}, {"NextFeed", km.NextFeed}, {"PrevFeed", km.PrevFeed},
		{"ExpandSubtree", km.ExpandSubtree}, {"CollapseSubtree", km.CollapseSubtree},
		{"ExpandAll", km.ExpandAll}, {"CollapseAll", km.CollapseAll},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			help := b.binding.Help()
			if help.Key == "" {
				t.Errorf("%s binding has empty Key help text", b.name)
			}
			if help.Desc == "" {
				t.Errorf("%s binding has empty Desc help text", b.name)
			}
		})
	}
}
