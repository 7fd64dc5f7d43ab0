package main

import (
	"bytes"
	"strings"
	"testing"

	"hntui/internal/ui/theme"
)

func TestRunThemeListIncludesEveryTheme(t *testing.T) {
	original := theme.CurrentName()
	defer theme.SetTheme(original)
	theme.SetTheme("nord")

	var buf bytes.Buffer
	if err := runThemeList(&buf); err != nil {
		t.Fatalf("runThemeList: %v", err)
	}

	out := buf.String()
	for _, name := range theme.Available() {
		if !strings.Contains(out, name) {
			t.Errorf("expected listing to contain theme %q", name)
		}
	}
}

func TestRunThemeShowJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := runThemeShow(&buf, []string{"--format", "json", "nord"}); err != nil {
		t.Fatalf("runThemeShow: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"name"`, `"nord"`, `"primary"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected JSON output to contain %q, got: %s", want, out)
		}
	}
}

func TestRunThemeShowTOML(t *testing.T) {
	var buf bytes.Buffer
	if err := runThemeShow(&buf, []string{"nord"}); err != nil {
		t.Fatalf("runThemeShow: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "name = 'nord'") && !strings.Contains(out, `name = "nord"`) {
		t.Errorf("expected TOML output to name the theme, got: %s", out)
	}
}

func TestRunThemeShowUnknownTheme(t *testing.T) {
	var buf bytes.Buffer
	if err := runThemeShow(&buf, []string{"not-a-real-theme"}); err == nil {
		t.Error("expected an error for an unknown theme name")
	}
}

func TestRunThemePathPrintsSettingsFile(t *testing.T) {
	var buf bytes.Buffer
	if err := runThemePath(&buf); err != nil {
		t.Fatalf("runThemePath: %v", err)
	}
	if !strings.Contains(buf.String(), "settings.toml") {
		t.Errorf("expected path output to reference settings.toml, got: %s", buf.String())
	}
}

func TestRunThemeCommandUnknownSubcommand(t *testing.T) {
	if err := runThemeCommand([]string{"bogus"}); err == nil {
		t.Error("expected an error for an unknown theme subcommand")
	}
}
