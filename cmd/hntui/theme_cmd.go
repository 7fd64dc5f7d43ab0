package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"hntui/internal/config"
	"hntui/internal/ui/theme"
)

// runThemeCommand dispatches the "hntui theme <subcommand>" surface. It runs
// ahead of the main flag set since these subcommands never start the TUI.
func runThemeCommand(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: hntui theme {list|show|path}")
	}

	if err := config.Initialize(); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	switch args[0] {
	case "list":
		return runThemeList(os.Stdout)
	case "show":
		return runThemeShow(os.Stdout, args[1:])
	case "path":
		return runThemePath(os.Stdout)
	default:
		return fmt.Errorf("unknown theme subcommand %q (want list, show, or path)", args[0])
	}
}

func runThemeList(w io.Writer) error {
	current := config.GetString(config.KeyTheme)
	for _, name := range theme.Available() {
		marker := "  "
		if name == current {
			marker = "* "
		}
		fmt.Fprintln(w, marker+name)
	}
	return nil
}

// themeColors is the flattened, serializable view of a Theme's palette.
type themeColors struct {
	Name                string `json:"name" toml:"name"`
	Primary             string `json:"primary" toml:"primary"`
	Secondary           string `json:"secondary" toml:"secondary"`
	Accent              string `json:"accent" toml:"accent"`
	Error               string `json:"error" toml:"error"`
	Warning             string `json:"warning" toml:"warning"`
	Success             string `json:"success" toml:"success"`
	Info                string `json:"info" toml:"info"`
	Text                string `json:"text" toml:"text"`
	TextMuted           string `json:"text_muted" toml:"text_muted"`
	TextEmphasized      string `json:"text_emphasized" toml:"text_emphasized"`
	Background          string `json:"background" toml:"background"`
	BackgroundSecondary string `json:"background_secondary" toml:"background_secondary"`
	BackgroundDarker    string `json:"background_darker" toml:"background_darker"`
	BorderNormal        string `json:"border_normal" toml:"border_normal"`
	BorderFocused       string `json:"border_focused" toml:"border_focused"`
	BorderDim           string `json:"border_dim" toml:"border_dim"`
}

// colorsForTheme reads back a named theme's palette. SetTheme switching is
// the only name-scoped lookup the registry offers, so this briefly swaps the
// active theme and restores it before returning.
func colorsForTheme(name string) (themeColors, error) {
	restore := theme.CurrentName()
	if !theme.SetTheme(name) {
		return themeColors{}, fmt.Errorf("unknown theme %q", name)
	}
	defer theme.SetTheme(restore)

	t := theme.Current()
	return themeColors{
		Name:                name,
		Primary:             t.Primary().Dark,
		Secondary:           t.Secondary().Dark,
		Accent:              t.Accent().Dark,
		Error:               t.Error().Dark,
		Warning:             t.Warning().Dark,
		Success:             t.Success().Dark,
		Info:                t.Info().Dark,
		Text:                t.Text().Dark,
		TextMuted:           t.TextMuted().Dark,
		TextEmphasized:      t.TextEmphasized().Dark,
		Background:          t.Background().Dark,
		BackgroundSecondary: t.BackgroundSecondary().Dark,
		BackgroundDarker:    t.BackgroundDarker().Dark,
		BorderNormal:        t.BorderNormal().Dark,
		BorderFocused:       t.BorderFocused().Dark,
		BorderDim:           t.BorderDim().Dark,
	}, nil
}

func runThemeShow(w io.Writer, args []string) error {
	flags := flag.NewFlagSet("theme show", flag.ExitOnError)
	format := flags.String("format", "toml", "output format: toml or json")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("usage: hntui theme show NAME [--format toml|json]")
	}

	colors, err := colorsForTheme(flags.Arg(0))
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(colors)
	case "toml":
		return toml.NewEncoder(w).Encode(colors)
	default:
		return fmt.Errorf("unknown format %q (want toml or json)", *format)
	}
}

func runThemePath(w io.Writer) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("determine user home: %w", err)
	}
	fmt.Fprintln(w, filepath.Join(home, ".hntui", "settings.toml"))
	return nil
}
