// Command hntui is a terminal client for Hacker News.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"hntui/internal/config"
	"hntui/internal/debug"
	"hntui/internal/hn"
	"hntui/internal/storage"
	"hntui/internal/ui"
	"hntui/internal/ui/theme"
)

// version is overridden at release build time via -ldflags.
var version = "dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "theme" {
		if err := runThemeCommand(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "hntui theme:", err)
			os.Exit(1)
		}
		return
	}

	flags := flag.NewFlagSet("hntui", flag.ExitOnError)
	darkFlag := flags.Bool("dark", false, "force a dark background")
	lightFlag := flags.Bool("light", false, "force a light background")
	themeFlag := flags.String("theme", "", "select a theme by name")
	configDirFlag := flags.String("config-dir", "", "override the user config directory")
	verboseFlag := flags.Bool("verbose", false, "enable verbose debug logging")
	_ = flags.Parse(os.Args[1:])

	var opts []config.Option
	if *configDirFlag != "" {
		opts = append(opts, config.WithUserConfig(filepath.Join(*configDirFlag, "settings.toml")))
	}
	if err := config.Initialize(opts...); err != nil {
		fmt.Fprintln(os.Stderr, "hntui: load config:", err)
		os.Exit(1)
	}

	verbose := *verboseFlag || config.GetBool(config.KeyVerbose)
	if err := debug.Init(verbose); err != nil {
		fmt.Fprintln(os.Stderr, "hntui: init debug log:", err)
		os.Exit(1)
	}
	defer debug.Close()

	reportStartup := ui.StartupReporterFunc(func(stage ui.StartupStage, detail string) {
		debug.Logf("startup: stage=%d %s", stage, detail)
	})
	reportStartup.Stage(ui.StartupStageLoadingConfig, "config loaded")

	if *darkFlag {
		lipgloss.SetHasDarkBackground(true)
	} else if *lightFlag {
		lipgloss.SetHasDarkBackground(false)
	}

	themeName := *themeFlag
	if themeName == "" {
		themeName = config.GetString(config.KeyTheme)
	}
	if !theme.SetTheme(themeName) {
		fmt.Fprintf(os.Stderr, "hntui: unknown theme %q (see `hntui theme list`)\n", themeName)
		os.Exit(1)
	}

	dbPath, err := config.DatabasePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hntui: resolve database path:", err)
		os.Exit(1)
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "hntui: open database:", err)
		os.Exit(1)
	}
	defer store.Close()
	reportStartup.Stage(ui.StartupStageOpeningDatabase, dbPath)

	client := hn.NewClient(
		config.GetString(config.KeyAlgoliaBase),
		config.GetString(config.KeyFirebaseBase),
		config.GetInt(config.KeyPageSize),
		config.GetDuration(config.KeyRequestTimout),
		store,
	)
	reportStartup.Stage(ui.StartupStageConnectingClient, config.GetString(config.KeyFirebaseBase))

	app := ui.NewApp(ui.Config{
		Client:         client,
		Store:          store,
		InitialFeed:    hn.FeedTop,
		RequestTimeout: config.GetDuration(config.KeyRequestTimout),
		Version:        version,
	})
	reportStartup.Stage(ui.StartupStageReady, "")

	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "hntui:", err)
		os.Exit(1)
	}
}
