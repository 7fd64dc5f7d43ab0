package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitialize(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()

	if err := Initialize(WithWorkingDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}
	// Second call should no-op and still return nil.
	if err := Initialize(); err != nil {
		t.Fatalf("Initialize should be idempotent: %v", err)
	}
}

func TestDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.toml")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyDatabasePath); got != "" {
		t.Fatalf("expected default %s to be empty, got %q", KeyDatabasePath, got)
	}
	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Fatalf("expected default theme tokyonight, got %q", got)
	}
	if got := GetInt(KeyPageSize); got != DefaultPageSize {
		t.Fatalf("expected default page size %d, got %d", DefaultPageSize, got)
	}
	if got := GetDuration(KeyCacheTTL); got != DefaultCacheTTL {
		t.Fatalf("expected default cache ttl %v, got %v", DefaultCacheTTL, got)
	}
	if got := GetString(KeyAlgoliaBase); got != DefaultAlgoliaBase {
		t.Fatalf("expected default algolia base, got %q", got)
	}
}

func TestConfigFile(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".hntui"))
	projectCfg := filepath.Join(projectDir, ".hntui", "settings.toml")
	writeFile(t, projectCfg, `
theme = "project-theme"

[database]
path = "/project/data.db"
`)

	userCfg := filepath.Join(tmp, "user.toml")
	writeFile(t, userCfg, `
theme = "user-theme"

[database]
path = "/user/data.db"
`)

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithUserConfig(userCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "project-theme" {
		t.Fatalf("expected project config to win for theme, got %q", got)
	}
	if got := GetString(KeyDatabasePath); got != "/project/data.db" {
		t.Fatalf("expected project database path, got %q", got)
	}
}

func TestEnvironmentBinding(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Setenv("HN_THEME", "env-theme")
	t.Setenv("HN_API_PAGE_SIZE", "50")

	if err := Initialize(WithWorkingDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "env-theme" {
		t.Fatalf("expected env override for theme, got %q", got)
	}
	if got := GetInt(KeyPageSize); got != 50 {
		t.Fatalf("expected env override for page size, got %d", got)
	}
}

func TestConfigPrecedence(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	mustMkdir(t, filepath.Join(projectDir, ".hntui"))
	projectCfg := filepath.Join(projectDir, ".hntui", "settings.toml")
	writeFile(t, projectCfg, `
theme = "project-theme"

[database]
path = "/project/data.db"
`)

	t.Setenv("HN_DATABASE_PATH", "/env/data.db")
	t.Setenv("HN_VERBOSE", "true")

	if err := Initialize(
		WithWorkingDir(projectDir),
		WithProjectConfig(projectCfg),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyDatabasePath); got != "/env/data.db" {
		t.Fatalf("expected env override for database path, got %q", got)
	}
	if !GetBool(KeyVerbose) {
		t.Fatalf("expected env override to enable verbose")
	}

	overrides := map[string]any{
		KeyVerbose: false,
		KeyTheme:   "cli-theme",
	}
	if err := ApplyOverrides(overrides); err != nil {
		t.Fatalf("ApplyOverrides returned error: %v", err)
	}

	if GetBool(KeyVerbose) {
		t.Fatalf("expected CLI override to set verbose=false")
	}
	if got := GetString(KeyTheme); got != "cli-theme" {
		t.Fatalf("expected CLI override for theme, got %q", got)
	}
}

func TestSetUpdatesValue(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp)); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	want := 42 * time.Second
	if err := Set(KeyRequestTimout, want); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if got := GetDuration(KeyRequestTimout); got != want {
		t.Fatalf("expected Set to update request timeout to %v, got %v", want, got)
	}
}

func TestFindsAncestorProjectConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	repo := filepath.Join(tmp, "repo")
	deep := filepath.Join(repo, "a", "b", "c")
	mustMkdir(t, filepath.Join(repo, ".hntui"))
	mustMkdir(t, deep)

	projectCfg := filepath.Join(repo, ".hntui", "settings.toml")
	writeFile(t, projectCfg, `theme = "ancestor-theme"`)

	if err := Initialize(
		WithWorkingDir(deep),
		WithUserConfig(filepath.Join(tmp, "user.toml")),
	); err != nil {
		t.Fatalf("Initialize returned error: %v", err)
	}

	if got := GetString(KeyTheme); got != "ancestor-theme" {
		t.Fatalf("expected ancestor config discovery, got %q", got)
	}
}

func TestSentinelMismatchRefusesLoad(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.toml")
	writeFile(t, userCfg, `
app = "some-other-app"
theme = "should-not-load"
`)

	err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg))
	if err == nil {
		t.Fatal("expected Initialize to fail on sentinel mismatch")
	}
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}
