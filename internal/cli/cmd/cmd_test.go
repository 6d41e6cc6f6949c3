package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/cli"
	"github.com/bnema/tabdock/internal/cli/styles"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/infrastructure/config"
	"github.com/bnema/tabdock/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/tabdock/internal/logging"
)

type testEnv struct {
	configDir string
	dataDir   string
	stateDir  string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	base := t.TempDir()
	env := testEnv{
		configDir: filepath.Join(base, "config"),
		dataDir:   filepath.Join(base, "data"),
		stateDir:  filepath.Join(base, "state"),
	}
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", env.configDir)
	t.Setenv("XDG_DATA_HOME", env.dataDir)
	t.Setenv("XDG_STATE_HOME", env.stateDir)
	t.Setenv("TABDOCK_LOG_LEVEL", "")
	return env
}

func (e testEnv) databaseFile() string {
	return filepath.Join(e.dataDir, "tabdock", "tabdock.sqlite")
}

func resetFlags() {
	configDir, logLevel = "", ""
	configWriteSchema = false
	layoutsJSON, layoutsLimit = false, defaultLayoutsLimit
	logsFollow, logsLines = false, defaultLogsLines
	demoLayout, demoFresh, demoTabs = "", false, nil
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--log-level", "disabled"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func seedLayout(t *testing.T, env testEnv, names ...string) {
	t.Helper()
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
	db, err := sqlite.NewConnection(ctx, env.databaseFile())
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := sqlite.NewLayoutRepository(db)
	for i, name := range names {
		require.NoError(t, repo.Save(ctx, &entity.LayoutSnapshot{
			Name:    name,
			Version: entity.LayoutSnapshotVersion,
			SavedAt: time.Now().Add(-time.Duration(i) * time.Hour),
			Root: entity.NodeSnapshot{
				Kind:     "tabs",
				Selected: 0,
				Tabs:     []entity.TabSnapshot{{Title: "Saved A", Detachable: true}, {Title: "Saved B", Detachable: true}},
			},
		}))
	}
}

func TestVersionCommand(t *testing.T) {
	SetBuildInfo(BuildInfo{Version: "1.2.3", Commit: "abc", BuildDate: "today", GoVersion: "go1.25"})
	t.Cleanup(func() { SetBuildInfo(BuildInfo{Version: "dev"}) })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "tabdock 1.2.3 (commit abc")
	assert.Nil(t, GetApp())
}

func TestConfigShow_PrintsDefaults(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "--config-dir", env.configDir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "zone_offset = 40")
	assert.FileExists(t, filepath.Join(env.configDir, "config.toml"))
	assert.Nil(t, GetApp(), "app is closed after the command")
}

func TestConfigPath_ListsFiles(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(env.configDir, "tabdock", "config.toml"))
	assert.Contains(t, out, env.databaseFile())
	assert.Contains(t, out, "schema v1")
	assert.Contains(t, out, filepath.Join(env.stateDir, "tabdock", "logs", "tabdock.log"))
}

func TestConfigValidate_ReportsInvalidFile(t *testing.T) {
	env := newTestEnv(t)
	cfg := config.DefaultConfig()
	cfg.Dock.ClosingPolicy = "sometimes"
	require.NoError(t, config.WriteConfigOrdered(cfg, filepath.Join(env.configDir, "config.toml")))

	_, err := execute(t, "--config-dir", env.configDir, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing_policy")
}

func TestConfigSchema_PrintsAndWrites(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "tabdock configuration")

	out, err = execute(t, "--config-dir", env.configDir, "config", "schema", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "config.schema.json")
	assert.FileExists(t, filepath.Join(env.configDir, "config.schema.json"))
}

func TestLayoutsList_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "--config-dir", env.configDir, "layouts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved layouts found.")
}

func TestLayoutsList_JSON(t *testing.T) {
	env := newTestEnv(t)
	seedLayout(t, env, "default", "older")

	out, err := execute(t, "--config-dir", env.configDir, "layouts", "list", "--json", "-n", "1")
	require.NoError(t, err)

	var rows []layoutJSON
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "default", rows[0].Name)
	assert.Equal(t, 2, rows[0].TabCount)
}

func TestLayoutsDelete(t *testing.T) {
	env := newTestEnv(t)
	seedLayout(t, env, "default")

	out, err := execute(t, "--config-dir", env.configDir, "layouts", "delete", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	_, err = execute(t, "--config-dir", env.configDir, "layouts", "delete", "default")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout not found")
}

func TestDockSettings_MapsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Dock.ClosingPolicy = config.ClosingAllTabs
	cfg.Dock.DefaultScope = "editors"
	cfg.Dock.HeaderRetryDelayMs = 250

	s, err := dockSettings(cfg)
	require.NoError(t, err)
	assert.Equal(t, entity.ClosingAllTabs, s.ClosingPolicy)
	assert.Equal(t, "editors", s.DefaultScope)
	assert.Equal(t, 250*time.Millisecond, s.HeaderRetryDelay)
	assert.Equal(t, 400.0, s.FloatingWidth)
	assert.Equal(t, 30.0, s.ZoneSize)
	assert.Equal(t, 40.0, s.ZoneOffset)
	assert.NotEmpty(t, s.Stylesheets)

	cfg.Dock.ClosingPolicy = "sometimes"
	_, err = dockSettings(cfg)
	assert.Error(t, err)
}

func newTestApp(t *testing.T, env testEnv) *cli.App {
	t.Helper()
	a, err := cli.NewApp(cli.Options{ConfigDir: env.configDir, LogLevel: "disabled", Stderr: &bytes.Buffer{}})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func tabTitles(c *entity.TabContainer) []string {
	var out []string
	for _, tab := range c.Tabs() {
		out = append(out, tab.Title)
	}
	return out
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDemoModel_FreshUsesConfiguredTabs(t *testing.T) {
	env := newTestEnv(t)
	a := newTestApp(t, env)
	resetFlags()
	t.Cleanup(resetFlags)

	m, err := newDemoModel(a)
	require.NoError(t, err)
	t.Cleanup(m.Dock().Close)

	assert.Equal(t, []string{"Editor", "Terminal", "Notes"}, tabTitles(m.Main().Container()))
}

func TestNewDemoModel_RestoresSavedLayout(t *testing.T) {
	env := newTestEnv(t)
	seedLayout(t, env, "default")
	a := newTestApp(t, env)
	resetFlags()
	t.Cleanup(resetFlags)

	m, err := newDemoModel(a)
	require.NoError(t, err)
	t.Cleanup(m.Dock().Close)
	assert.Equal(t, []string{"Saved A", "Saved B"}, tabTitles(m.Main().Container()))

	demoFresh, demoTabs = true, []string{"x", "y"}
	fresh, err := newDemoModel(a)
	require.NoError(t, err)
	t.Cleanup(fresh.Dock().Close)
	assert.Equal(t, []string{"x", "y"}, tabTitles(fresh.Main().Container()))
}

func TestNewDemoModel_SavesUnderLayoutName(t *testing.T) {
	env := newTestEnv(t)
	a := newTestApp(t, env)
	resetFlags()
	t.Cleanup(resetFlags)
	demoLayout = "work"

	m, err := newDemoModel(a)
	require.NoError(t, err)
	t.Cleanup(m.Dock().Close)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	m.Update(keyRune('s'))
	assert.Equal(t, "layout saved", m.Status())

	saved, err := a.Layouts.FindByName(a.Ctx(), "work")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, 3, saved.TabCount())
}

func TestLastLines(t *testing.T) {
	lines, err := lastLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	lines, err = lastLines(strings.NewReader("a\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestColorizeLogLine_JSON(t *testing.T) {
	line := `{"level":"warn","time":"2026-01-02T03:04:05Z","message":"drop insert failed"}`
	out := colorizeLogLine(line, styles.NewTheme(nil))

	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "03:04:05")
	assert.Contains(t, out, "drop insert failed")
	assert.Equal(t, "plain text", colorizeLogLine("plain text", styles.NewTheme(nil)))
}

func TestLogs_ShowsTail(t *testing.T) {
	env := newTestEnv(t)

	out, err := execute(t, "--config-dir", env.configDir, "logs")
	require.NoError(t, err)
	assert.Contains(t, out, "No logs yet")

	logFile := filepath.Join(env.stateDir, "tabdock", "logs", "tabdock.log")
	require.NoError(t, os.MkdirAll(filepath.Dir(logFile), 0o750))
	require.NoError(t, os.WriteFile(logFile, []byte("first\nsecond\nthird\n"), 0o600))

	out, err = execute(t, "--config-dir", env.configDir, "logs", "-n", "2")
	require.NoError(t, err)
	assert.NotContains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "third")
}
