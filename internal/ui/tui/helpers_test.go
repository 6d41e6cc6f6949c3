package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
	"github.com/bnema/tabdock/internal/ui/dock"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("disabled", "console")
	return logging.WithContext(context.Background(), logger)
}

func testConfig(tabs ...string) Config {
	n := 0
	return Config{
		Title:    "tabdock",
		Settings: dock.DefaultSettings(),
		Tabs:     tabs,
		IDGenerator: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

// newTestModel returns a model shown on an 80x25 terminal: the main
// window takes rows 0-23 and its single pane has its tab strip on row 1.
func newTestModel(t *testing.T, tabs ...string) *Model {
	t.Helper()
	return newModelFrom(t, testConfig(tabs...))
}

func newModelFrom(t *testing.T, cfg Config) *Model {
	t.Helper()
	m, err := New(testContext(), cfg)
	require.NoError(t, err)
	t.Cleanup(m.Dock().Close)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 25})
	return m
}

func press(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func motion(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
}

func release(m *Model, col, row int) {
	m.Update(tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func dragTo(m *Model, fromCol, fromRow, toCol, toRow int) {
	press(m, fromCol, fromRow)
	motion(m, toCol, toRow)
	release(m, toCol, toRow)
}

func typeKey(m *Model, s string) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return cmd
}

func titles(c *entity.TabContainer) []string {
	out := make([]string, 0, c.Len())
	for _, tab := range c.Tabs() {
		out = append(out, tab.Title)
	}
	return out
}
