package styles_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/tabdock/internal/cli/styles"
	"github.com/bnema/tabdock/internal/domain/repository"
	"github.com/bnema/tabdock/internal/infrastructure/config"
)

func TestLayoutsRenderer(t *testing.T) {
	r := styles.NewLayoutsRenderer(styles.NewTheme(config.DefaultConfig()))

	require.Contains(t, r.RenderEmptyList(), "No saved layouts found.")
	require.Contains(t, r.RenderList(nil, ""), "No saved layouts found.")

	items := []repository.LayoutSummary{
		{Name: "default", TabCount: 3, UpdatedAt: time.Now()},
		{Name: "single", TabCount: 1, UpdatedAt: time.Now().Add(-2 * time.Hour)},
	}
	out := r.RenderList(items, "default")
	require.Contains(t, out, "Layouts")
	require.Contains(t, out, "default")
	require.Contains(t, out, "3 tabs")
	require.Contains(t, out, "1 tab")
	require.Contains(t, out, "2h ago")
	require.Contains(t, out, "●")

	require.Contains(t, r.RenderDeleted("single"), "single")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderPaths("/c/config.toml", "/d/tabdock.sqlite", "/s/tabdock.log", 1)
	require.Contains(t, out, "/c/config.toml")
	require.Contains(t, out, "/d/tabdock.sqlite (schema v1)")
	require.Contains(t, out, "/s/tabdock.log")

	require.Contains(t, r.RenderSchemaWritten("/c/config.schema.json"), "config.schema.json")
	require.Contains(t, r.RenderValid("/c/config.toml"), "is valid")
	require.Contains(t, r.RenderError(errors.New("bad")), "bad")
}
