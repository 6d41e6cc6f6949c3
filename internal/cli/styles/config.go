package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths renders the files tabdock reads and writes.
func (r *ConfigRenderer) RenderPaths(configFile, databaseFile, logFile string, schemaVersion int64) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	row := func(icon, label, path string) string {
		return fmt.Sprintf("  %s %-9s %s", iconStyle.Render(icon), label, r.theme.Subtle.Render(path))
	}
	return fmt.Sprintf("\n%s\n%s\n%s\n",
		row(IconConfig, "Config", configFile),
		row(IconDatabase, "Database", fmt.Sprintf("%s (schema v%d)", databaseFile, schemaVersion)),
		row(IconLogs, "Logs", logFile),
	)
}

// RenderSchemaWritten renders the path of a generated JSON schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("%s Schema written to %s",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(path),
	)
}

// RenderValid renders a successful config validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	return fmt.Sprintf("%s %s is valid",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %s", r.theme.ErrorStyle.Render(IconX), err)
}
