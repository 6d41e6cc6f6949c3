package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tabdock/internal/infrastructure/config"
	uitheme "github.com/bnema/tabdock/internal/ui/theme"
)

// Theme holds lipgloss colors and styles derived from config.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color

	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style
}

// NewTheme creates a Theme from the configured color scheme.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil {
		return NewThemeFromPalette(uitheme.DefaultDarkPalette())
	}
	return NewThemeFromPalette(uitheme.PaletteForAppearance(&cfg.Appearance))
}

// NewThemeFromPalette creates a Theme from a palette.
func NewThemeFromPalette(p uitheme.Palette) *Theme {
	t := &Theme{
		Text:    lipgloss.Color(p.Text),
		Muted:   lipgloss.Color(p.Muted),
		Accent:  lipgloss.Color(p.Accent),
		Border:  lipgloss.Color(p.Border),
		Error:   lipgloss.Color(p.Destructive),
		Warning: lipgloss.Color(p.Warning),
		Success: lipgloss.Color(p.Accent),
	}

	t.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.WarningStyle = lipgloss.NewStyle().Foreground(t.Warning)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Success)

	t.Badge = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Background)).
		Background(t.Accent).
		Padding(0, 1)

	t.BadgeMuted = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(lipgloss.Color(p.SurfaceVariant)).
		Padding(0, 1)

	return t
}
