package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the terminal host paints with.
type Styles struct {
	Base        lipgloss.Style
	Title       lipgloss.Style
	TitleActive lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	CloseButton lipgloss.Style
	TabStrip    lipgloss.Style
	Border      lipgloss.Style
	Focused     lipgloss.Style
	Divider     lipgloss.Style
	Content     lipgloss.Style
	DropHint    lipgloss.Style
	DropMarker  lipgloss.Style
	Indicator   lipgloss.Style
	Help        lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles builds the styles for p.
func NewStyles(p Palette) *Styles {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Text)).
		Background(lipgloss.Color(p.Background))

	return &Styles{
		Base: base,
		Title: base.
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Muted)),
		TitleActive: base.
			Background(lipgloss.Color(p.Surface)).
			Bold(true),
		ActiveTab: base.
			Background(lipgloss.Color(p.SurfaceVariant)).
			Bold(true),
		InactiveTab: base.
			Background(lipgloss.Color(p.Surface)).
			Foreground(lipgloss.Color(p.Muted)),
		CloseButton: base.
			Background(lipgloss.Color(p.SurfaceVariant)).
			Foreground(lipgloss.Color(p.Destructive)),
		TabStrip: base.
			Background(lipgloss.Color(p.Surface)),
		Border: base.
			Foreground(lipgloss.Color(p.Border)),
		Focused: base.
			Foreground(lipgloss.Color(p.Accent)),
		Divider: base.
			Foreground(lipgloss.Color(p.Border)),
		Content: base,
		DropHint: base.
			Background(lipgloss.Color(p.SurfaceVariant)).
			Foreground(lipgloss.Color(p.Accent)),
		DropMarker: base.
			Foreground(lipgloss.Color(p.Accent)).
			Bold(true),
		Indicator: base.
			Background(lipgloss.Color(p.Accent)).
			Foreground(lipgloss.Color(p.Background)).
			Bold(true),
		Help: base.
			Foreground(lipgloss.Color(p.Muted)),
		Status: base.
			Foreground(lipgloss.Color(p.Accent)),
		Error: base.
			Foreground(lipgloss.Color(p.Destructive)),
	}
}
