package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/repository"
)

// LayoutsRenderer renders the output of the layouts subcommands.
type LayoutsRenderer struct {
	theme *Theme
}

func NewLayoutsRenderer(theme *Theme) *LayoutsRenderer {
	return &LayoutsRenderer{theme: theme}
}

func (r *LayoutsRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsRenderer) RenderList(items []repository.LayoutSummary, current string) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n\n", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts")))
	for _, item := range items {
		b.WriteString(r.renderOne(item, item.Name == current))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: `tabdock demo --layout <name>` opens a layout."))
	return b.String()
}

func (r *LayoutsRenderer) renderOne(item repository.LayoutSummary, current bool) string {
	marker, markerStyle := " ", r.theme.Subtle
	if current {
		marker, markerStyle = "●", r.theme.Highlight
	}

	tabs := "tabs"
	if item.TabCount == 1 {
		tabs = "tab"
	}

	return fmt.Sprintf("%s %s  %s  %s",
		markerStyle.Render(marker),
		r.theme.Highlight.Render(item.Name),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d %s", item.TabCount, tabs)),
		r.theme.Subtle.Render(IconClock+" "+usecase.GetRelativeTime(item.UpdatedAt)),
	)
}

func (r *LayoutsRenderer) RenderDeleted(name string) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(name),
	)
}

func (r *LayoutsRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
