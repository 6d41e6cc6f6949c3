package tui

import (
	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/ui/layout"
)

var _ port.Window = (*Window)(nil)

// containerFrame is a tab container placed on the grid.
type containerFrame struct {
	container *entity.TabContainer
	bounds    entity.Rect
}

// Window is a top-level window of the terminal host. The host tiles shown
// windows over the screen: the first window on the left, the others
// stacked in a column on the right.
type Window struct {
	host        *Host
	id          string
	title       string
	root        *entity.Root
	owner       port.Window
	stylesheets []string

	requested entity.Rect
	bounds    entity.Rect
	showing   bool
	closed    bool

	layout     *layout.Layout
	containers []containerFrame
}

func (w *Window) ID() string         { return w.id }
func (w *Window) Title() string      { return w.title }
func (w *Window) Root() *entity.Root { return w.root }
func (w *Window) Owner() port.Window { return w.owner }

// Stylesheets returns the stylesheets the window was opened with.
func (w *Window) Stylesheets() []string {
	out := make([]string, len(w.stylesheets))
	copy(out, w.stylesheets)
	return out
}

// Bounds returns the window area in engine coordinates.
func (w *Window) Bounds() entity.Rect { return w.bounds }

// SetBounds moves the window. Tiling overrides it on the next relayout.
func (w *Window) SetBounds(r entity.Rect) { w.bounds = r }

// Requested returns the bounds asked for when the window was opened.
func (w *Window) Requested() entity.Rect { return w.requested }

func (w *Window) Show() {
	if !w.closed {
		w.showing = true
	}
}

func (w *Window) Close() {
	if w.closed {
		return
	}
	w.showing = false
	w.closed = true
	w.host.removeWindow(w)
}

func (w *Window) IsShowing() bool { return w.showing }

// Layout returns the last arrangement of the window's tree, or nil.
func (w *Window) Layout() *layout.Layout { return w.layout }

// treeArea is the window minus its title row.
func (w *Window) treeArea() entity.Rect {
	b := w.bounds
	return entity.Rect{X: b.X, Y: b.Y + CellHeight, W: b.W, H: max(b.H-CellHeight, 0)}
}
