package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
	"github.com/bnema/tabdock/internal/ui/dock"
	"github.com/bnema/tabdock/internal/ui/layout"
)

var (
	// ErrNoGesture is returned by StartDrag outside a header press.
	ErrNoGesture = errors.New("no pointer gesture in progress")
	// ErrNoRoot is returned when opening a window without a tree.
	ErrNoRoot = errors.New("window root cannot be nil")
)

// maxSettleRounds bounds relayout and drain cycles per terminal event.
const maxSettleRounds = 16

var _ port.Toolkit = (*Host)(nil)

type timerMsg struct{ id int }

type hostDrag struct {
	container *entity.TabContainer
	tab       *entity.Tab
}

type pressState struct {
	header   *header
	start    entity.Point
	close    bool
	detected bool
}

// Host implements port.Toolkit on a terminal. It is driven by Model and
// every method runs on the bubbletea update goroutine.
type Host struct {
	logger zerolog.Logger
	dock   *dock.Dock

	cols, rows int
	windows    []*Window

	frames   map[*entity.TabContainer]*containerFrame
	owners   map[*entity.TabContainer]*Window
	headers  map[headerKey]*header
	overlays map[*entity.TabContainer]port.DropOverlay
	focused  *entity.TabContainer
	pointer  entity.Point

	posted    []func()
	timers    map[int]func()
	nextTimer int
	cmds      []tea.Cmd

	drag          *hostDrag
	press         *pressState
	divider       *layout.Handle
	hover         *entity.TabContainer
	hoverAccepted bool
}

// NewHost creates a host with an empty screen.
func NewHost(ctx context.Context) *Host {
	return &Host{
		logger:   logging.FromContext(ctx).With().Str("component", "tui-host").Logger(),
		frames:   make(map[*entity.TabContainer]*containerFrame),
		owners:   make(map[*entity.TabContainer]*Window),
		headers:  make(map[headerKey]*header),
		overlays: make(map[*entity.TabContainer]port.DropOverlay),
		timers:   make(map[int]func()),
	}
}

// SetDock connects the dock whose panes receive drag events.
func (h *Host) SetDock(d *dock.Dock) { h.dock = d }

// Resize sets the work area in cells.
func (h *Host) Resize(cols, rows int) {
	h.cols, h.rows = max(cols, 0), max(rows, 0)
}

// NewWindow creates a hidden window.
func (h *Host) NewWindow(spec port.WindowSpec) (*Window, error) {
	if spec.Root == nil {
		return nil, ErrNoRoot
	}
	w := &Window{
		host:        h,
		id:          spec.ID,
		title:       spec.Title,
		root:        spec.Root,
		owner:       spec.Owner,
		stylesheets: append([]string(nil), spec.Stylesheets...),
		requested:   spec.Bounds,
		bounds:      spec.Bounds,
	}
	h.windows = append(h.windows, w)
	h.logger.Debug().Str("window_id", w.id).Str("title", w.title).Msg("window created")
	return w, nil
}

// Windows returns the shown windows in tiling order.
func (h *Host) Windows() []*Window {
	out := make([]*Window, 0, len(h.windows))
	for _, w := range h.windows {
		if w.showing {
			out = append(out, w)
		}
	}
	return out
}

// Focused returns the container holding input focus.
func (h *Host) Focused() *entity.TabContainer { return h.focused }

// Frame returns the area of c from the last relayout.
func (h *Host) Frame(c *entity.TabContainer) (entity.Rect, bool) {
	f, ok := h.frames[c]
	if !ok {
		return entity.Rect{}, false
	}
	return f.bounds, true
}

// Overlay returns the drop overlay shown over c.
func (h *Host) Overlay(c *entity.TabContainer) (port.DropOverlay, bool) {
	ov, ok := h.overlays[c]
	return ov, ok
}

// Dragging reports whether a platform drag is in progress.
func (h *Host) Dragging() bool { return h.drag != nil }

func (h *Host) removeWindow(w *Window) {
	for i, other := range h.windows {
		if other == w {
			h.windows = append(h.windows[:i], h.windows[i+1:]...)
			break
		}
	}
	for _, cf := range w.containers {
		delete(h.frames, cf.container)
		delete(h.owners, cf.container)
		delete(h.overlays, cf.container)
		if h.focused == cf.container {
			h.focused = nil
		}
	}
	w.containers = nil
	w.layout = nil
	h.logger.Debug().Str("window_id", w.id).Msg("window closed")
}

// Relayout tiles the shown windows and arranges their trees.
func (h *Host) Relayout() {
	clear(h.frames)
	clear(h.owners)

	shown := h.Windows()
	if len(shown) > 0 && h.cols > 0 && h.rows > 0 {
		h.tile(shown)
		for _, w := range shown {
			h.arrange(w)
		}
	}

	for key := range h.headers {
		if _, ok := h.frames[key.container]; !ok || key.tab.Container() != key.container {
			delete(h.headers, key)
		}
	}
	for c := range h.overlays {
		if _, ok := h.frames[c]; !ok {
			delete(h.overlays, c)
		}
	}
	if _, ok := h.frames[h.focused]; !ok {
		h.focused = nil
		if len(shown) > 0 && len(shown[0].containers) > 0 {
			h.focused = shown[0].containers[0].container
		}
	}
}

// tile gives the first window two thirds of the width and stacks the
// others in the remaining column.
func (h *Host) tile(shown []*Window) {
	if len(shown) == 1 {
		shown[0].SetBounds(cellRect(0, 0, h.cols, h.rows))
		return
	}
	mainCols := h.cols * 2 / 3
	shown[0].SetBounds(cellRect(0, 0, mainCols, h.rows))

	rest := shown[1:]
	each := h.rows / len(rest)
	row := 0
	for i, w := range rest {
		rows := each
		if i == len(rest)-1 {
			rows = h.rows - row
		}
		w.SetBounds(cellRect(mainCols, row, h.cols-mainCols, rows))
		row += rows
	}
}

func (h *Host) arrange(w *Window) {
	w.layout, w.containers = nil, nil
	node := w.root.Node()
	if node == nil {
		return
	}
	l, err := layout.Arrange(node, w.treeArea(), layout.Options{
		DividerSize: entity.Size{Width: CellWidth, Height: CellHeight},
		Snap:        snap,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("window_id", w.id).Msg("arrange failed")
		return
	}
	w.layout = l
	for _, f := range l.Containers() {
		c := f.Node.(*entity.TabContainer)
		w.containers = append(w.containers, containerFrame{container: c, bounds: f.Bounds})
	}
	for i := range w.containers {
		cf := &w.containers[i]
		h.frames[cf.container] = cf
		h.owners[cf.container] = w
	}
}

// Settle relayouts and drains posted work until the tree is stable.
func (h *Host) Settle() {
	for range maxSettleRounds {
		h.Relayout()
		if len(h.posted) == 0 {
			return
		}
		h.flush()
	}
	h.logger.Warn().Msg("posted work did not settle")
}

func (h *Host) flush() {
	batch := h.posted
	h.posted = nil
	for _, fn := range batch {
		fn()
	}
}

// TakeCmds returns and clears the commands produced since the last call.
func (h *Host) TakeCmds() []tea.Cmd {
	cmds := h.cmds
	h.cmds = nil
	return cmds
}

func (h *Host) fireTimer(id int) {
	fn, ok := h.timers[id]
	if !ok {
		return
	}
	delete(h.timers, id)
	fn()
}

func (h *Host) pane(c *entity.TabContainer) *dock.Pane {
	if c == nil || h.dock == nil {
		return nil
	}
	return h.dock.Pane(c)
}

// HeaderNodes implements port.Toolkit.
func (h *Host) HeaderNodes(c *entity.TabContainer) ([]port.HeaderNode, bool) {
	if _, ok := h.frames[c]; !ok {
		return nil, false
	}
	nodes := make([]port.HeaderNode, 0, c.Len())
	for _, tab := range c.Tabs() {
		nodes = append(nodes, h.headerFor(c, tab))
	}
	return nodes, true
}

func (h *Host) headerFor(c *entity.TabContainer, tab *entity.Tab) *header {
	key := headerKey{container: c, tab: tab}
	hd, ok := h.headers[key]
	if !ok {
		hd = &header{container: c, tab: tab}
		h.headers[key] = hd
	}
	return hd
}

// TabEdges implements port.Toolkit.
func (h *Host) TabEdges(c *entity.TabContainer) ([]float64, bool) {
	if _, ok := h.frames[c]; !ok {
		return nil, false
	}
	labels := stripLabels(c)
	edges := make([]float64, len(labels))
	for i, l := range labels {
		edges[i] = float64(l.end) * CellWidth
	}
	return edges, true
}

// Size implements port.Toolkit.
func (h *Host) Size(c *entity.TabContainer) entity.Size {
	if f, ok := h.frames[c]; ok {
		return f.bounds.Size()
	}
	return entity.Size{}
}

// StartDrag implements port.Toolkit. A drag needs the header press that
// detected it.
func (h *Host) StartDrag(c *entity.TabContainer, tab *entity.Tab) error {
	if h.press == nil || h.press.header.tab != tab {
		return ErrNoGesture
	}
	h.drag = &hostDrag{container: c, tab: tab}
	h.logger.Debug().Str("tab_id", string(tab.ID)).Msg("terminal drag started")
	return nil
}

// RequestFocus implements port.Toolkit.
func (h *Host) RequestFocus(c *entity.TabContainer) { h.focused = c }

// PointerLocation implements port.Toolkit.
func (h *Host) PointerLocation() entity.Point { return h.pointer }

// ShowDropOverlay implements port.Toolkit.
func (h *Host) ShowDropOverlay(c *entity.TabContainer, overlay port.DropOverlay) {
	h.overlays[c] = overlay
}

// ClearDropOverlay implements port.Toolkit.
func (h *Host) ClearDropOverlay(c *entity.TabContainer) { delete(h.overlays, c) }

// OpenWindow implements port.Toolkit.
func (h *Host) OpenWindow(spec port.WindowSpec) (port.Window, error) {
	w, err := h.NewWindow(spec)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Post implements port.Toolkit.
func (h *Host) Post(fn func()) { h.posted = append(h.posted, fn) }

// After implements port.Toolkit with a bubbletea tick.
func (h *Host) After(delay time.Duration, fn func()) func() {
	id := h.nextTimer
	h.nextTimer++
	h.timers[id] = fn
	h.cmds = append(h.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
	return func() { delete(h.timers, id) }
}
