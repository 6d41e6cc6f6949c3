package dock

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
)

const tabWidth = 50.0

type fakeHeader struct {
	tab *entity.Tab

	onPressed      func()
	onReleased     func()
	onDragDetected func()
	onDragDone     func(port.DragDone)
	onClose        func()
}

func (h *fakeHeader) Tab() *entity.Tab                     { return h.tab }
func (h *fakeHeader) SetOnPressed(fn func())               { h.onPressed = fn }
func (h *fakeHeader) SetOnReleased(fn func())              { h.onReleased = fn }
func (h *fakeHeader) SetOnDragDetected(fn func())          { h.onDragDetected = fn }
func (h *fakeHeader) SetOnDragDone(fn func(port.DragDone)) { h.onDragDone = fn }
func (h *fakeHeader) SetOnCloseReleased(fn func())         { h.onClose = fn }

func (h *fakeHeader) ClearHandlers() {
	h.onPressed, h.onReleased, h.onDragDetected, h.onDragDone, h.onClose = nil, nil, nil, nil, nil
}

type fakeWindow struct {
	id          string
	root        *entity.Root
	owner       port.Window
	stylesheets []string
	bounds      entity.Rect
	showing     bool
	closed      bool
}

func newFakeWindow(root *entity.Root) *fakeWindow {
	return &fakeWindow{id: root.ID, root: root}
}

func (w *fakeWindow) ID() string              { return w.id }
func (w *fakeWindow) Root() *entity.Root      { return w.root }
func (w *fakeWindow) Owner() port.Window      { return w.owner }
func (w *fakeWindow) Stylesheets() []string   { return w.stylesheets }
func (w *fakeWindow) Bounds() entity.Rect     { return w.bounds }
func (w *fakeWindow) SetBounds(r entity.Rect) { w.bounds = r }
func (w *fakeWindow) Show()                   { w.showing = true }
func (w *fakeWindow) IsShowing() bool         { return w.showing }
func (w *fakeWindow) Close()                  { w.showing, w.closed = false, true }

type afterCall struct {
	delay    time.Duration
	fn       func()
	canceled bool
}

type fakeToolkit struct {
	posted []func()
	after  []*afterCall

	unrealized map[*entity.TabContainer]bool
	nodes      map[*entity.TabContainer][]*fakeHeader

	started  []*entity.Tab
	startErr error

	overlays []port.DropOverlay
	cleared  int
	focused  []*entity.TabContainer

	opened  []port.WindowSpec
	windows []*fakeWindow
	openErr error
}

func newFakeToolkit() *fakeToolkit {
	return &fakeToolkit{
		unrealized: make(map[*entity.TabContainer]bool),
		nodes:      make(map[*entity.TabContainer][]*fakeHeader),
	}
}

func (tk *fakeToolkit) HeaderNodes(c *entity.TabContainer) ([]port.HeaderNode, bool) {
	if tk.unrealized[c] {
		return nil, false
	}
	headers := make([]*fakeHeader, 0, c.Len())
	nodes := make([]port.HeaderNode, 0, c.Len())
	for _, tab := range c.Tabs() {
		h := &fakeHeader{tab: tab}
		headers = append(headers, h)
		nodes = append(nodes, h)
	}
	tk.nodes[c] = headers
	return nodes, true
}

func (tk *fakeToolkit) TabEdges(c *entity.TabContainer) ([]float64, bool) {
	if tk.unrealized[c] {
		return nil, false
	}
	edges := make([]float64, c.Len())
	for i := range edges {
		edges[i] = tabWidth * float64(i+1)
	}
	return edges, true
}

func (tk *fakeToolkit) Size(*entity.TabContainer) entity.Size {
	return entity.Size{Width: 400, Height: 400}
}

func (tk *fakeToolkit) StartDrag(_ *entity.TabContainer, tab *entity.Tab) error {
	if tk.startErr != nil {
		return tk.startErr
	}
	tk.started = append(tk.started, tab)
	return nil
}

func (tk *fakeToolkit) RequestFocus(c *entity.TabContainer) { tk.focused = append(tk.focused, c) }
func (tk *fakeToolkit) PointerLocation() entity.Point       { return entity.Point{} }

func (tk *fakeToolkit) ShowDropOverlay(_ *entity.TabContainer, o port.DropOverlay) {
	tk.overlays = append(tk.overlays, o)
}

func (tk *fakeToolkit) ClearDropOverlay(*entity.TabContainer) { tk.cleared++ }

func (tk *fakeToolkit) OpenWindow(spec port.WindowSpec) (port.Window, error) {
	if tk.openErr != nil {
		return nil, tk.openErr
	}
	tk.opened = append(tk.opened, spec)
	w := &fakeWindow{
		id:          spec.ID,
		root:        spec.Root,
		owner:       spec.Owner,
		stylesheets: spec.Stylesheets,
		bounds:      spec.Bounds,
	}
	tk.windows = append(tk.windows, w)
	return w, nil
}

func (tk *fakeToolkit) Post(fn func()) { tk.posted = append(tk.posted, fn) }

func (tk *fakeToolkit) After(delay time.Duration, fn func()) func() {
	call := &afterCall{delay: delay, fn: fn}
	tk.after = append(tk.after, call)
	return func() { call.canceled = true }
}

// run drains posted work, including work posted while draining.
func (tk *fakeToolkit) run() {
	for len(tk.posted) > 0 {
		fn := tk.posted[0]
		tk.posted = tk.posted[1:]
		fn()
	}
}

func (tk *fakeToolkit) header(t *testing.T, c *entity.TabContainer, i int) *fakeHeader {
	t.Helper()
	headers := tk.nodes[c]
	if i >= len(headers) {
		t.Fatalf("container %s has %d headers, want index %d", c.ID, len(headers), i)
	}
	return headers[i]
}

func testContext() context.Context {
	return logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
}

func newTestDock(t *testing.T) (*Dock, *fakeToolkit) {
	t.Helper()
	tk := newFakeToolkit()
	n := 0
	d := New(testContext(), Config{
		Toolkit:  tk,
		Settings: DefaultSettings(),
		IDGenerator: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	t.Cleanup(d.Close)
	return d, tk
}

// newWindow shows a window whose tree is a single pane holding titles.
func newWindow(d *Dock, tk *fakeToolkit, id string, titles ...string) (*Pane, *fakeWindow) {
	c := entity.NewTabContainer(entity.ContainerID(id))
	p := d.NewPane(c)
	w := newFakeWindow(entity.NewRoot("root-"+id, c))
	d.RegisterWindow(w)
	for _, title := range titles {
		p.AddTab(title, nil)
	}
	w.Show()
	d.WindowShown(w)
	tk.run()
	return p, w
}

// startDrag presses the i-th header of p and detects a drag on it.
func startDrag(t *testing.T, tk *fakeToolkit, p *Pane, i int) *fakeHeader {
	t.Helper()
	h := tk.header(t, p.Container(), i)
	h.onPressed()
	h.onDragDetected()
	return h
}

func titles(c *entity.TabContainer) []string {
	out := make([]string, 0, c.Len())
	for _, tab := range c.Tabs() {
		out = append(out, tab.Title)
	}
	return out
}
