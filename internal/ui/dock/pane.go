package dock

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
	"github.com/bnema/tabdock/internal/ui/hint"
)

// Pane is one docking engine instance: it drives a single tab container,
// accepts tabs dragged over it and starts drags from its tab headers.
type Pane struct {
	dock      *Dock
	container *entity.TabContainer
	ctx       context.Context
	logger    zerolog.Logger

	factory      PaneFactory
	sceneFactory SceneFactory
	ownerFactory OwnerFactory
	dropHint     hint.Renderer
	onSibling    func(sibling *Pane)

	headers      []port.HeaderNode
	edges        []float64
	overlayShown bool
	unsubscribe  func()
}

func newPane(d *Dock, c *entity.TabContainer) *Pane {
	ctx := logging.WithContainerID(d.ctx, string(c.ID))
	p := &Pane{
		dock:         d,
		container:    c,
		ctx:          ctx,
		logger:       *logging.FromContext(ctx),
		factory:      &DefaultPaneFactory{},
		sceneFactory: defaultSceneFactory,
		dropHint:     hint.New(),
		edges:        []float64{0},
	}
	p.ownerFactory = defaultOwnerFactory(p)
	p.unsubscribe = c.OnTabsChanged(p.onTabsChanged)
	return p
}

// Container returns the tab container the pane drives.
func (p *Pane) Container() *entity.TabContainer { return p.container }

// Dock returns the dock the pane belongs to.
func (p *Pane) Dock() *Dock { return p.dock }

// Window returns the window showing the pane, or nil.
func (p *Pane) Window() port.Window { return p.dock.windowOf(p.container) }

// Scope returns the drag compatibility partition.
func (p *Pane) Scope() string { return p.container.Scope }

// SetScope sets the drag compatibility partition. Only panes sharing a
// scope exchange tabs.
func (p *Pane) SetScope(scope string) { p.container.Scope = scope }

// CloseIfEmpty reports whether the pane leaves the tree once empty.
func (p *Pane) CloseIfEmpty() bool { return p.container.CloseIfEmpty }

// SetCloseIfEmpty sets whether the pane leaves the tree once empty.
func (p *Pane) SetCloseIfEmpty(v bool) { p.container.CloseIfEmpty = v }

// ClosingPolicy returns the tab closing policy.
func (p *Pane) ClosingPolicy() entity.ClosingPolicy { return p.container.ClosingPolicy }

// SetClosingPolicy sets the tab closing policy.
func (p *Pane) SetClosingPolicy(policy entity.ClosingPolicy) { p.container.ClosingPolicy = policy }

// PaneFactory returns the factory used on split and detach.
func (p *Pane) PaneFactory() PaneFactory { return p.factory }

// SetPaneFactory replaces the factory used on split and detach.
func (p *Pane) SetPaneFactory(f PaneFactory) error {
	if f == nil {
		return ErrNilPaneFactory
	}
	p.factory = f
	return nil
}

// SceneFactory returns the floating window scene factory.
func (p *Pane) SceneFactory() SceneFactory { return p.sceneFactory }

// SetSceneFactory replaces the floating window scene factory. nil restores the default.
func (p *Pane) SetSceneFactory(f SceneFactory) {
	if f == nil {
		f = defaultSceneFactory
	}
	p.sceneFactory = f
}

// OwnerFactory returns the floating window owner factory.
func (p *Pane) OwnerFactory() OwnerFactory { return p.ownerFactory }

// SetOwnerFactory replaces the floating window owner factory. nil restores the default.
func (p *Pane) SetOwnerFactory(f OwnerFactory) {
	if f == nil {
		f = defaultOwnerFactory(p)
	}
	p.ownerFactory = f
}

// DropHint returns the drop hint renderer.
func (p *Pane) DropHint() hint.Renderer { return p.dropHint }

// SetDropHint replaces the drop hint renderer. nil restores the default.
func (p *Pane) SetDropHint(r hint.Renderer) {
	if r == nil {
		r = hint.New()
	}
	p.dropHint = r
}

// SetOnClosedPassSibling registers fn to receive the sibling taking over
// when this persistent pane is removed for being empty. Owners holding a
// reference to the pane use it to swap to the sibling.
func (p *Pane) SetOnClosedPassSibling(fn func(sibling *Pane)) { p.onSibling = fn }

// AddTab appends a new detachable tab and returns it.
func (p *Pane) AddTab(title string, content any) *entity.Tab {
	tab := entity.NewTab(entity.TabID(p.dock.newID()), title, content)
	if err := p.container.Append(tab); err != nil {
		p.logger.Warn().Err(err).Str("title", title).Msg("failed to add tab")
		return nil
	}
	return tab
}

// TabEdges returns the cached tab edge list [0, e1, e2, ...].
func (p *Pane) TabEdges() []float64 {
	out := make([]float64, len(p.edges))
	copy(out, p.edges)
	return out
}

func (p *Pane) edgesKey() string { return "tab-edges:" + string(p.container.ID) }

func (p *Pane) showing() bool {
	w := p.Window()
	return w != nil && w.IsShowing()
}

func (p *Pane) onTabsChanged(change entity.TabsChange) {
	d := p.dock
	if change.WasAdded() {
		// Header nodes are recreated by the toolkit, and a pane created by a
		// split only joins a window after this notification.
		d.queue.Post(func() {
			if !d.registered(p) || !p.showing() {
				return
			}
			p.clearGestures()
			p.attachGestures(true)
		})
		p.scheduleEdges()
	}
	if change.WasRemoved() {
		p.scheduleEdges()
		if d.Dragging() {
			return
		}
		if w := p.Window(); w != nil {
			d.closeWindowIfEmpty(w)
		}
		if p.container.IsEmpty() {
			d.removeContainer(p)
		}
	}
}

func (p *Pane) scheduleEdges() {
	p.dock.coalescer.Post(p.edgesKey(), p.recomputeEdges)
}

func (p *Pane) recomputeEdges() {
	p.edges = append(p.edges[:0], 0)
	edges, ok := p.dock.toolkit.TabEdges(p.container)
	if !ok {
		return
	}
	p.edges = append(p.edges, edges...)
}

// release detaches the pane from its container and the toolkit.
func (p *Pane) release() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.clearGestures()
	p.dock.coalescer.Cancel(p.edgesKey())
}
