// Package dock is the docking engine: it turns tab header gestures and drag
// events delivered by a host toolkit into mutations of the docking tree.
package dock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/tabdock/assets"
	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
	"github.com/bnema/tabdock/internal/ui/mainloop"
)

// Settings are the tunables shared by every pane of a dock.
type Settings struct {
	DefaultScope     string
	ClosingPolicy    entity.ClosingPolicy
	FloatingWidth    float64
	FloatingHeight   float64
	HeaderRetryDelay time.Duration
	ZoneSize         float64
	ZoneOffset       float64
	// Stylesheets applied to floating windows whose source window has none.
	Stylesheets []string
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		ClosingPolicy:    entity.ClosingSelectedTab,
		FloatingWidth:    400,
		FloatingHeight:   400,
		HeaderRetryDelay: 500 * time.Millisecond,
		ZoneSize:         usecase.DefaultZoneSize,
		ZoneOffset:       usecase.DefaultZoneOffset,
		Stylesheets:      []string{assets.DefaultStylesheetName},
	}
}

// Config holds the collaborators of a Dock.
type Config struct {
	Toolkit  port.Toolkit
	Settings Settings
	// IDGenerator names new containers, splits and windows. Defaults to uuids.
	IDGenerator usecase.IDGenerator
}

// Dock owns the drag session, the deferred task queue and the registry of
// panes created from it. All methods run on the UI thread.
type Dock struct {
	toolkit  port.Toolkit
	settings Settings
	newID    usecase.IDGenerator
	splits   *usecase.ManageSplitsUseCase

	queue     *mainloop.Queue
	coalescer *mainloop.Coalescer

	ctx    context.Context
	logger zerolog.Logger

	session *Session

	panes       []*Pane
	byContainer map[*entity.TabContainer]*Pane
	windows     map[*entity.Root]port.Window
	floating    []*FloatingWindow
}

// New creates a dock driving cfg.Toolkit.
func New(ctx context.Context, cfg Config) *Dock {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating dock")

	newID := cfg.IDGenerator
	if newID == nil {
		newID = uuid.NewString
	}
	settings := cfg.Settings
	defaults := DefaultSettings()
	if settings.FloatingWidth <= 0 {
		settings.FloatingWidth = defaults.FloatingWidth
	}
	if settings.FloatingHeight <= 0 {
		settings.FloatingHeight = defaults.FloatingHeight
	}
	if settings.HeaderRetryDelay <= 0 {
		settings.HeaderRetryDelay = defaults.HeaderRetryDelay
	}

	ctx = logging.WithComponent(ctx, "dock")
	logger := *logging.FromContext(ctx)
	queue := mainloop.NewQueue(cfg.Toolkit.Post)

	return &Dock{
		toolkit:     cfg.Toolkit,
		settings:    settings,
		newID:       newID,
		splits:      usecase.NewManageSplitsUseCase(newID),
		queue:       queue,
		coalescer:   mainloop.NewCoalescer(queue),
		ctx:         ctx,
		logger:      logger,
		byContainer: make(map[*entity.TabContainer]*Pane),
		windows:     make(map[*entity.Root]port.Window),
	}
}

// Settings returns the dock settings.
func (d *Dock) Settings() Settings { return d.settings }

// Session returns the current gesture, or nil when idle.
func (d *Dock) Session() *Session { return d.session }

// Dragging reports whether a tab is in flight.
func (d *Dock) Dragging() bool { return d.session.Dragging() }

// NewPane registers a pane driving c. A nil c gets a fresh container in
// the default scope.
func (d *Dock) NewPane(c *entity.TabContainer) *Pane {
	if existing := d.byContainer[c]; c != nil && existing != nil {
		return existing
	}
	if c == nil {
		c = entity.NewTabContainer(entity.ContainerID(d.newID()))
		c.Scope = d.settings.DefaultScope
		c.ClosingPolicy = d.settings.ClosingPolicy
	}

	p := newPane(d, c)
	d.panes = append(d.panes, p)
	d.byContainer[c] = p
	return p
}

// Pane returns the pane driving c, or nil.
func (d *Dock) Pane(c *entity.TabContainer) *Pane {
	return d.byContainer[c]
}

// Panes returns every registered pane in creation order.
func (d *Dock) Panes() []*Pane {
	out := make([]*Pane, len(d.panes))
	copy(out, d.panes)
	return out
}

// RegisterWindow makes w the window of every pane in w.Root()'s tree.
func (d *Dock) RegisterWindow(w port.Window) {
	if w == nil || w.Root() == nil {
		return
	}
	d.windows[w.Root()] = w
}

// WindowShown attaches header gestures for every pane shown in w. Hosts
// call it once the window is on screen.
func (d *Dock) WindowShown(w port.Window) {
	if w == nil || w.Root() == nil {
		return
	}
	for _, c := range w.Root().TabContainers() {
		if p := d.byContainer[c]; p != nil {
			p.attachGestures(true)
		}
	}
}

// FloatingWindows returns the windows opened by detaching tabs.
func (d *Dock) FloatingWindows() []*FloatingWindow {
	out := make([]*FloatingWindow, len(d.floating))
	copy(out, d.floating)
	return out
}

// Close drops pending deferred work.
func (d *Dock) Close() {
	d.coalescer.Destroy()
	d.queue.Destroy()
}

func (d *Dock) windowOf(c *entity.TabContainer) port.Window {
	root := entity.TopRoot(c)
	if root == nil {
		return nil
	}
	return d.windows[root]
}

func (d *Dock) floatingFor(w port.Window) *FloatingWindow {
	if w == nil {
		return nil
	}
	for _, fw := range d.floating {
		if fw.window == w {
			return fw
		}
	}
	return nil
}

func (d *Dock) registered(p *Pane) bool {
	return p != nil && d.byContainer[p.container] == p
}

func (d *Dock) unregister(p *Pane) {
	if !d.registered(p) {
		return
	}
	delete(d.byContainer, p.container)
	for i, other := range d.panes {
		if other == p {
			d.panes = append(d.panes[:i], d.panes[i+1:]...)
			break
		}
	}
	p.release()
}

func (d *Dock) arm(p *Pane, tab *entity.Tab) {
	if d.session != nil || tab == nil {
		return
	}
	if err := p.container.Select(tab); err != nil {
		return
	}
	d.session = &Session{state: StateArmed, source: p, tab: tab, originalIndex: -1}
}

func (d *Dock) disarm(p *Pane) {
	if d.session.State() == StateArmed && d.session.source == p {
		d.session = nil
	}
}
