package dock

import (
	"errors"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
)

// ErrNoScene is returned when a scene factory yields a tree without the
// new pane's container.
var ErrNoScene = errors.New("scene does not contain the detached pane")

// FloatingWindow is a window opened by dropping a tab outside every pane.
type FloatingWindow struct {
	window port.Window
	// Pane is the pane created to hold the detached tab.
	Pane *Pane
}

// Window returns the host window.
func (fw *FloatingWindow) Window() port.Window { return fw.window }

// openFloating moves tab into a new pane shown in a new window centred
// horizontally on pointer.
func (d *Dock) openFloating(source *Pane, tab *entity.Tab, pointer entity.Point) error {
	p := source.factory.Create(source)
	if p == nil {
		return errors.New("pane factory returned nil")
	}

	scene := source.sceneFactory(p)
	node := scene.Node
	if node == nil {
		node = p.container
	}
	size := scene.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = entity.Size{Width: d.settings.FloatingWidth, Height: d.settings.FloatingHeight}
	}

	root := entity.NewRoot(d.newID(), node)
	if entity.TopRoot(p.container) != root {
		d.unregister(p)
		return ErrNoScene
	}

	var stylesheets []string
	if w := source.Window(); w != nil {
		stylesheets = w.Stylesheets()
	}
	if len(stylesheets) == 0 {
		stylesheets = d.settings.Stylesheets
	}

	win, err := d.toolkit.OpenWindow(port.WindowSpec{
		ID:    root.ID,
		Title: tab.Title,
		Bounds: entity.Rect{
			X: pointer.X - size.Width/2,
			Y: pointer.Y,
			W: size.Width,
			H: size.Height,
		},
		Owner:       source.ownerFactory(p),
		Stylesheets: stylesheets,
		Root:        root,
	})
	if err != nil {
		d.unregister(p)
		return err
	}

	d.floating = append(d.floating, &FloatingWindow{window: win, Pane: p})
	d.windows[root] = win
	win.Show()

	if err := p.container.Append(tab); err != nil {
		d.closeWindow(win)
		return err
	}
	_ = p.container.Select(tab)

	d.logger.Debug().
		Str("window_id", root.ID).
		Str("tab_id", string(tab.ID)).
		Float64("x", pointer.X).
		Float64("y", pointer.Y).
		Msg("tab detached to floating window")
	return nil
}

// closeWindowIfEmpty closes w when it is a floating window whose tree
// holds no tab. Main windows stay open.
func (d *Dock) closeWindowIfEmpty(w port.Window) {
	if d.floatingFor(w) == nil {
		return
	}
	for _, p := range d.panes {
		if p.Window() == w && !p.container.IsEmpty() {
			return
		}
	}
	if root := w.Root(); root != nil {
		for _, c := range root.TabContainers() {
			if !c.IsEmpty() {
				return
			}
		}
	}
	d.closeWindow(w)
}

func (d *Dock) closeWindow(w port.Window) {
	root := w.Root()
	if root != nil {
		for _, c := range root.TabContainers() {
			d.unregister(d.byContainer[c])
		}
		delete(d.windows, root)
	}
	for i, fw := range d.floating {
		if fw.window == w {
			d.floating = append(d.floating[:i], d.floating[i+1:]...)
			break
		}
	}
	w.Close()
	d.logger.Debug().Msg("closed empty floating window")
}
