package dock

import (
	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/application/usecase"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/logging"
)

// attachGestures wires drag handlers on the pane's header nodes. When the
// strip is not realized yet it retries once after the header retry delay.
func (p *Pane) attachGestures(retry bool) {
	d := p.dock
	nodes, ok := d.toolkit.HeaderNodes(p.container)
	if !ok {
		if retry {
			d.toolkit.After(d.settings.HeaderRetryDelay, func() {
				if d.registered(p) {
					p.attachGestures(false)
				}
			})
			return
		}
		p.logger.Debug().Msg("tab headers unavailable, drag gestures not attached")
		return
	}

	p.headers = nodes
	for _, node := range nodes {
		p.addGesture(node)
	}
}

func (p *Pane) clearGestures() {
	for _, node := range p.headers {
		node.ClearHandlers()
	}
	p.headers = nil
}

func (p *Pane) addGesture(node port.HeaderNode) {
	d := p.dock
	node.SetOnCloseReleased(p.CloseSelected)
	node.SetOnPressed(func() { d.arm(p, node.Tab()) })
	node.SetOnReleased(func() { d.disarm(p) })
	node.SetOnDragDetected(func() { p.startDrag(node.Tab()) })
	node.SetOnDragDone(d.finishDrag)
}

// CloseSelected removes the selected tab unless the policy forbids closing.
func (p *Pane) CloseSelected() {
	if p.container.ClosingPolicy == entity.ClosingUnavailable {
		return
	}
	tab := p.container.Selected()
	if tab == nil {
		return
	}
	if _, err := p.container.Remove(tab); err != nil {
		p.logger.Debug().Err(err).Msg("close tab failed")
	}
}

// startDrag detaches tab from the pane and begins the platform drag.
func (p *Pane) startDrag(tab *entity.Tab) {
	d := p.dock
	if d.Dragging() {
		return
	}
	index := p.container.IndexOf(tab)
	if index < 0 {
		d.disarm(p)
		return
	}
	log := logging.FromContext(logging.WithTabID(p.ctx, string(tab.ID)))
	if !tab.Detachable() {
		d.disarm(p)
		log.Debug().Msg("tab is not detachable")
		return
	}

	d.session = &Session{
		state:         StateDragging,
		source:        p,
		tab:           tab,
		originalIndex: index,
	}
	tab.SuspendListeners()
	if _, err := p.container.Remove(tab); err != nil {
		log.Warn().Err(err).Msg("detach dragged tab failed")
	}

	log.Debug().Int("index", index).Msg("drag started")

	if err := d.toolkit.StartDrag(p.container, tab); err != nil {
		log.Warn().Err(err).Msg("platform drag failed to start")
		d.finishDrag(port.DragDone{})
	}
}

// finishDrag is the single teardown point of a gesture.
func (d *Dock) finishDrag(done port.DragDone) {
	s := d.session
	if !s.Dragging() {
		return
	}
	s.End(func() { d.teardown(s, done) })
}

func (d *Dock) teardown(s *Session, done port.DragDone) {
	tab, source := s.tab, s.source
	sourceWindow := source.Window()

	if tab.Container() == nil {
		restore := !done.DroppedOutside
		if done.DroppedOutside {
			if err := d.openFloating(source, tab, done.Pointer); err != nil {
				d.logger.Warn().Err(err).Msg("detach to floating window failed")
				restore = true
			}
		}
		if restore {
			d.restore(s)
		}
	}
	tab.ResumeListeners()

	d.session = nil
	if source.container.IsEmpty() {
		d.removeContainer(source)
	}
	if sourceWindow != nil {
		d.closeWindowIfEmpty(sourceWindow)
	}
}

func (d *Dock) restore(s *Session) {
	c := s.source.container
	index := s.originalIndex
	if index < 0 || index > c.Len() {
		index = c.Len()
	}
	if err := c.Insert(index, s.tab); err != nil {
		d.logger.Warn().Err(err).Msg("restore dragged tab failed")
		return
	}
	_ = c.Select(s.tab)
}

// accepts reports whether a tab from the current gesture may land here.
func (p *Pane) accepts() (*Session, bool) {
	s := p.dock.session
	if !s.Dragging() {
		return nil, false
	}
	return s, s.source.container.Scope == p.container.Scope
}

// DragEntered is called when a drag enters the pane. pointer is in the
// pane's coordinates. Returns whether the pane accepts the drag.
func (p *Pane) DragEntered(pointer entity.Point) bool {
	if _, ok := p.accepts(); !ok {
		return false
	}
	p.recomputeEdges()
	p.overlayShown = false
	p.repaint(pointer)
	return true
}

// DragOver is called as the pointer moves over the pane during a drag.
func (p *Pane) DragOver(pointer entity.Point) bool {
	if _, ok := p.accepts(); !ok {
		return false
	}
	p.repaint(pointer)
	return true
}

// DragExited clears the drop hint. The tree is not changed.
func (p *Pane) DragExited() {
	if p.overlayShown {
		p.dock.toolkit.ClearDropOverlay(p.container)
	}
	p.overlayShown = false
}

// Drop places the dragged tab according to the pointer position. Returns
// whether the drop was accepted.
func (p *Pane) Drop(pointer entity.Point) bool {
	s, ok := p.accepts()
	if !ok {
		return false
	}
	p.DragExited()

	d := p.dock
	tab := s.tab
	target := p.resolve(pointer)

	if target.IsQuadrant() {
		p.placeTab(tab, target.Quadrant)
		return true
	}

	index := target.Index
	if index > p.container.Len() {
		index = p.container.Len()
	}
	if s.source == p && index == s.originalIndex {
		return true
	}
	if err := p.container.Insert(index, tab); err != nil {
		p.logger.Warn().Err(err).Int("index", index).Msg("drop insert failed")
		return false
	}
	_ = p.container.Select(tab)
	d.queue.Post(func() { d.toolkit.RequestFocus(p.container) })
	return true
}

func (p *Pane) resolve(pointer entity.Point) entity.DropTarget {
	d := p.dock
	return usecase.ResolveDropTarget(usecase.ResolveInput{
		Pointer:    pointer,
		Size:       d.toolkit.Size(p.container),
		Edges:      p.edges,
		TabCount:   p.container.Len(),
		ZoneSize:   d.settings.ZoneSize,
		ZoneOffset: d.settings.ZoneOffset,
	})
}

func (p *Pane) repaint(pointer entity.Point) {
	d := p.dock
	size := d.toolkit.Size(p.container)
	target := p.resolve(pointer)

	var changed bool
	if target.IsQuadrant() {
		area := usecase.QuadrantArea(target.Quadrant, size)
		changed = p.dropHint.RefreshAdjacent(area.X, area.Y, area.W, area.H)
	} else {
		changed = p.dropHint.RefreshInsertion(target.MarkerX, size.Width, size.Height)
	}
	if !changed && p.overlayShown {
		return
	}

	path := p.dropHint.Path()
	d.toolkit.ShowDropOverlay(p.container, port.DropOverlay{
		StyleClass: path.StyleClass,
		Path:       path.String(),
		Indicator:  !p.container.IsEmpty(),
		Target:     target,
	})
	p.overlayShown = true
}

// placeTab docks tab in a new pane beside this one.
func (p *Pane) placeTab(tab *entity.Tab, q entity.Quadrant) {
	d := p.dock
	added := p.factory.Create(p)
	if added == nil {
		p.logger.Warn().Msg("pane factory returned nil")
		return
	}
	if err := added.container.Append(tab); err != nil {
		p.logger.Warn().Err(err).Msg("move tab to new pane failed")
		d.unregister(added)
		return
	}

	out, err := d.splits.Place(p.ctx, usecase.PlaceInput{
		Target:       p.container,
		Quadrant:     q,
		NewContainer: added.container,
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("quadrant", q.String()).Msg("split placement failed")
		// Leave the tab orphaned so teardown restores it.
		_, _ = added.container.Remove(tab)
		d.unregister(added)
		return
	}

	p.logger.Debug().
		Str("quadrant", q.String()).
		Str("case", out.Case.String()).
		Str("new_container_id", string(added.container.ID)).
		Msg("tab docked beside pane")
	d.queue.Post(func() { d.toolkit.RequestFocus(added.container) })
}
