package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
	"github.com/bnema/tabdock/internal/ui/layout"
)

// HandleMouse turns a terminal mouse event into header gestures, drag
// events and divider moves.
func (h *Host) HandleMouse(msg tea.MouseMsg) {
	p := cellCenter(msg.X, msg.Y)
	h.pointer = p

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			h.pressAt(p)
		}
	case tea.MouseActionMotion:
		h.motionAt(p)
	case tea.MouseActionRelease:
		h.releaseAt(p)
	}
}

func (h *Host) windowAt(p entity.Point) *Window {
	for _, w := range h.Windows() {
		if w.bounds.Contains(p) {
			return w
		}
	}
	return nil
}

// containerAt returns the container under p and p in its coordinates.
func (h *Host) containerAt(p entity.Point) (*entity.TabContainer, entity.Point) {
	w := h.windowAt(p)
	if w == nil {
		return nil, entity.Point{}
	}
	for _, cf := range w.containers {
		if cf.bounds.Contains(p) {
			return cf.container, entity.Point{X: p.X - cf.bounds.X, Y: p.Y - cf.bounds.Y}
		}
	}
	return nil, entity.Point{}
}

// headerAt returns the header under p and the column hit inside its label.
func (h *Host) headerAt(p entity.Point) (*header, label, int, bool) {
	c, local := h.containerAt(p)
	if c == nil || local.Y >= CellHeight {
		return nil, label{}, 0, false
	}
	col := int(local.X / CellWidth)
	for _, l := range stripLabels(c) {
		if col >= l.start && col < l.end {
			return h.headerFor(c, l.tab), l, col, true
		}
	}
	return nil, label{}, 0, false
}

func (h *Host) pressAt(p entity.Point) {
	if w := h.windowAt(p); w != nil && w.layout != nil {
		if handle, ok := w.layout.DividerAt(p, CellWidth); ok {
			h.divider = &handle
			return
		}
	}

	c, _ := h.containerAt(p)
	if c == nil {
		return
	}
	h.focused = c

	hd, l, col, ok := h.headerAt(p)
	if !ok {
		return
	}
	if !hd.attached() {
		_ = c.Select(l.tab)
		return
	}
	h.press = &pressState{header: hd, start: p, close: col == l.closeCol}
	call(hd.onPressed)
}

func (h *Host) motionAt(p entity.Point) {
	switch {
	case h.divider != nil:
		if err := layout.MoveDivider(*h.divider, p); err != nil {
			h.logger.Debug().Err(err).Msg("divider move failed")
		}
	case h.drag != nil:
		h.hoverAt(p)
	case h.press != nil && !h.press.close && !h.press.detected:
		if !moved(h.press.start, p) {
			return
		}
		h.press.detected = true
		call(h.press.header.onDragDetected)
		if h.drag != nil {
			h.hoverAt(p)
		}
	}
}

// moved reports whether the pointer left the press cell.
func moved(from, to entity.Point) bool {
	fc, fr := pointCell(from)
	tc, tr := pointCell(to)
	return fc != tc || fr != tr
}

func (h *Host) hoverAt(p entity.Point) {
	c, local := h.containerAt(p)
	if c != h.hover {
		if prev := h.pane(h.hover); prev != nil {
			prev.DragExited()
		}
		h.hover = c
		h.hoverAccepted = false
		if next := h.pane(c); next != nil {
			h.hoverAccepted = next.DragEntered(local)
		}
		return
	}
	if pane := h.pane(c); pane != nil {
		h.hoverAccepted = pane.DragOver(local)
	}
}

func (h *Host) releaseAt(p entity.Point) {
	press := h.press
	h.press = nil

	switch {
	case h.divider != nil:
		h.divider = nil
	case h.drag != nil:
		h.dropAt(p, press)
	case press != nil:
		call(press.header.onReleased)
		if !press.close {
			return
		}
		if hd, l, col, ok := h.headerAt(p); ok && hd == press.header && col == l.closeCol {
			call(hd.onClose)
		}
	}
}

// dropAt ends the drag at p. A release over no accepting pane is a drop
// outside every target.
func (h *Host) dropAt(p entity.Point, press *pressState) {
	h.drag = nil
	c, local := h.containerAt(p)
	if c != h.hover {
		if prev := h.pane(h.hover); prev != nil {
			prev.DragExited()
		}
	}
	h.hover, h.hoverAccepted = nil, false

	accepted := false
	if pane := h.pane(c); pane != nil {
		accepted = pane.Drop(local)
	}
	h.done(press, port.DragDone{DroppedOutside: !accepted, Pointer: p})
}

// CancelDrag aborts the drag in progress. The tab returns to its source.
func (h *Host) CancelDrag() bool {
	if h.drag == nil {
		return false
	}
	press := h.press
	h.press, h.drag = nil, nil
	if prev := h.pane(h.hover); prev != nil {
		prev.DragExited()
	}
	h.hover, h.hoverAccepted = nil, false
	h.done(press, port.DragDone{Pointer: h.pointer})
	return true
}

func (h *Host) done(press *pressState, done port.DragDone) {
	if press == nil || press.header.onDragDone == nil {
		return
	}
	press.header.onDragDone(done)
}
