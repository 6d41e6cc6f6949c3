package tui

import (
	"unicode/utf8"

	"github.com/bnema/tabdock/internal/application/port"
	"github.com/bnema/tabdock/internal/domain/entity"
)

const closeGlyph = '×'

var _ port.HeaderNode = (*header)(nil)

// header is the node of one tab in one strip. Moving the tab to another
// container yields a new header.
type header struct {
	container *entity.TabContainer
	tab       *entity.Tab

	onPressed      func()
	onReleased     func()
	onDragDetected func()
	onDragDone     func(port.DragDone)
	onClose        func()
}

type headerKey struct {
	container *entity.TabContainer
	tab       *entity.Tab
}

func (h *header) Tab() *entity.Tab                     { return h.tab }
func (h *header) SetOnPressed(fn func())               { h.onPressed = fn }
func (h *header) SetOnReleased(fn func())              { h.onReleased = fn }
func (h *header) SetOnDragDetected(fn func())          { h.onDragDetected = fn }
func (h *header) SetOnDragDone(fn func(port.DragDone)) { h.onDragDone = fn }
func (h *header) SetOnCloseReleased(fn func())         { h.onClose = fn }

func (h *header) ClearHandlers() {
	h.onPressed = nil
	h.onReleased = nil
	h.onDragDetected = nil
	h.onDragDone = nil
	h.onClose = nil
}

func (h *header) attached() bool { return h.onPressed != nil }

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

// label is a tab header laid out in a strip. Columns are relative to the
// container's left edge.
type label struct {
	tab      *entity.Tab
	text     string
	start    int
	end      int
	closeCol int
	selected bool
}

func showsClose(c *entity.TabContainer, index int) bool {
	switch c.ClosingPolicy {
	case entity.ClosingAllTabs:
		return true
	case entity.ClosingSelectedTab:
		return index == c.SelectedIndex()
	default:
		return false
	}
}

// stripLabels lays out the headers of c as " title " plus "× " when the
// tab can be closed.
func stripLabels(c *entity.TabContainer) []label {
	labels := make([]label, 0, c.Len())
	col := 0
	for i, tab := range c.Tabs() {
		text := " " + tab.Title + " "
		l := label{tab: tab, start: col, closeCol: -1, selected: i == c.SelectedIndex()}
		if showsClose(c, i) {
			l.closeCol = col + utf8.RuneCountInString(text)
			text += string(closeGlyph) + " "
		}
		l.text = text
		l.end = col + utf8.RuneCountInString(text)
		col = l.end
		labels = append(labels, l)
	}
	return labels
}
