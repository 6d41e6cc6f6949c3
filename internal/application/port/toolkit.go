package port

import (
	"time"

	"github.com/bnema/tabdock/internal/domain/entity"
)

// DragDone is delivered to a header node when the platform gesture ends.
type DragDone struct {
	// DroppedOutside is set when the pointer was released over no drop target.
	DroppedOutside bool
	// Pointer is the screen position at release.
	Pointer entity.Point
}

// HeaderNode is the toolkit's low-level header widget for one tab.
// Toolkits recreate header nodes when the tab strip changes, so handlers
// are attached per node and must be set again after tabs are added.
type HeaderNode interface {
	// Tab returns the tab the header belongs to.
	Tab() *entity.Tab
	SetOnPressed(fn func())
	SetOnReleased(fn func())
	SetOnDragDetected(fn func())
	SetOnDragDone(fn func(DragDone))
	SetOnCloseReleased(fn func())
	// ClearHandlers removes every handler previously set.
	ClearHandlers()
}

// DropOverlay is what the toolkit draws over a container while a tab is
// dragged over it.
type DropOverlay struct {
	StyleClass string
	// Path is the outline in SVG path syntax.
	Path string
	// Indicator shows the dock position indicator (the four quadrant zones).
	Indicator bool
	Target    entity.DropTarget
}

// Toolkit is the host GUI toolkit as seen by the docking engine. Every
// method is called on the UI thread.
type Toolkit interface {
	// HeaderNodes returns the header nodes of c's tab strip in tab order.
	// ok is false when the strip is not realized yet (window not shown).
	HeaderNodes(c *entity.TabContainer) (nodes []HeaderNode, ok bool)
	// TabEdges returns the right edge x of every tab header, relative to c.
	TabEdges(c *entity.TabContainer) (edges []float64, ok bool)
	// Size returns the current size of c.
	Size(c *entity.TabContainer) entity.Size

	// StartDrag begins the platform drag-and-drop payload for tab.
	StartDrag(c *entity.TabContainer, tab *entity.Tab) error
	// RequestFocus moves input focus to c's selected content.
	RequestFocus(c *entity.TabContainer)
	// PointerLocation returns the pointer position in screen coordinates.
	PointerLocation() entity.Point

	ShowDropOverlay(c *entity.TabContainer, overlay DropOverlay)
	ClearDropOverlay(c *entity.TabContainer)

	// OpenWindow creates (but does not show) a top-level window.
	OpenWindow(spec WindowSpec) (Window, error)

	// Post runs fn after the current UI pass.
	Post(fn func())
	// After runs fn once after delay. The returned function cancels it.
	After(delay time.Duration, fn func()) (cancel func())
}
