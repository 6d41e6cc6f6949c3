// Package layout assigns screen areas to the nodes of a docking tree. Hosts
// use it to place tab containers and split handles.
package layout

import (
	"errors"

	"github.com/bnema/tabdock/internal/domain/entity"
)

// ErrNilRoot is returned when arranging an empty tree.
var ErrNilRoot = errors.New("root node is nil")

// ErrNodeNotFound is returned when a node lookup fails.
var ErrNodeNotFound = errors.New("node not found")

// Options tune the arrangement.
type Options struct {
	// DividerSize is the thickness of the handle between split children:
	// Width for horizontal splits, Height for vertical ones.
	DividerSize entity.Size
	// Snap, when set, aligns every frame and divider, e.g. to a cell grid.
	Snap func(entity.Rect) entity.Rect
}

// Frame is the area assigned to one node.
type Frame struct {
	Node     entity.Node
	Bounds   entity.Rect
	Children []*Frame
	// Dividers are the handles between consecutive children.
	Dividers []entity.Rect
}

// Layout is an arranged tree.
type Layout struct {
	root       *Frame
	byID       map[string]*Frame
	containers []*Frame
	splits     []*Frame
	opts       Options
}

// Arrange lays out the tree under root inside bounds.
func Arrange(root entity.Node, bounds entity.Rect, opts Options) (*Layout, error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	opts.DividerSize.Width = max(opts.DividerSize.Width, 0)
	opts.DividerSize.Height = max(opts.DividerSize.Height, 0)
	l := &Layout{byID: make(map[string]*Frame), opts: opts}
	l.root = l.arrange(root, bounds)
	return l, nil
}

func (l *Layout) arrange(n entity.Node, bounds entity.Rect) *Frame {
	if l.opts.Snap != nil {
		bounds = l.opts.Snap(bounds)
	}
	f := &Frame{Node: n, Bounds: bounds}
	l.byID[n.NodeID()] = f

	split, ok := n.(*entity.SplitContainer)
	if !ok {
		l.containers = append(l.containers, f)
		return f
	}
	l.splits = append(l.splits, f)

	children := split.Children()
	if len(children) == 0 {
		return f
	}
	gap := l.opts.DividerSize.Width
	if split.Orientation() == entity.Vertical {
		gap = l.opts.DividerSize.Height
	}
	areas, dividers := divide(bounds, split.Orientation(), split.Dividers(), len(children), gap)
	if l.opts.Snap != nil {
		for i := range dividers {
			dividers[i] = l.opts.Snap(dividers[i])
		}
	}
	f.Dividers = dividers
	for i, child := range children {
		f.Children = append(f.Children, l.arrange(child, areas[i]))
	}
	return f
}

// divide cuts bounds into n areas along orientation. positions are the
// divider fractions; a mismatched list falls back to an even split.
func divide(bounds entity.Rect, o entity.Orientation, positions []float64, n int, gap float64) ([]entity.Rect, []entity.Rect) {
	if len(positions) != n-1 {
		positions = make([]float64, n-1)
		for i := range positions {
			positions[i] = float64(i+1) / float64(n)
		}
	}

	extent, origin := bounds.W, bounds.X
	if o == entity.Vertical {
		extent, origin = bounds.H, bounds.Y
	}

	areas := make([]entity.Rect, 0, n)
	dividers := make([]entity.Rect, 0, n-1)
	start := origin
	for i := 0; i < n; i++ {
		end := origin + extent
		if i < n-1 {
			end = origin + positions[i]*extent - gap/2
		}
		if end < start {
			end = start
		}
		areas = append(areas, span(bounds, o, start, end-start))
		if i < n-1 {
			dividers = append(dividers, span(bounds, o, end, gap))
			start = end + gap
		}
	}
	return areas, dividers
}

func span(bounds entity.Rect, o entity.Orientation, start, length float64) entity.Rect {
	if o == entity.Vertical {
		return entity.Rect{X: bounds.X, Y: start, W: bounds.W, H: length}
	}
	return entity.Rect{X: start, Y: bounds.Y, W: length, H: bounds.H}
}

// Root returns the frame of the root node.
func (l *Layout) Root() *Frame { return l.root }

// Bounds returns the area of the node with the given id.
func (l *Layout) Bounds(nodeID string) (entity.Rect, error) {
	f, ok := l.byID[nodeID]
	if !ok {
		return entity.Rect{}, ErrNodeNotFound
	}
	return f.Bounds, nil
}

// Containers returns the tab container frames in tree order.
func (l *Layout) Containers() []*Frame {
	out := make([]*Frame, len(l.containers))
	copy(out, l.containers)
	return out
}

// ContainerAt returns the tab container under p and p translated into its
// coordinates, or nil when p is over a divider or outside the tree.
func (l *Layout) ContainerAt(p entity.Point) (*entity.TabContainer, entity.Point) {
	for _, f := range l.containers {
		if f.Bounds.Contains(p) {
			c := f.Node.(*entity.TabContainer)
			return c, entity.Point{X: p.X - f.Bounds.X, Y: p.Y - f.Bounds.Y}
		}
	}
	return nil, entity.Point{}
}

// NodeCount returns the number of arranged nodes.
func (l *Layout) NodeCount() int { return len(l.byID) }
