package entity

// Quadrant names an edge zone of a tab container. Dropping a tab on a
// quadrant splits the container and puts the tab in a new adjacent pane.
type Quadrant int

const (
	QuadrantNone Quadrant = iota
	CenterLeft
	CenterRight
	TopCenter
	BottomCenter
)

func (q Quadrant) String() string {
	switch q {
	case CenterLeft:
		return "CENTER_LEFT"
	case CenterRight:
		return "CENTER_RIGHT"
	case TopCenter:
		return "TOP_CENTER"
	case BottomCenter:
		return "BOTTOM_CENTER"
	default:
		return "NONE"
	}
}

// AddToLast reports whether the new pane goes after the target.
func (q Quadrant) AddToLast() bool {
	return q == CenterRight || q == BottomCenter
}

// Orientation returns the split orientation the quadrant requests.
func (q Quadrant) Orientation() Orientation {
	if q == TopCenter || q == BottomCenter {
		return Vertical
	}
	return Horizontal
}

// DropTarget is the resolved placement for the pointer over a container:
// either a quadrant, or an insertion index with the x position of the
// insertion marker.
type DropTarget struct {
	Quadrant Quadrant
	Index    int
	MarkerX  float64
}

// IsQuadrant reports whether the target is an adjacent-split placement.
func (t DropTarget) IsQuadrant() bool {
	return t.Quadrant != QuadrantNone
}
