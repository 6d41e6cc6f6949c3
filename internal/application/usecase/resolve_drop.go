package usecase

import "github.com/bnema/tabdock/internal/domain/entity"

const (
	// DefaultZoneSize is the side of each square quadrant hit zone.
	DefaultZoneSize = 30.0
	// DefaultZoneOffset is the distance from the container center to the
	// center of each quadrant zone.
	DefaultZoneOffset = 40.0
)

// Zones are the four quadrant hit zones of a container, in container
// coordinates. They form a cross around the container center.
type Zones struct {
	Left   entity.Rect
	Right  entity.Rect
	Top    entity.Rect
	Bottom entity.Rect
}

// QuadrantZones lays out the hit zones for a container of the given size.
// Non-positive zoneSize or offset fall back to the defaults.
func QuadrantZones(size entity.Size, zoneSize, offset float64) Zones {
	if zoneSize <= 0 {
		zoneSize = DefaultZoneSize
	}
	if offset <= 0 {
		offset = DefaultZoneOffset
	}
	cx, cy := size.Width/2, size.Height/2
	square := func(x, y float64) entity.Rect {
		return entity.Rect{X: x - zoneSize/2, Y: y - zoneSize/2, W: zoneSize, H: zoneSize}
	}
	return Zones{
		Left:   square(cx-offset, cy),
		Right:  square(cx+offset, cy),
		Top:    square(cx, cy-offset),
		Bottom: square(cx, cy+offset),
	}
}

// Hit returns the quadrant whose zone contains p, or QuadrantNone.
// Zones are tested left, right, top, bottom.
func (z Zones) Hit(p entity.Point) entity.Quadrant {
	switch {
	case z.Left.Contains(p):
		return entity.CenterLeft
	case z.Right.Contains(p):
		return entity.CenterRight
	case z.Top.Contains(p):
		return entity.TopCenter
	case z.Bottom.Contains(p):
		return entity.BottomCenter
	default:
		return entity.QuadrantNone
	}
}

// InsertionIndex resolves pointer x against the tab edge list
// [0, e1, e2, ...]. The first entry strictly greater than x at position
// i >= 1 gives index i-1 with the marker at edges[i-1]. Past every entry
// the index is tabCount and the marker sits on the last entry.
func InsertionIndex(edges []float64, x float64, tabCount int) (index int, markerX float64) {
	for i := 1; i < len(edges); i++ {
		if x < edges[i] {
			return i - 1, edges[i-1]
		}
	}
	if len(edges) == 0 {
		return tabCount, 0
	}
	return tabCount, edges[len(edges)-1]
}

// ResolveInput is the pointer state over a candidate container.
type ResolveInput struct {
	// Pointer is in the candidate's coordinates.
	Pointer  entity.Point
	Size     entity.Size
	Edges    []float64
	TabCount int

	ZoneSize   float64
	ZoneOffset float64
}

// ResolveDropTarget decides where a dropped tab would go. Quadrant zones
// exist only when the candidate already holds a tab.
func ResolveDropTarget(input ResolveInput) entity.DropTarget {
	if input.TabCount > 0 {
		zones := QuadrantZones(input.Size, input.ZoneSize, input.ZoneOffset)
		if q := zones.Hit(input.Pointer); q != entity.QuadrantNone {
			return entity.DropTarget{Quadrant: q}
		}
	}
	index, marker := InsertionIndex(input.Edges, input.Pointer.X, input.TabCount)
	return entity.DropTarget{Index: index, MarkerX: marker}
}

// QuadrantArea returns the half of a container a quadrant drop would take.
func QuadrantArea(q entity.Quadrant, size entity.Size) entity.Rect {
	w, h := size.Width, size.Height
	switch q {
	case entity.CenterLeft:
		return entity.Rect{W: w / 2, H: h}
	case entity.CenterRight:
		return entity.Rect{X: w / 2, W: w / 2, H: h}
	case entity.TopCenter:
		return entity.Rect{W: w, H: h / 2}
	case entity.BottomCenter:
		return entity.Rect{Y: h / 2, W: w, H: h - h/2}
	default:
		return entity.Rect{}
	}
}
