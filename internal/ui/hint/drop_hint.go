package hint

import "math"

// StyleClass is the style class carried by drop hint paths.
const StyleClass = "drop-path"

// Renderer produces the drop hint outline. Refresh methods report whether
// the path was regenerated; an unchanged geometry keeps the previous path.
type Renderer interface {
	// RefreshAdjacent outlines the rectangle a quadrant drop would occupy.
	RefreshAdjacent(startX, startY, width, height float64) bool
	// RefreshInsertion outlines the container with a marker at tabPos.
	RefreshInsertion(tabPos, width, height float64) bool
	// Path returns the current outline.
	Path() Path
}

// Generator draws the outlines. Embed DefaultGenerator and override one
// method to customize the look of the hint.
type Generator interface {
	AdjacentPath(p *Path, startX, startY, width, height float64)
	InsertionPath(p *Path, tabPos, width, height float64)
}

// DropHint is the default Renderer.
type DropHint struct {
	gen  Generator
	path Path

	valid  bool
	tabPos float64 // -1 while showing an adjacent outline
	width  float64
	height float64
	startX float64
	startY float64
}

// New returns a drop hint using the default outlines.
func New() *DropHint {
	return NewWithGenerator(DefaultGenerator{})
}

// NewWithGenerator returns a drop hint drawing through gen.
func NewWithGenerator(gen Generator) *DropHint {
	if gen == nil {
		gen = DefaultGenerator{}
	}
	return &DropHint{
		gen:  gen,
		path: Path{StyleClass: StyleClass},
	}
}

// RefreshAdjacent implements Renderer.
func (h *DropHint) RefreshAdjacent(startX, startY, width, height float64) bool {
	regenerate := !h.valid ||
		h.tabPos != -1 ||
		h.width != width ||
		h.height != height ||
		h.startX != startX ||
		h.startY != startY

	h.valid = true
	h.tabPos = -1
	h.width = width
	h.height = height
	h.startX = startX
	h.startY = startY

	if regenerate {
		h.path.reset()
		h.gen.AdjacentPath(&h.path, startX+2, startY+2, width-4, height-4)
	}
	return regenerate
}

// RefreshInsertion implements Renderer.
func (h *DropHint) RefreshInsertion(tabPos, width, height float64) bool {
	regenerate := !h.valid ||
		h.tabPos != tabPos ||
		h.width != width ||
		h.height != height

	h.valid = true
	h.tabPos = tabPos
	h.width = width
	h.height = height
	h.startX = 0
	h.startY = 0

	if regenerate {
		h.path.reset()
		h.gen.InsertionPath(&h.path, tabPos, width-2, height-2)
	}
	return regenerate
}

// Path implements Renderer.
func (h *DropHint) Path() Path {
	out := Path{StyleClass: h.path.StyleClass, Elements: make([]Element, len(h.path.Elements))}
	copy(out.Elements, h.path.Elements)
	return out
}

// Reset forgets the cached geometry so the next refresh always regenerates.
func (h *DropHint) Reset() {
	h.valid = false
	h.path.reset()
}

// DefaultGenerator draws a rectangle for adjacent drops and a rectangle
// below the tab header with a small arrow for insertions.
type DefaultGenerator struct{}

const (
	tabHeaderHeight = 28
	pathInset       = 2
	arrowThreshold  = 20
)

// AdjacentPath implements Generator.
func (DefaultGenerator) AdjacentPath(p *Path, startX, startY, width, height float64) {
	p.add(MoveTo, startX, startY)
	p.add(HLineTo, startX+width, 0)
	p.add(VLineTo, 0, startY+height)
	p.add(HLineTo, startX, 0)
	p.add(VLineTo, 0, startY)
}

// InsertionPath implements Generator.
func (DefaultGenerator) InsertionPath(p *Path, tabPos, width, height float64) {
	const top = tabHeaderHeight
	start := float64(pathInset)
	tabPos = math.Max(start, tabPos)

	p.add(MoveTo, start, top)
	p.add(HLineTo, width, 0)
	p.add(VLineTo, 0, height)
	p.add(HLineTo, start, 0)
	p.add(VLineTo, 0, top)

	if tabPos > arrowThreshold {
		// Arrow pointing up at the insertion boundary.
		p.add(MoveTo, tabPos, top+5)
		p.add(LineTo, math.Max(start, tabPos-10), top+15)
		p.add(HLineTo, tabPos+10, 0)
		p.add(LineTo, tabPos, top+5)
		return
	}

	// Near the left edge the arrow is drawn as a right triangle.
	tip := math.Max(tabPos, start+5)
	p.add(MoveTo, tip, top+5)
	p.add(LineTo, tip+10, top+5)
	p.add(LineTo, tip, top+15)
	p.add(VLineTo, 0, top+5)
}
