// Package hint computes the vector outline shown while a tab is dragged over
// a tab container: an insertion marker between tabs, or a highlight of the
// half of the container that a quadrant drop would create.
package hint

import (
	"fmt"
	"strings"
)

// Op is a path command.
type Op int

const (
	MoveTo Op = iota
	LineTo
	HLineTo
	VLineTo
)

// Element is one path command. HLineTo uses X only, VLineTo uses Y only.
type Element struct {
	Op   Op
	X, Y float64
}

func (e Element) String() string {
	switch e.Op {
	case MoveTo:
		return fmt.Sprintf("M%g,%g", e.X, e.Y)
	case LineTo:
		return fmt.Sprintf("L%g,%g", e.X, e.Y)
	case HLineTo:
		return fmt.Sprintf("H%g", e.X)
	case VLineTo:
		return fmt.Sprintf("V%g", e.Y)
	default:
		return "?"
	}
}

// Path is a sequence of path elements, styled by the toolkit through StyleClass.
type Path struct {
	StyleClass string
	Elements   []Element
}

// String renders the path in SVG path syntax.
func (p Path) String() string {
	parts := make([]string, len(p.Elements))
	for i, e := range p.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func (p *Path) reset() {
	p.Elements = p.Elements[:0]
}

func (p *Path) add(op Op, x, y float64) {
	p.Elements = append(p.Elements, Element{Op: op, X: x, Y: y})
}
